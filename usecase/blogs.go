package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

var ErrAlreadyLiked = errors.New("already liked")

// likeMilestones are the like counts that trigger a dashboard notification.
var likeMilestones = []int{10, 50, 100, 500, 1000}

type BlogsService struct {
	BlogsRepo         *repository.BlogsRepo
	BlogStatsRepo     *repository.BlogStatsRepo
	CommentsRepo      *repository.CommentsRepo
	NotificationsRepo *repository.NotificationsRepo
}

// CreateBlog generates the slug and read time, stamps published_at when
// the blog goes out published, and persists.
func (svc *BlogsService) CreateBlog(ctx context.Context, blog *model.Blog) error {
	blog.Title = strings.TrimSpace(blog.Title)
	if blog.Title == "" {
		return errors.New("blog title is required")
	}

	slug, err := svc.uniqueSlug(ctx, blog.Title, "")
	if err != nil {
		return err
	}
	blog.Slug = slug
	blog.ReadTime = utils.CalculateReadTime(blog.Content)

	if blog.Status == "" {
		blog.Status = model.StatusDraft
	}
	if blog.Status == model.StatusPublished && blog.PublishedAt == nil {
		now := time.Now()
		blog.PublishedAt = &now
	}

	return svc.BlogsRepo.CreateBlog(ctx, blog)
}

// UpdateBlog applies changes, regenerating the slug on title change and
// the read time on content change. Publishing for the first time stamps
// published_at; the stamp survives later edits.
func (svc *BlogsService) UpdateBlog(ctx context.Context, id string, changes *model.Blog) (*model.Blog, error) {
	existing, err := svc.BlogsRepo.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"title":            changes.Title,
		"excerpt":          changes.Excerpt,
		"content":          changes.Content,
		"category":         changes.Category,
		"tags":             changes.Tags,
		"cover_image":      changes.CoverImage,
		"cover_image_id":   changes.CoverImageID,
		"author":           changes.Author,
		"featured":         changes.Featured,
		"meta_title":       changes.MetaTitle,
		"meta_description": changes.MetaDescription,
		"canonical_url":    changes.CanonicalURL,
		"no_index":         changes.NoIndex,
	}

	if changes.Title != existing.Title {
		slug, err := svc.uniqueSlug(ctx, changes.Title, id)
		if err != nil {
			return nil, err
		}
		fields["slug"] = slug
	}
	if changes.Content != existing.Content {
		fields["read_time"] = utils.CalculateReadTime(changes.Content)
	}

	if changes.Status != "" {
		fields["status"] = changes.Status
		if changes.Status == model.StatusPublished && existing.PublishedAt == nil {
			fields["published_at"] = time.Now()
		}
	}

	if err := svc.BlogsRepo.UpdateBlog(ctx, id, fields); err != nil {
		return nil, err
	}
	return svc.BlogsRepo.GetBlog(ctx, id)
}

// DeleteBlog removes the blog along with its event log and comments.
func (svc *BlogsService) DeleteBlog(ctx context.Context, id string) error {
	if err := svc.BlogsRepo.DeleteBlog(ctx, id); err != nil {
		return err
	}
	if err := svc.BlogStatsRepo.DeleteForBlog(ctx, id); err != nil {
		log.Printf("failed to delete blog stats for %s: %v", id, err)
	}
	if err := svc.CommentsRepo.DeleteForBlog(ctx, id); err != nil {
		log.Printf("failed to delete comments for %s: %v", id, err)
	}
	return nil
}

// uniqueSlug derives a slug from the title and appends -1, -2, ... until
// no other blog uses it.
func (svc *BlogsService) uniqueSlug(ctx context.Context, title, excludeID string) (string, error) {
	base := utils.GenerateSlug(title)
	if base == "" {
		base = "untitled"
	}

	slug := base
	for suffix := 1; ; suffix++ {
		taken, err := svc.BlogsRepo.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, suffix)
	}
}

// RecordView logs a view event and bumps the counters. A first view from
// an IP also counts as unique.
func (svc *BlogsService) RecordView(ctx context.Context, blog *model.Blog, ip, userAgent, referer string) error {
	stats, err := svc.BlogStatsRepo.GetOrCreate(ctx, blog.ID)
	if err != nil {
		return err
	}

	unique := !stats.HasViewFrom(ip)
	event := model.ViewEvent{
		Timestamp: time.Now(),
		IP:        ip,
		UserAgent: userAgent,
		Referer:   referer,
	}
	if err := svc.BlogStatsRepo.AppendView(ctx, blog.ID, event); err != nil {
		return err
	}
	return svc.BlogsRepo.IncrementViews(ctx, blog.ID, unique)
}

// Like records a like from an IP. A second like from the same IP returns
// ErrAlreadyLiked. Crossing a milestone creates a dashboard notification;
// a notification failure never fails the like.
func (svc *BlogsService) Like(ctx context.Context, blog *model.Blog, ip string) (int, error) {
	stats, err := svc.BlogStatsRepo.GetOrCreate(ctx, blog.ID)
	if err != nil {
		return 0, err
	}
	if stats.HasLikeFrom(ip) {
		return blog.Stats.Likes.Total, ErrAlreadyLiked
	}

	event := model.LikeEvent{Timestamp: time.Now(), IP: ip}
	if err := svc.BlogStatsRepo.AppendLike(ctx, blog.ID, event); err != nil {
		return 0, err
	}
	if err := svc.BlogsRepo.AddLike(ctx, blog.ID, ip); err != nil {
		return 0, err
	}

	newTotal := blog.Stats.Likes.Total + 1
	svc.notifyLikeMilestone(ctx, blog, newTotal)
	return newTotal, nil
}

func (svc *BlogsService) notifyLikeMilestone(ctx context.Context, blog *model.Blog, total int) {
	for _, milestone := range likeMilestones {
		if total != milestone {
			continue
		}
		n := &model.Notification{
			Type:        model.NotifyLike,
			Title:       "Blog milestone reached",
			Message:     fmt.Sprintf("%q reached %d likes", blog.Title, milestone),
			Priority:    model.PriorityLow,
			RelatedID:   blog.ID,
			RelatedType: "blog",
			ActionURL:   "/dashboard/blogs/" + blog.ID,
		}
		if err := svc.NotificationsRepo.CreateNotification(ctx, n); err != nil {
			log.Printf("failed to create milestone notification: %v", err)
		}
		return
	}
}

// Share logs a share event for the platform and bumps the counters.
func (svc *BlogsService) Share(ctx context.Context, blog *model.Blog, platform string) error {
	if _, err := svc.BlogStatsRepo.GetOrCreate(ctx, blog.ID); err != nil {
		return err
	}
	event := model.ShareEvent{Timestamp: time.Now(), Platform: platform}
	if err := svc.BlogStatsRepo.AppendShare(ctx, blog.ID, event); err != nil {
		return err
	}
	return svc.BlogsRepo.IncrementShares(ctx, blog.ID, platform)
}

// SyncCommentCounters recomputes the blog's denormalized comment counters
// after a moderation change.
func (svc *BlogsService) SyncCommentCounters(ctx context.Context, blogID string) error {
	counters, err := svc.CommentsRepo.CountersForBlog(ctx, blogID)
	if err != nil {
		return err
	}
	return svc.BlogsRepo.SetCommentCounters(ctx, blogID, counters)
}

// AddComment stores a visitor comment as pending and notifies the
// dashboard.
func (svc *BlogsService) AddComment(ctx context.Context, blog *model.Blog, comment *model.Comment) error {
	comment.BlogID = blog.ID
	if err := comment.ResolveLegacyFields(); err != nil {
		return err
	}
	if err := svc.CommentsRepo.CreateComment(ctx, comment); err != nil {
		return err
	}
	if err := svc.SyncCommentCounters(ctx, blog.ID); err != nil {
		log.Printf("failed to sync comment counters for %s: %v", blog.ID, err)
	}

	n := &model.Notification{
		Type:        model.NotifyComment,
		Title:       "New comment awaiting review",
		Message:     fmt.Sprintf("%s commented on %q", comment.Name, blog.Title),
		Priority:    model.PriorityMedium,
		RelatedID:   comment.ID,
		RelatedType: "comment",
		ActionURL:   "/dashboard/comments",
	}
	if err := svc.NotificationsRepo.CreateNotification(ctx, n); err != nil {
		log.Printf("failed to create comment notification: %v", err)
	}
	return nil
}
