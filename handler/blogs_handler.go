package handler

import (
	"errors"
	"log"
	"strconv"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func blogFilterFromQuery(c *gin.Context) repository.BlogFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	return repository.BlogFilter{
		Status:    model.ProjectStatus(c.Query("status")),
		Category:  c.Query("category"),
		Tag:       c.Query("tag"),
		Featured:  parseBoolQuery(c, "featured"),
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

// GetPublicBlogsHandler lists published blogs, content excluded.
func GetPublicBlogsHandler(c *gin.Context, svc *usecase.BlogsService) {
	filter := blogFilterFromQuery(c)
	filter.Status = model.StatusPublished

	blogs, total, err := svc.BlogsRepo.FindBlogs(c, filter)
	if err != nil {
		log.Printf("failed to list blogs: %v", err)
		utils.InternalError(c, "Failed to fetch blogs")
		return
	}
	utils.Success(c, gin.H{
		"blogs":      blogs,
		"pagination": utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

// GetBlogsHandler lists all blogs for the dashboard.
func GetBlogsHandler(c *gin.Context, svc *usecase.BlogsService) {
	filter := blogFilterFromQuery(c)

	blogs, total, err := svc.BlogsRepo.FindBlogs(c, filter)
	if err != nil {
		log.Printf("failed to list blogs: %v", err)
		utils.InternalError(c, "Failed to fetch blogs")
		return
	}
	utils.Success(c, gin.H{
		"blogs":      blogs,
		"pagination": utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

// GetBlogBySlugHandler serves a published blog. Views are counted by the
// explicit view endpoint so that prefetches do not inflate the numbers.
func GetBlogBySlugHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetPublishedBlogBySlug(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}
	utils.Success(c, blog)
}

// ViewBlogHandler records one view with the caller's ip, user agent and
// referer; repeat views from the same IP only bump the total.
func ViewBlogHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetPublishedBlogBySlug(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}

	ip := utils.ClientIP(c)
	if err := svc.RecordView(c, blog, ip, c.Request.UserAgent(), c.Request.Referer()); err != nil {
		log.Printf("failed to record view for %s: %v", blog.ID, err)
		utils.InternalError(c, "Failed to record view")
		return
	}
	middleware.BlogViewsTotal.WithLabelValues(blog.Slug).Inc()
	utils.SuccessWithMessage(c, gin.H{"views": blog.Stats.Views.Total + 1}, "View recorded")
}

func GetBlogHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetBlog(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}
	utils.Success(c, blog)
}

func CreateBlogHandler(c *gin.Context, svc *usecase.BlogsService) {
	var blog model.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := svc.CreateBlog(c, &blog); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	middleware.TrackContentOperation("blogs", "create")
	utils.Created(c, blog)
}

func UpdateBlogHandler(c *gin.Context, svc *usecase.BlogsService) {
	var changes model.Blog
	if err := c.ShouldBindJSON(&changes); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updated, err := svc.UpdateBlog(c, c.Param("id"), &changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	middleware.TrackContentOperation("blogs", "update")
	utils.SuccessWithMessage(c, updated, "Blog updated successfully")
}

func DeleteBlogHandler(c *gin.Context, svc *usecase.BlogsService) {
	if err := svc.DeleteBlog(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to delete blog")
		return
	}
	middleware.TrackContentOperation("blogs", "delete")
	utils.SuccessWithMessage(c, nil, "Blog deleted successfully")
}

// LikeBlogHandler registers one like per IP per blog.
func LikeBlogHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetPublishedBlogBySlug(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}

	total, err := svc.Like(c, blog, utils.ClientIP(c))
	if err != nil {
		if errors.Is(err, usecase.ErrAlreadyLiked) {
			utils.Conflict(c, "Already liked")
			return
		}
		log.Printf("failed to like blog %s: %v", blog.ID, err)
		utils.InternalError(c, "Failed to like blog")
		return
	}
	utils.Success(c, gin.H{"likes": total})
}

// GetBlogLikeInfoHandler reports the like count and whether the calling
// IP has already liked the blog.
func GetBlogLikeInfoHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetPublishedBlogBySlug(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}

	stats, err := svc.BlogStatsRepo.GetOrCreate(c, blog.ID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch blog stats")
		return
	}
	utils.Success(c, gin.H{
		"likes":   blog.Stats.Likes.Total,
		"isLiked": stats.HasLikeFrom(utils.ClientIP(c)),
	})
}

type ShareRequest struct {
	Platform string `json:"platform" binding:"omitempty,oneof=facebook twitter linkedin other"`
}

func ShareBlogHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetPublishedBlogBySlug(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid platform")
		return
	}

	if err := svc.Share(c, blog, req.Platform); err != nil {
		log.Printf("failed to record share for %s: %v", blog.ID, err)
		utils.InternalError(c, "Failed to record share")
		return
	}
	utils.SuccessWithMessage(c, nil, "Share recorded")
}

// GetBlogCommentsHandler lists approved comments for a published blog.
func GetBlogCommentsHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetPublishedBlogBySlug(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}

	comments, err := svc.CommentsRepo.FindByBlog(c, blog.ID, model.CommentApproved)
	if err != nil {
		utils.InternalError(c, "Failed to fetch comments")
		return
	}
	utils.Success(c, comments)
}

// AddBlogCommentHandler stores a visitor comment as pending review.
func AddBlogCommentHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetPublishedBlogBySlug(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}

	var comment model.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := svc.AddComment(c, blog, &comment); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, gin.H{
		"id":      comment.ID,
		"status":  comment.Status,
		"message": "Comment submitted for review",
	})
}

// GetPublicBlogStatsHandler serves the counter summary for a published
// blog. The per-event log stays dashboard-only because it carries IPs.
func GetPublicBlogStatsHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetPublishedBlogBySlug(c, c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}
	utils.Success(c, gin.H{
		"views":    blog.Stats.Views,
		"likes":    gin.H{"total": blog.Stats.Likes.Total},
		"shares":   blog.Stats.Shares,
		"comments": blog.Stats.Comments,
	})
}

// GetBlogStatsHandler serves the per-blog event log for the dashboard.
func GetBlogStatsHandler(c *gin.Context, svc *usecase.BlogsService) {
	blog, err := svc.BlogsRepo.GetBlog(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.InternalError(c, "Failed to fetch blog")
		return
	}

	stats, err := svc.BlogStatsRepo.GetOrCreate(c, blog.ID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch blog stats")
		return
	}
	utils.Success(c, gin.H{"blog": blog, "stats": stats})
}

// GetBlogOverviewHandler serves the cross-blog totals.
func GetBlogOverviewHandler(c *gin.Context, svc *usecase.BlogsService) {
	overview, err := svc.BlogsRepo.GetOverview(c)
	if err != nil {
		log.Printf("failed to aggregate blog overview: %v", err)
		utils.InternalError(c, "Failed to fetch blog overview")
		return
	}
	utils.Success(c, overview)
}
