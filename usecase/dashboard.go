package usecase

import (
	"context"

	"main/model"
	"main/repository"

	"golang.org/x/sync/errgroup"
)

// DashboardService assembles the cross-collection dashboard summary.
type DashboardService struct {
	ProjectsRepo      *repository.ProjectsRepo
	BlogsRepo         *repository.BlogsRepo
	SkillsRepo        *repository.SkillsRepo
	MessagesRepo      *repository.MessagesRepo
	NotificationsRepo *repository.NotificationsRepo
}

// Stats gathers the per-collection counts concurrently; any failure fails
// the whole call.
func (svc *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		projectStats, err := svc.ProjectsRepo.GetProjectStats(gctx)
		if err != nil {
			return err
		}
		stats.Projects = *projectStats
		return nil
	})
	g.Go(func() error {
		overview, err := svc.BlogsRepo.GetOverview(gctx)
		if err != nil {
			return err
		}
		stats.Blogs = overview.Total
		stats.PublishedBlogs = overview.Published
		return nil
	})
	g.Go(func() error {
		skills, err := svc.SkillsRepo.FindSkills(gctx, "", nil)
		if err != nil {
			return err
		}
		stats.Skills = len(skills)
		return nil
	})
	g.Go(func() error {
		messageStats, err := svc.MessagesRepo.GetMessageStats(gctx)
		if err != nil {
			return err
		}
		stats.Messages = *messageStats
		return nil
	})
	g.Go(func() error {
		unread, err := svc.NotificationsRepo.UnreadCount(gctx)
		if err != nil {
			return err
		}
		stats.UnreadNotifications = int(unread)

		recent, _, err := svc.NotificationsRepo.FindNotifications(gctx, repository.NotificationFilter{Limit: 5})
		if err != nil {
			return err
		}
		for _, n := range recent {
			stats.Recent = append(stats.Recent, *n)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
