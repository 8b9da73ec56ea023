package usecase

import (
	"context"
	"errors"
	"fmt"

	"main/model"
	"main/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type ProjectsService struct {
	ProjectsRepo *repository.ProjectsRepo
}

func validCategory(category string) bool {
	for _, c := range model.ProjectCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (svc *ProjectsService) CreateProject(ctx context.Context, project *model.Project) error {
	if !validCategory(project.Category) {
		return fmt.Errorf("invalid category %q", project.Category)
	}
	if project.Status != "" && project.Status != model.StatusDraft && project.Status != model.StatusPublished {
		return fmt.Errorf("invalid status %q", project.Status)
	}
	return svc.ProjectsRepo.CreateProject(ctx, project)
}

func (svc *ProjectsService) UpdateProject(ctx context.Context, id string, project *model.Project) (*model.Project, error) {
	if !validCategory(project.Category) {
		return nil, fmt.Errorf("invalid category %q", project.Category)
	}
	if project.Status == "" {
		project.Status = model.StatusDraft
	}
	if err := svc.ProjectsRepo.UpdateProject(ctx, id, project); err != nil {
		return nil, err
	}
	return svc.ProjectsRepo.GetProject(ctx, id)
}

// BulkUpdate patches the status and/or featured flag across a set of
// projects and returns how many were matched.
func (svc *ProjectsService) BulkUpdate(ctx context.Context, projectIDs []string, status *model.ProjectStatus, featured *bool) (int64, error) {
	if len(projectIDs) == 0 {
		return 0, errors.New("project id list is empty")
	}
	if status == nil && featured == nil {
		return 0, errors.New("nothing to update")
	}

	fields := bson.M{}
	if status != nil {
		if *status != model.StatusDraft && *status != model.StatusPublished {
			return 0, fmt.Errorf("invalid status %q", *status)
		}
		fields["status"] = *status
	}
	if featured != nil {
		fields["featured"] = *featured
	}
	return svc.ProjectsRepo.BulkPatchProjects(ctx, projectIDs, fields)
}

// Reorder rewrites the display order to match the given id list. The
// whole list must be valid; a bad id changes nothing.
func (svc *ProjectsService) Reorder(ctx context.Context, projectIDs []string) error {
	if len(projectIDs) == 0 {
		return errors.New("project id list is empty")
	}

	seen := make(map[string]bool, len(projectIDs))
	for _, id := range projectIDs {
		if id == "" {
			return errors.New("project id list contains an empty id")
		}
		if seen[id] {
			return fmt.Errorf("duplicate project id %s", id)
		}
		seen[id] = true
	}

	return svc.ProjectsRepo.ReorderProjects(ctx, projectIDs)
}
