package usecase_test

import (
	"context"
	"testing"

	"main/model"
	"main/usecase"
)

func TestReorderRejectsBadInput(t *testing.T) {
	svc := &usecase.ProjectsService{}
	ctx := context.Background()

	tests := []struct {
		name string
		ids  []string
	}{
		{name: "empty list", ids: nil},
		{name: "blank id", ids: []string{"a", "", "c"}},
		{name: "duplicate id", ids: []string{"a", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Reorder(ctx, tt.ids); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestCreateProjectRejectsInvalidCategory(t *testing.T) {
	svc := &usecase.ProjectsService{}

	project := &model.Project{
		Title:    "Test",
		Category: "not-a-category",
	}
	if err := svc.CreateProject(context.Background(), project); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestCreateProjectRejectsInvalidStatus(t *testing.T) {
	svc := &usecase.ProjectsService{}

	project := &model.Project{
		Title:    "Test",
		Category: model.ProjectCategories[0],
		Status:   "archived",
	}
	if err := svc.CreateProject(context.Background(), project); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestBulkUpdateRejectsBadInput(t *testing.T) {
	svc := &usecase.ProjectsService{}
	ctx := context.Background()

	bad := model.ProjectStatus("archived")
	published := model.StatusPublished
	featured := true

	tests := []struct {
		name     string
		ids      []string
		status   *model.ProjectStatus
		featured *bool
	}{
		{name: "empty id list", ids: nil, status: &published},
		{name: "no fields to update", ids: []string{"a"}},
		{name: "invalid status", ids: []string{"a"}, status: &bad, featured: &featured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.BulkUpdate(ctx, tt.ids, tt.status, tt.featured); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
