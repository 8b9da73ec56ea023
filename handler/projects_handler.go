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

func parseBoolQuery(c *gin.Context, name string) *bool {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	parsed := value == "true"
	return &parsed
}

func projectFilterFromQuery(c *gin.Context) repository.ProjectFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	return repository.ProjectFilter{
		Status:    model.ProjectStatus(c.Query("status")),
		Category:  c.Query("category"),
		Featured:  parseBoolQuery(c, "featured"),
		Search:    c.Query("search"),
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

// GetPublicProjectsHandler lists published projects only.
func GetPublicProjectsHandler(c *gin.Context, svc *usecase.ProjectsService) {
	filter := projectFilterFromQuery(c)
	filter.Status = model.StatusPublished

	projects, total, err := svc.ProjectsRepo.FindProjects(c, filter)
	if err != nil {
		log.Printf("failed to list projects: %v", err)
		utils.InternalError(c, "Failed to fetch projects")
		return
	}
	utils.Success(c, gin.H{
		"projects":   projects,
		"pagination": utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

// GetProjectsHandler lists all projects for the dashboard.
func GetProjectsHandler(c *gin.Context, svc *usecase.ProjectsService) {
	filter := projectFilterFromQuery(c)

	projects, total, err := svc.ProjectsRepo.FindProjects(c, filter)
	if err != nil {
		log.Printf("failed to list projects: %v", err)
		utils.InternalError(c, "Failed to fetch projects")
		return
	}
	utils.Success(c, gin.H{
		"projects":   projects,
		"pagination": utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

func GetProjectHandler(c *gin.Context, svc *usecase.ProjectsService) {
	project, err := svc.ProjectsRepo.GetProject(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Project not found")
			return
		}
		utils.InternalError(c, "Failed to fetch project")
		return
	}
	utils.Success(c, project)
}

func CreateProjectHandler(c *gin.Context, svc *usecase.ProjectsService) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := svc.CreateProject(c, &project); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	middleware.TrackContentOperation("projects", "create")
	utils.Created(c, project)
}

func UpdateProjectHandler(c *gin.Context, svc *usecase.ProjectsService) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updated, err := svc.UpdateProject(c, c.Param("id"), &project)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Project not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	middleware.TrackContentOperation("projects", "update")
	utils.SuccessWithMessage(c, updated, "Project updated successfully")
}

func DeleteProjectHandler(c *gin.Context, svc *usecase.ProjectsService) {
	if err := svc.ProjectsRepo.DeleteProject(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Project not found")
			return
		}
		utils.InternalError(c, "Failed to delete project")
		return
	}
	middleware.TrackContentOperation("projects", "delete")
	utils.SuccessWithMessage(c, nil, "Project deleted successfully")
}

type ReorderRequest struct {
	ProjectIDs []string `json:"projectIds" binding:"required,min=1"`
}

// ReorderProjectsHandler rewrites display order; the whole list succeeds
// or nothing changes.
func ReorderProjectsHandler(c *gin.Context, svc *usecase.ProjectsService) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "projectIds is required")
		return
	}

	if err := svc.Reorder(c, req.ProjectIDs); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			utils.BadRequest(c, err.Error())
			return
		}
		log.Printf("failed to reorder projects: %v", err)
		utils.InternalError(c, "Failed to reorder projects")
		return
	}
	utils.SuccessWithMessage(c, nil, "Projects reordered successfully")
}

type BulkProjectUpdateRequest struct {
	ProjectIDs []string             `json:"projectIds" binding:"required,min=1"`
	Status     *model.ProjectStatus `json:"status" binding:"omitempty,oneof=draft published"`
	Featured   *bool                `json:"featured"`
}

// BulkUpdateProjectsHandler patches status and/or featured across many
// projects at once.
func BulkUpdateProjectsHandler(c *gin.Context, svc *usecase.ProjectsService) {
	var req BulkProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	matched, err := svc.BulkUpdate(c, req.ProjectIDs, req.Status, req.Featured)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, gin.H{"updated": matched}, "Projects updated successfully")
}

func GetProjectStatsHandler(c *gin.Context, svc *usecase.ProjectsService) {
	stats, err := svc.ProjectsRepo.GetProjectStats(c)
	if err != nil {
		log.Printf("failed to aggregate project stats: %v", err)
		utils.InternalError(c, "Failed to fetch project stats")
		return
	}
	utils.Success(c, stats)
}
