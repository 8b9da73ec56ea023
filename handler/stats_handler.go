package handler

import (
	"errors"
	"log"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetStatsHandler(c *gin.Context, repo *repository.StatsRepo) {
	stats, err := repo.GetStats(c)
	if err != nil {
		log.Printf("failed to fetch stats: %v", err)
		utils.InternalError(c, "Failed to fetch stats")
		return
	}
	utils.Success(c, stats)
}

// CreateStatsHandler inserts the homepage counters document. There is
// only ever one; a second create is rejected.
func CreateStatsHandler(c *gin.Context, repo *repository.StatsRepo) {
	var stats model.Stats
	if err := c.ShouldBindJSON(&stats); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := repo.CreateStats(c, &stats); err != nil {
		if errors.Is(err, repository.ErrSingletonExists) {
			utils.Conflict(c, "Stats document already exists")
			return
		}
		utils.InternalError(c, "Failed to create stats")
		return
	}
	utils.Created(c, stats)
}

type UpdateStatsRequest struct {
	ProgrammingLanguages *model.StatValue    `json:"programmingLanguages"`
	StudentsCount        *model.StatValue    `json:"studentsCount"`
	WorkExperience       *model.StatValue    `json:"workExperience"`
	CustomStats          *[]model.CustomStat `json:"customStats"`
	Tagline              *string             `json:"tagline" binding:"omitempty,max=300"`
}

func UpdateStatsHandler(c *gin.Context, repo *repository.StatsRepo) {
	var req UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.ProgrammingLanguages != nil {
		fields["programming_languages"] = *req.ProgrammingLanguages
	}
	if req.StudentsCount != nil {
		fields["students_count"] = *req.StudentsCount
	}
	if req.WorkExperience != nil {
		fields["work_experience"] = *req.WorkExperience
	}
	if req.CustomStats != nil {
		fields["custom_stats"] = *req.CustomStats
	}
	if req.Tagline != nil {
		fields["tagline"] = *req.Tagline
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "No fields to update")
		return
	}

	stats, err := repo.UpdateStats(c, fields)
	if err != nil {
		log.Printf("failed to update stats: %v", err)
		utils.InternalError(c, "Failed to update stats")
		return
	}
	utils.SuccessWithMessage(c, stats, "Stats updated successfully")
}

// GetDashboardStatsHandler serves the cross-collection dashboard summary.
func GetDashboardStatsHandler(c *gin.Context, svc *usecase.DashboardService) {
	stats, err := svc.Stats(c)
	if err != nil {
		log.Printf("failed to assemble dashboard stats: %v", err)
		utils.InternalError(c, "Failed to fetch dashboard stats")
		return
	}
	utils.Success(c, stats)
}
