package handler

import (
	"errors"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// GetExperienceHandler serves work and education together, fetched
// concurrently. The public route pins status to published.
func GetExperienceHandler(c *gin.Context, repo *repository.ExperienceRepo, publicOnly bool) {
	status := model.ProjectStatus(c.Query("status"))
	if publicOnly {
		status = model.StatusPublished
	}
	featured := parseBoolQuery(c, "featured")

	var work []*model.WorkExperience
	var education []*model.Education

	g, gctx := errgroup.WithContext(c)
	g.Go(func() error {
		var err error
		work, err = repo.FindWork(gctx, status, featured)
		return err
	})
	g.Go(func() error {
		var err error
		education, err = repo.FindEducation(gctx, status, featured)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.InternalError(c, "Failed to fetch experience")
		return
	}

	utils.Success(c, gin.H{"work": work, "education": education})
}

func CreateWorkExperienceHandler(c *gin.Context, repo *repository.ExperienceRepo) {
	var entry model.WorkExperience
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := repo.CreateWork(c, &entry); err != nil {
		utils.InternalError(c, "Failed to create work experience")
		return
	}
	utils.Created(c, entry)
}

func CreateEducationHandler(c *gin.Context, repo *repository.ExperienceRepo) {
	var entry model.Education
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := repo.CreateEducation(c, &entry); err != nil {
		utils.InternalError(c, "Failed to create education entry")
		return
	}
	utils.Created(c, entry)
}

func UpdateWorkExperienceHandler(c *gin.Context, repo *repository.ExperienceRepo) {
	var entry model.WorkExperience
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{
		"title":            entry.Title,
		"organization":     entry.Organization,
		"location":         entry.Location,
		"start_date":       entry.StartDate,
		"end_date":         entry.EndDate,
		"is_current":       entry.IsCurrent,
		"description":      entry.Description,
		"featured":         entry.Featured,
		"status":           entry.Status,
		"job_title":        entry.JobTitle,
		"level":            entry.Level,
		"company":          entry.Company,
		"employment_type":  entry.EmploymentType,
		"technologies":     entry.Technologies,
		"achievements":     entry.Achievements,
		"responsibilities": entry.Responsibilities,
		"website":          entry.Website,
		"company_size":     entry.CompanySize,
	}
	if err := repo.UpdateWork(c, c.Param("id"), fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Work experience not found")
			return
		}
		utils.InternalError(c, "Failed to update work experience")
		return
	}

	updated, err := repo.GetWork(c, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch work experience")
		return
	}
	utils.SuccessWithMessage(c, updated, "Work experience updated successfully")
}

func UpdateEducationHandler(c *gin.Context, repo *repository.ExperienceRepo) {
	var entry model.Education
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{
		"title":          entry.Title,
		"organization":   entry.Organization,
		"location":       entry.Location,
		"start_date":     entry.StartDate,
		"end_date":       entry.EndDate,
		"is_current":     entry.IsCurrent,
		"description":    entry.Description,
		"featured":       entry.Featured,
		"status":         entry.Status,
		"degree":         entry.Degree,
		"institution":    entry.Institution,
		"field_of_study": entry.FieldOfStudy,
		"gpa":            entry.GPA,
		"max_gpa":        entry.MaxGPA,
		"activities":     entry.Activities,
		"honors":         entry.Honors,
		"coursework":     entry.Coursework,
		"thesis":         entry.Thesis,
	}
	if err := repo.UpdateEducation(c, c.Param("id"), fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Education entry not found")
			return
		}
		utils.InternalError(c, "Failed to update education entry")
		return
	}

	updated, err := repo.GetEducation(c, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch education entry")
		return
	}
	utils.SuccessWithMessage(c, updated, "Education entry updated successfully")
}

func DeleteWorkExperienceHandler(c *gin.Context, repo *repository.ExperienceRepo) {
	if err := repo.DeleteWork(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Work experience not found")
			return
		}
		utils.InternalError(c, "Failed to delete work experience")
		return
	}
	utils.SuccessWithMessage(c, nil, "Work experience deleted successfully")
}

func DeleteEducationHandler(c *gin.Context, repo *repository.ExperienceRepo) {
	if err := repo.DeleteEducation(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Education entry not found")
			return
		}
		utils.InternalError(c, "Failed to delete education entry")
		return
	}
	utils.SuccessWithMessage(c, nil, "Education entry deleted successfully")
}
