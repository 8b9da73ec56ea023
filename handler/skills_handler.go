package handler

import (
	"errors"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetSkillsHandler(c *gin.Context, repo *repository.SkillsRepo) {
	skills, err := repo.FindSkills(c, c.Query("category"), parseBoolQuery(c, "featured"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch skills")
		return
	}

	// group for the public site
	grouped := make(map[string][]*model.Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	utils.Success(c, gin.H{"skills": skills, "byCategory": grouped})
}

func GetSkillCategoriesHandler(c *gin.Context, repo *repository.SkillsRepo) {
	categories, err := repo.Categories(c)
	if err != nil {
		utils.InternalError(c, "Failed to fetch categories")
		return
	}
	utils.Success(c, categories)
}

func CreateSkillHandler(c *gin.Context, repo *repository.SkillsRepo) {
	var skill model.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := repo.CreateSkill(c, &skill); err != nil {
		utils.InternalError(c, "Failed to create skill")
		return
	}
	middleware.TrackContentOperation("skills", "create")
	utils.Created(c, skill)
}

func UpdateSkillHandler(c *gin.Context, repo *repository.SkillsRepo) {
	var skill model.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{
		"name":        skill.Name,
		"category":    skill.Category,
		"proficiency": skill.Proficiency,
		"icon":        skill.Icon,
		"icon_set":    skill.IconSet,
		"description": skill.Description,
		"featured":    skill.Featured,
	}
	if err := repo.UpdateSkill(c, c.Param("id"), fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Skill not found")
			return
		}
		utils.InternalError(c, "Failed to update skill")
		return
	}

	updated, err := repo.GetSkill(c, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch skill")
		return
	}
	middleware.TrackContentOperation("skills", "update")
	utils.SuccessWithMessage(c, updated, "Skill updated successfully")
}

// DeleteSkillHandler removes the skill; later skills in the category
// shift down to keep the order contiguous.
func DeleteSkillHandler(c *gin.Context, repo *repository.SkillsRepo) {
	if err := repo.DeleteSkill(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Skill not found")
			return
		}
		utils.InternalError(c, "Failed to delete skill")
		return
	}
	middleware.TrackContentOperation("skills", "delete")
	utils.SuccessWithMessage(c, nil, "Skill deleted successfully")
}

type SkillReorderRequest struct {
	SkillIDs []string `json:"skillIds" binding:"required,min=1"`
}

func ReorderSkillsHandler(c *gin.Context, repo *repository.SkillsRepo) {
	var req SkillReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "skillIds is required")
		return
	}

	if err := repo.ReorderSkills(c, req.SkillIDs); err != nil {
		utils.InternalError(c, "Failed to reorder skills")
		return
	}
	utils.SuccessWithMessage(c, nil, "Skills reordered successfully")
}
