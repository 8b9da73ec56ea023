package handler

import (
	"errors"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetToolsHandler(c *gin.Context, repo *repository.ToolsRepo) {
	tools, err := repo.FindTools(c)
	if err != nil {
		utils.InternalError(c, "Failed to fetch tools")
		return
	}
	utils.Success(c, tools)
}

func CreateToolHandler(c *gin.Context, repo *repository.ToolsRepo) {
	var tool model.Tool
	if err := c.ShouldBindJSON(&tool); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := repo.CreateTool(c, &tool); err != nil {
		utils.InternalError(c, "Failed to create tool")
		return
	}
	utils.Created(c, tool)
}

func UpdateToolHandler(c *gin.Context, repo *repository.ToolsRepo) {
	var tool model.Tool
	if err := c.ShouldBindJSON(&tool); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{
		"name":        tool.Name,
		"description": tool.Description,
		"link":        tool.Link,
		"icon":        tool.Icon,
	}
	if err := repo.UpdateTool(c, c.Param("id"), fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Tool not found")
			return
		}
		utils.InternalError(c, "Failed to update tool")
		return
	}

	updated, err := repo.GetTool(c, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch tool")
		return
	}
	utils.SuccessWithMessage(c, updated, "Tool updated successfully")
}

func DeleteToolHandler(c *gin.Context, repo *repository.ToolsRepo) {
	if err := repo.DeleteTool(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Tool not found")
			return
		}
		utils.InternalError(c, "Failed to delete tool")
		return
	}
	utils.SuccessWithMessage(c, nil, "Tool deleted successfully")
}

func GetAchievementsHandler(c *gin.Context, repo *repository.AchievementsRepo) {
	achievements, err := repo.FindAchievements(c)
	if err != nil {
		utils.InternalError(c, "Failed to fetch achievements")
		return
	}
	utils.Success(c, achievements)
}

func CreateAchievementHandler(c *gin.Context, repo *repository.AchievementsRepo) {
	var achievement model.Achievement
	if err := c.ShouldBindJSON(&achievement); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := repo.CreateAchievement(c, &achievement); err != nil {
		utils.InternalError(c, "Failed to create achievement")
		return
	}
	utils.Created(c, achievement)
}

func UpdateAchievementHandler(c *gin.Context, repo *repository.AchievementsRepo) {
	var achievement model.Achievement
	if err := c.ShouldBindJSON(&achievement); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{
		"title":       achievement.Title,
		"description": achievement.Description,
		"date":        achievement.Date,
		"icon":        achievement.Icon,
	}
	if err := repo.UpdateAchievement(c, c.Param("id"), fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Achievement not found")
			return
		}
		utils.InternalError(c, "Failed to update achievement")
		return
	}

	updated, err := repo.GetAchievement(c, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch achievement")
		return
	}
	utils.SuccessWithMessage(c, updated, "Achievement updated successfully")
}

func DeleteAchievementHandler(c *gin.Context, repo *repository.AchievementsRepo) {
	if err := repo.DeleteAchievement(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Achievement not found")
			return
		}
		utils.InternalError(c, "Failed to delete achievement")
		return
	}
	utils.SuccessWithMessage(c, nil, "Achievement deleted successfully")
}
