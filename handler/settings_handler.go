package handler

import (
	"log"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GetPublicSettingsHandler exposes the site profile without the outreach
// configuration.
func GetPublicSettingsHandler(c *gin.Context, repo *repository.SettingsRepo) {
	settings, err := repo.GetSettings(c)
	if err != nil {
		log.Printf("failed to fetch settings: %v", err)
		utils.InternalError(c, "Failed to fetch settings")
		return
	}

	utils.Success(c, gin.H{
		"fullName":        settings.FullName,
		"bio":             settings.Bio,
		"profileImage":    settings.ProfileImage,
		"contactInfo":     settings.ContactInfo,
		"socialLinks":     settings.SocialLinks,
		"resumeUrl":       settings.ResumeURL,
		"websiteSettings": settings.WebsiteSettings,
	})
}

func GetSettingsHandler(c *gin.Context, repo *repository.SettingsRepo) {
	settings, err := repo.GetSettings(c)
	if err != nil {
		log.Printf("failed to fetch settings: %v", err)
		utils.InternalError(c, "Failed to fetch settings")
		return
	}
	utils.Success(c, settings)
}

type UpdateSettingsRequest struct {
	ProfileImage     *string                 `json:"profileImage"`
	FullName         *string                 `json:"fullName" binding:"omitempty,max=200"`
	Bio              *string                 `json:"bio" binding:"omitempty,max=2000"`
	ContactInfo      *model.ContactInfo      `json:"contactInfo"`
	SocialLinks      *[]model.SocialLink     `json:"socialLinks" binding:"omitempty,dive"`
	ResumeURL        *string                 `json:"resumeUrl" binding:"omitempty,url"`
	PortfolioURL     *string                 `json:"portfolioUrl" binding:"omitempty,url"`
	WebsiteSettings  *model.WebsiteSettings  `json:"websiteSettings"`
	OutreachSettings *model.OutreachSettings `json:"outreachSettings"`
}

// UpdateSettingsHandler applies a partial update; only the fields present
// in the body change.
func UpdateSettingsHandler(c *gin.Context, repo *repository.SettingsRepo) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.ProfileImage != nil {
		fields["profile_image"] = *req.ProfileImage
	}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.ContactInfo != nil {
		fields["contact_info"] = *req.ContactInfo
	}
	if req.SocialLinks != nil {
		fields["social_links"] = *req.SocialLinks
	}
	if req.ResumeURL != nil {
		fields["resume_url"] = *req.ResumeURL
	}
	if req.PortfolioURL != nil {
		fields["portfolio_url"] = *req.PortfolioURL
	}
	if req.WebsiteSettings != nil {
		fields["website_settings"] = *req.WebsiteSettings
	}
	if req.OutreachSettings != nil {
		fields["outreach_settings"] = *req.OutreachSettings
	}
	if len(fields) == 0 {
		utils.BadRequest(c, "No fields to update")
		return
	}

	settings, err := repo.UpdateSettings(c, fields)
	if err != nil {
		log.Printf("failed to update settings: %v", err)
		utils.InternalError(c, "Failed to update settings")
		return
	}
	utils.SuccessWithMessage(c, settings, "Settings updated successfully")
}
