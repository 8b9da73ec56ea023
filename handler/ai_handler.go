package handler

import (
	"errors"
	"log"

	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// GenerateDraftHandler produces an AI outreach draft for a contact.
func GenerateDraftHandler(c *gin.Context, svc *usecase.DraftingService) {
	var req usecase.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	draft, err := svc.GenerateDraft(c, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAINotConfigured):
			utils.InternalError(c, "AI drafting is not configured")
		case errors.Is(err, repository.ErrInvalidReference):
			utils.BadRequest(c, err.Error())
		default:
			log.Printf("draft generation failed: %v", err)
			utils.InternalError(c, "Failed to generate draft")
		}
		return
	}
	utils.Created(c, draft)
}

// ImproveDraftHandler revises a subject and body per an instruction.
func ImproveDraftHandler(c *gin.Context, svc *usecase.DraftingService) {
	var req usecase.ImproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	subject, body, err := svc.ImproveDraft(c, req)
	if err != nil {
		if errors.Is(err, services.ErrAINotConfigured) {
			utils.InternalError(c, "AI drafting is not configured")
			return
		}
		log.Printf("draft improvement failed: %v", err)
		utils.InternalError(c, "Failed to improve draft")
		return
	}
	utils.Success(c, gin.H{"subject": subject, "body": body})
}

type FollowUpDraftRequest struct {
	EmailID string `json:"emailId" binding:"required"`
	Tone    string `json:"tone" binding:"omitempty,oneof=professional friendly"`
}

// FollowUpDraftHandler drafts a follow-up for a sent email that got no
// response.
func FollowUpDraftHandler(c *gin.Context, svc *usecase.DraftingService) {
	var req FollowUpDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "emailId is required")
		return
	}

	subject, body, err := svc.FollowUpDraft(c, req.EmailID, req.Tone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAINotConfigured):
			utils.InternalError(c, "AI drafting is not configured")
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFound(c, "Email not found")
		default:
			utils.BadRequest(c, err.Error())
		}
		return
	}
	utils.Success(c, gin.H{"subject": subject, "body": body})
}

// GetDraftsHandler lists stored AI drafts, optionally per contact.
func GetDraftsHandler(c *gin.Context, svc *usecase.DraftingService) {
	drafts, err := svc.DraftsRepo.FindDrafts(c, c.Query("contact_id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch drafts")
		return
	}
	utils.Success(c, drafts)
}

func DeleteDraftHandler(c *gin.Context, svc *usecase.DraftingService) {
	if err := svc.DraftsRepo.DeleteDraft(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Draft not found")
			return
		}
		utils.InternalError(c, "Failed to delete draft")
		return
	}
	utils.SuccessWithMessage(c, nil, "Draft deleted successfully")
}
