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

// GetCommentsHandler lists comments for moderation, optionally filtered
// by status or blog.
func GetCommentsHandler(c *gin.Context, svc *usecase.BlogsService) {
	status := model.CommentStatus(c.Query("status"))
	blogID := c.Query("blog_id")

	var comments []*model.Comment
	var err error
	if blogID != "" {
		comments, err = svc.CommentsRepo.FindByBlog(c, blogID, status)
	} else {
		comments, err = svc.CommentsRepo.FindAll(c, status)
	}
	if err != nil {
		log.Printf("failed to list comments: %v", err)
		utils.InternalError(c, "Failed to fetch comments")
		return
	}
	utils.Success(c, comments)
}

type CommentStatusRequest struct {
	Status model.CommentStatus `json:"status" binding:"required,oneof=pending approved spam"`
}

// SetCommentStatusHandler moderates a comment and resyncs the blog's
// comment counters.
func SetCommentStatusHandler(c *gin.Context, svc *usecase.BlogsService) {
	var req CommentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid status")
		return
	}

	comment, err := svc.CommentsRepo.SetStatus(c, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Comment not found")
			return
		}
		utils.InternalError(c, "Failed to update comment")
		return
	}

	if err := svc.SyncCommentCounters(c, comment.BlogID); err != nil {
		log.Printf("failed to sync comment counters for %s: %v", comment.BlogID, err)
	}
	utils.SuccessWithMessage(c, comment, "Comment updated successfully")
}

func DeleteCommentHandler(c *gin.Context, svc *usecase.BlogsService) {
	comment, err := svc.CommentsRepo.DeleteComment(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Comment not found")
			return
		}
		utils.InternalError(c, "Failed to delete comment")
		return
	}

	if err := svc.SyncCommentCounters(c, comment.BlogID); err != nil {
		log.Printf("failed to sync comment counters for %s: %v", comment.BlogID, err)
	}
	utils.SuccessWithMessage(c, nil, "Comment deleted successfully")
}
