package handler

import (
	"errors"
	"log"
	"strconv"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// SubmitMessageHandler takes a visitor contact message. The client IP and
// a readable client label are captured for the dashboard.
func SubmitMessageHandler(c *gin.Context, svc *usecase.MessagesService) {
	var message model.Message
	if err := c.ShouldBindJSON(&message); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	message.IPAddress = utils.ClientIP(c)
	message.UserAgent = c.Request.UserAgent()
	message.Client = utils.DescribeUserAgent(message.UserAgent)

	if err := svc.Submit(c, &message); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.Created(c, gin.H{"id": message.ID})
}

func GetMessagesHandler(c *gin.Context, svc *usecase.MessagesService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := repository.MessageFilter{
		Status: model.MessageStatus(c.Query("status")),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	messages, total, err := svc.MessagesRepo.FindMessages(c, filter)
	if err != nil {
		log.Printf("failed to list messages: %v", err)
		utils.InternalError(c, "Failed to fetch messages")
		return
	}
	utils.Success(c, gin.H{
		"messages":   messages,
		"pagination": utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

// GetMessageHandler fetches one message. Opening an unread message moves
// it to read; a failed transition falls back to the stored state.
func GetMessageHandler(c *gin.Context, svc *usecase.MessagesService) {
	message, err := svc.MessagesRepo.GetMessage(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Message not found")
			return
		}
		utils.InternalError(c, "Failed to fetch message")
		return
	}

	if message.Status == model.MessageUnread {
		updated, err := svc.SetStatus(c, message.ID, model.MessageRead)
		if err != nil {
			log.Printf("failed to mark message %s read: %v", message.ID, err)
		} else {
			message = updated
		}
	}
	utils.Success(c, message)
}

type MessageStatusRequest struct {
	Status model.MessageStatus `json:"status" binding:"required,oneof=unread read replied archived"`
}

func SetMessageStatusHandler(c *gin.Context, svc *usecase.MessagesService) {
	var req MessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid status")
		return
	}

	message, err := svc.SetStatus(c, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Message not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, message, "Message updated successfully")
}

type ReplyRequest struct {
	Message string `json:"message" binding:"required,max=5000"`
}

func ReplyMessageHandler(c *gin.Context, svc *usecase.MessagesService) {
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Reply message is required")
		return
	}

	message, err := svc.Reply(c, c.Param("id"), req.Message)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Message not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, message, "Reply recorded successfully")
}

func DeleteMessageHandler(c *gin.Context, svc *usecase.MessagesService) {
	if err := svc.MessagesRepo.DeleteMessage(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Message not found")
			return
		}
		utils.InternalError(c, "Failed to delete message")
		return
	}
	utils.SuccessWithMessage(c, nil, "Message deleted successfully")
}

func GetMessageStatsHandler(c *gin.Context, svc *usecase.MessagesService) {
	stats, err := svc.MessagesRepo.GetMessageStats(c)
	if err != nil {
		log.Printf("failed to aggregate message stats: %v", err)
		utils.InternalError(c, "Failed to fetch message stats")
		return
	}
	utils.Success(c, stats)
}
