package handler

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// SubmitHiringInquiryHandler takes a public hiring inquiry, capped at a
// few submissions per IP per hour.
func SubmitHiringInquiryHandler(c *gin.Context, repo *repository.HiringRepo, notificationsRepo *repository.NotificationsRepo, limiter *services.RateLimiter) {
	ip := utils.ClientIP(c)
	if !limiter.Allow(c, ip) {
		utils.TooManyRequests(c, "Too many inquiries, please try again later")
		return
	}

	var inquiry model.HiringInquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inquiry.IPAddress = ip
	inquiry.UserAgent = c.Request.UserAgent()
	inquiry.Client = utils.DescribeUserAgent(inquiry.UserAgent)

	if err := repo.CreateInquiry(c, &inquiry); err != nil {
		log.Printf("failed to store hiring inquiry: %v", err)
		utils.InternalError(c, "Failed to submit inquiry")
		return
	}

	n := &model.Notification{
		Type:        model.NotifySystem,
		Title:       "New hiring inquiry",
		Message:     fmt.Sprintf("Hiring inquiry from %s", inquiry.Email),
		Priority:    model.PriorityHigh,
		RelatedID:   inquiry.ID,
		RelatedType: "hiring_inquiry",
		ActionURL:   "/dashboard/hiring/" + inquiry.ID,
	}
	if err := notificationsRepo.CreateNotification(c, n); err != nil {
		log.Printf("failed to create hiring notification: %v", err)
	}
	utils.Created(c, gin.H{"id": inquiry.ID})
}

func GetHiringInquiriesHandler(c *gin.Context, repo *repository.HiringRepo) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := model.HiringInquiryStatus(c.Query("status"))

	inquiries, total, err := repo.FindInquiries(c, status, page, limit)
	if err != nil {
		log.Printf("failed to list hiring inquiries: %v", err)
		utils.InternalError(c, "Failed to fetch inquiries")
		return
	}
	utils.Success(c, gin.H{
		"inquiries":  inquiries,
		"pagination": utils.NewPagination(total, page, limit),
	})
}

func GetHiringInquiryHandler(c *gin.Context, repo *repository.HiringRepo) {
	inquiry, err := repo.GetInquiry(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Inquiry not found")
			return
		}
		utils.InternalError(c, "Failed to fetch inquiry")
		return
	}
	utils.Success(c, inquiry)
}

type HiringStatusRequest struct {
	Status model.HiringInquiryStatus `json:"status" binding:"required"`
}

func SetHiringInquiryStatusHandler(c *gin.Context, repo *repository.HiringRepo) {
	var req HiringStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !model.ValidHiringInquiryStatus(req.Status) {
		utils.BadRequest(c, "Invalid status")
		return
	}

	inquiry, err := repo.SetStatus(c, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Inquiry not found")
			return
		}
		utils.InternalError(c, "Failed to update inquiry")
		return
	}
	utils.SuccessWithMessage(c, inquiry, "Inquiry updated successfully")
}

func DeleteHiringInquiryHandler(c *gin.Context, repo *repository.HiringRepo) {
	if err := repo.DeleteInquiry(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Inquiry not found")
			return
		}
		utils.InternalError(c, "Failed to delete inquiry")
		return
	}
	utils.SuccessWithMessage(c, nil, "Inquiry deleted successfully")
}

func GetHiringStatsHandler(c *gin.Context, repo *repository.HiringRepo) {
	stats, err := repo.GetInquiryStats(c)
	if err != nil {
		log.Printf("failed to aggregate hiring stats: %v", err)
		utils.InternalError(c, "Failed to fetch hiring stats")
		return
	}
	utils.Success(c, stats)
}
