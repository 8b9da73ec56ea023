package handler

import (
	"errors"
	"strconv"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetNotificationsHandler(c *gin.Context, repo *repository.NotificationsRepo) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := repository.NotificationFilter{
		Type:       model.NotificationType(c.Query("type")),
		Priority:   model.NotificationPriority(c.Query("priority")),
		UnreadOnly: c.Query("unread") == "true",
		Page:       page,
		Limit:      limit,
	}

	notifications, total, err := repo.FindNotifications(c, filter)
	if err != nil {
		utils.InternalError(c, "Failed to fetch notifications")
		return
	}

	unread, err := repo.UnreadCount(c)
	if err != nil {
		utils.InternalError(c, "Failed to count notifications")
		return
	}

	utils.Success(c, gin.H{
		"notifications": notifications,
		"unreadCount":   unread,
		"pagination":    utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

func CreateNotificationHandler(c *gin.Context, repo *repository.NotificationsRepo) {
	var n model.Notification
	if err := c.ShouldBindJSON(&n); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !model.ValidNotificationType(n.Type) {
		utils.BadRequest(c, "Invalid notification type")
		return
	}

	if err := repo.CreateNotification(c, &n); err != nil {
		utils.InternalError(c, "Failed to create notification")
		return
	}
	utils.Created(c, n)
}

// BulkActionRequest drives the bulk notification endpoint. Actions with
// an empty id list apply to every notification.
type BulkActionRequest struct {
	Action string   `json:"action" binding:"required,oneof=markAsRead markAsUnread markAllAsRead delete deleteAll deleteOld"`
	IDs    []string `json:"ids"`
	Days   int      `json:"days"`
}

func BulkNotificationActionHandler(c *gin.Context, repo *repository.NotificationsRepo) {
	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid bulk action")
		return
	}

	var affected int64
	var err error

	switch req.Action {
	case "markAsRead":
		if len(req.IDs) == 0 {
			utils.BadRequest(c, "ids is required for markAsRead")
			return
		}
		affected, err = repo.SetRead(c, req.IDs, true)
	case "markAsUnread":
		if len(req.IDs) == 0 {
			utils.BadRequest(c, "ids is required for markAsUnread")
			return
		}
		affected, err = repo.SetRead(c, req.IDs, false)
	case "markAllAsRead":
		affected, err = repo.SetRead(c, nil, true)
	case "delete":
		if len(req.IDs) == 0 {
			utils.BadRequest(c, "ids is required for delete")
			return
		}
		affected, err = repo.DeleteMany(c, req.IDs)
	case "deleteAll":
		affected, err = repo.DeleteMany(c, nil)
	case "deleteOld":
		days := req.Days
		if days <= 0 {
			days = 30
		}
		affected, err = repo.DeleteOld(c, time.Now().AddDate(0, 0, -days))
	}

	if err != nil {
		utils.InternalError(c, "Failed to apply bulk action")
		return
	}
	utils.SuccessWithMessage(c, gin.H{"affected": affected}, "Bulk action applied")
}

type NotificationReadRequest struct {
	IsRead *bool `json:"isRead" binding:"required"`
}

// SetNotificationReadHandler toggles a single notification between read
// and unread.
func SetNotificationReadHandler(c *gin.Context, repo *repository.NotificationsRepo) {
	var req NotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "isRead is required")
		return
	}

	affected, err := repo.SetRead(c, []string{c.Param("id")}, *req.IsRead)
	if err != nil {
		utils.InternalError(c, "Failed to update notification")
		return
	}
	if affected == 0 {
		utils.NotFound(c, "Notification not found")
		return
	}
	utils.SuccessWithMessage(c, nil, "Notification updated successfully")
}

func MarkNotificationReadHandler(c *gin.Context, repo *repository.NotificationsRepo) {
	affected, err := repo.SetRead(c, []string{c.Param("id")}, true)
	if err != nil {
		utils.InternalError(c, "Failed to update notification")
		return
	}
	if affected == 0 {
		utils.NotFound(c, "Notification not found")
		return
	}
	utils.SuccessWithMessage(c, nil, "Notification marked as read")
}

func DeleteNotificationHandler(c *gin.Context, repo *repository.NotificationsRepo) {
	if err := repo.DeleteNotification(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Notification not found")
			return
		}
		utils.InternalError(c, "Failed to delete notification")
		return
	}
	utils.SuccessWithMessage(c, nil, "Notification deleted successfully")
}
