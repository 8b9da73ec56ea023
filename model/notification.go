package model

import "time"

type NotificationType string

const (
	NotifyMessage NotificationType = "message"
	NotifyComment NotificationType = "comment"
	NotifyLike    NotificationType = "like"
	NotifySystem  NotificationType = "system"
	NotifyUpdate  NotificationType = "update"
	NotifyWarning NotificationType = "warning"
)

func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotifyMessage, NotifyComment, NotifyLike, NotifySystem, NotifyUpdate, NotifyWarning:
		return true
	}
	return false
}

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// DefaultUserID scopes notifications for the single-admin dashboard.
const DefaultUserID = "admin"

type Notification struct {
	ID          string                 `bson:"_id,omitempty" json:"id"`
	Type        NotificationType       `bson:"type" json:"type" binding:"required"`
	Title       string                 `bson:"title" json:"title" binding:"required,max=200"`
	Message     string                 `bson:"message" json:"message" binding:"required,max=1000"`
	IsRead      bool                   `bson:"is_read" json:"isRead"`
	Priority    NotificationPriority   `bson:"priority" json:"priority"`
	RelatedID   string                 `bson:"related_id,omitempty" json:"relatedId,omitempty"`
	RelatedType string                 `bson:"related_type,omitempty" json:"relatedType,omitempty"`
	ActionURL   string                 `bson:"action_url,omitempty" json:"actionUrl,omitempty" binding:"omitempty,actionurl"`
	UserID      string                 `bson:"user_id" json:"userId"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	ReadAt      *time.Time             `bson:"read_at,omitempty" json:"readAt,omitempty"`
	CreatedAt   time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time              `bson:"updated_at" json:"updated_at"`
}
