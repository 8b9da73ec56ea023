package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

type MessagesService struct {
	MessagesRepo      *repository.MessagesRepo
	NotificationsRepo *repository.NotificationsRepo
}

// Submit stores a new contact message and raises a dashboard
// notification. The notification is best effort.
func (svc *MessagesService) Submit(ctx context.Context, message *model.Message) error {
	if !model.ValidMessageSubject(message.Subject) {
		return fmt.Errorf("invalid subject %q", message.Subject)
	}
	message.Name = strings.TrimSpace(message.Name)
	message.Message = strings.TrimSpace(message.Message)
	if message.Message == "" {
		return errors.New("message body is required")
	}
	if !utils.ValidateEmail(message.Email) {
		return fmt.Errorf("invalid email address %q", message.Email)
	}

	if err := svc.MessagesRepo.CreateMessage(ctx, message); err != nil {
		return err
	}

	priority := model.PriorityMedium
	if message.Subject == model.SubjectJob {
		priority = model.PriorityHigh
	}
	n := &model.Notification{
		Type:        model.NotifyMessage,
		Title:       "New contact message",
		Message:     fmt.Sprintf("%s sent a message: %s", message.Name, message.Subject),
		Priority:    priority,
		RelatedID:   message.ID,
		RelatedType: "message",
		ActionURL:   "/dashboard/messages/" + message.ID,
	}
	if err := svc.NotificationsRepo.CreateNotification(ctx, n); err != nil {
		log.Printf("failed to create message notification: %v", err)
	}
	return nil
}

// validTransitions is the forward path of the message lifecycle;
// archiving is allowed from anywhere, unarchiving returns to read.
var validTransitions = map[model.MessageStatus][]model.MessageStatus{
	model.MessageUnread:   {model.MessageRead, model.MessageArchived},
	model.MessageRead:     {model.MessageUnread, model.MessageReplied, model.MessageArchived},
	model.MessageReplied:  {model.MessageArchived},
	model.MessageArchived: {model.MessageRead},
}

func (svc *MessagesService) SetStatus(ctx context.Context, id string, status model.MessageStatus) (*model.Message, error) {
	current, err := svc.MessagesRepo.GetMessage(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}

	allowed := false
	for _, next := range validTransitions[current.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot move message from %s to %s", current.Status, status)
	}

	return svc.MessagesRepo.SetStatus(ctx, id, status)
}

// Reply appends an admin reply, which also moves the message to replied.
func (svc *MessagesService) Reply(ctx context.Context, id, text string) (*model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("reply message is required")
	}

	reply := model.Reply{
		Message: text,
		SentAt:  time.Now(),
		SentBy:  "admin",
	}
	return svc.MessagesRepo.AddReply(ctx, id, reply)
}
