package usecase_test

import (
	"context"
	"os"
	"testing"

	"main/model"
	"main/repository"
	"main/test/testutils"
	"main/usecase"
)

func setupMessagesService(t *testing.T) (*usecase.MessagesService, func()) {
	client, cleanup := testutils.SetupTestDB(t)

	db := client.Database(os.Getenv("MONGO_DB"))
	for _, coll := range []string{"messages", "notifications"} {
		if err := db.Collection(coll).Drop(context.Background()); err != nil {
			t.Logf("Warning: failed to drop %s collection: %v", coll, err)
		}
	}

	svc := &usecase.MessagesService{
		MessagesRepo:      repository.GetMessagesRepo(client),
		NotificationsRepo: repository.GetNotificationsRepo(client),
	}
	return svc, cleanup
}

func newTestMessage(subject model.MessageSubject) *model.Message {
	return &model.Message{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: subject,
		Message: "Hi, I would like to talk.",
	}
}

func TestSubmitMessageCreatesNotification(t *testing.T) {
	svc, cleanup := setupMessagesService(t)
	defer cleanup()
	ctx := context.Background()

	msg := newTestMessage(model.SubjectJob)
	if err := svc.Submit(ctx, msg); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	stored, err := svc.MessagesRepo.GetMessage(ctx, msg.ID)
	if err != nil {
		t.Fatalf("GetMessage failed: %v", err)
	}
	if stored.Status != model.MessageUnread {
		t.Errorf("new message status = %q, want unread", stored.Status)
	}

	notifications, _, err := svc.NotificationsRepo.FindNotifications(ctx, repository.NotificationFilter{})
	if err != nil {
		t.Fatalf("FindNotifications failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	if notifications[0].Priority != model.PriorityHigh {
		t.Errorf("job inquiry notification priority = %q, want high", notifications[0].Priority)
	}
}

func TestSubmitMessageRejectsInvalidSubject(t *testing.T) {
	svc, cleanup := setupMessagesService(t)
	defer cleanup()

	msg := newTestMessage("Spam Subject")
	if err := svc.Submit(context.Background(), msg); err == nil {
		t.Error("expected error for unknown subject")
	}
}

func TestMessageStatusTransitions(t *testing.T) {
	svc, cleanup := setupMessagesService(t)
	defer cleanup()
	ctx := context.Background()

	msg := newTestMessage(model.SubjectGeneral)
	if err := svc.Submit(ctx, msg); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// unread -> replied skips read and is rejected
	if _, err := svc.SetStatus(ctx, msg.ID, model.MessageReplied); err == nil {
		t.Error("unread -> replied should be rejected")
	}

	updated, err := svc.SetStatus(ctx, msg.ID, model.MessageRead)
	if err != nil {
		t.Fatalf("unread -> read failed: %v", err)
	}
	if updated.ReadAt == nil {
		t.Error("marking read should stamp read_at")
	}

	updated, err = svc.SetStatus(ctx, msg.ID, model.MessageReplied)
	if err != nil {
		t.Fatalf("read -> replied failed: %v", err)
	}
	if updated.RepliedAt == nil {
		t.Error("marking replied should stamp replied_at")
	}

	// replied -> unread is not a valid transition
	if _, err := svc.SetStatus(ctx, msg.ID, model.MessageUnread); err == nil {
		t.Error("replied -> unread should be rejected")
	}

	// archive and unarchive back to read
	if _, err := svc.SetStatus(ctx, msg.ID, model.MessageArchived); err != nil {
		t.Fatalf("replied -> archived failed: %v", err)
	}
	if _, err := svc.SetStatus(ctx, msg.ID, model.MessageRead); err != nil {
		t.Fatalf("archived -> read failed: %v", err)
	}
}

func TestReplyMovesMessageToReplied(t *testing.T) {
	svc, cleanup := setupMessagesService(t)
	defer cleanup()
	ctx := context.Background()

	msg := newTestMessage(model.SubjectProject)
	if err := svc.Submit(ctx, msg); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	updated, err := svc.Reply(ctx, msg.ID, "Thanks for reaching out!")
	if err != nil {
		t.Fatalf("Reply failed: %v", err)
	}
	if updated.Status != model.MessageReplied {
		t.Errorf("status after reply = %q, want replied", updated.Status)
	}
	if len(updated.Replies) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(updated.Replies))
	}
	if updated.Replies[0].SentBy != "admin" {
		t.Errorf("reply sent_by = %q, want admin", updated.Replies[0].SentBy)
	}

	if _, err := svc.Reply(ctx, msg.ID, "   "); err == nil {
		t.Error("empty reply should be rejected")
	}
}
