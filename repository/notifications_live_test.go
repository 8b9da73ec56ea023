package repository_test

import (
	"context"
	"os"
	"testing"

	"main/model"
	"main/repository"
	"main/test/testutils"
)

func setupNotificationsTest(t *testing.T) (*repository.NotificationsRepo, func()) {
	client, cleanup := testutils.SetupTestDB(t)

	db := client.Database(os.Getenv("MONGO_DB"))
	if err := db.Collection("notifications").Drop(context.Background()); err != nil {
		t.Logf("Warning: failed to drop notifications collection: %v", err)
	}

	return repository.GetNotificationsRepo(client), cleanup
}

func createTestNotification(t *testing.T, repo *repository.NotificationsRepo, priority model.NotificationPriority) *model.Notification {
	t.Helper()
	n := &model.Notification{
		Type:     model.NotifySystem,
		Title:    "Test notification",
		Message:  "Something happened",
		Priority: priority,
	}
	if err := repo.CreateNotification(context.Background(), n); err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}
	return n
}

func TestFindNotificationsFiltersByPriority(t *testing.T) {
	repo, cleanup := setupNotificationsTest(t)
	defer cleanup()
	ctx := context.Background()

	createTestNotification(t, repo, model.PriorityLow)
	createTestNotification(t, repo, model.PriorityHigh)
	createTestNotification(t, repo, model.PriorityHigh)

	high, total, err := repo.FindNotifications(ctx, repository.NotificationFilter{Priority: model.PriorityHigh})
	if err != nil {
		t.Fatalf("FindNotifications failed: %v", err)
	}
	if total != 2 || len(high) != 2 {
		t.Fatalf("high priority: total = %d, len = %d, want 2", total, len(high))
	}
	for _, n := range high {
		if n.Priority != model.PriorityHigh {
			t.Errorf("priority = %q, want high", n.Priority)
		}
	}

	_, total, err = repo.FindNotifications(ctx, repository.NotificationFilter{})
	if err != nil {
		t.Fatalf("FindNotifications failed: %v", err)
	}
	if total != 3 {
		t.Errorf("unfiltered total = %d, want 3", total)
	}
}

func TestSetReadTogglesSingleNotification(t *testing.T) {
	repo, cleanup := setupNotificationsTest(t)
	defer cleanup()
	ctx := context.Background()

	n := createTestNotification(t, repo, model.PriorityMedium)

	affected, err := repo.SetRead(ctx, []string{n.ID}, true)
	if err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected = %d, want 1", affected)
	}

	unread, err := repo.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread count = %d, want 0", unread)
	}

	// Back to unread
	if _, err := repo.SetRead(ctx, []string{n.ID}, false); err != nil {
		t.Fatalf("SetRead failed: %v", err)
	}
	unread, err = repo.UnreadCount(ctx)
	if err != nil {
		t.Fatalf("UnreadCount failed: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread count = %d, want 1", unread)
	}
}
