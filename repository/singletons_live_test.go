package repository_test

import (
	"context"
	"os"
	"testing"

	"main/model"
	"main/repository"
	"main/test/testutils"

	"go.mongodb.org/mongo-driver/bson"
)

func setupSingletonsTest(t *testing.T) (*repository.SettingsRepo, *repository.StatsRepo, func()) {
	client, cleanup := testutils.SetupTestDB(t)

	db := client.Database(os.Getenv("MONGO_DB"))
	for _, coll := range []string{"settings", "stats"} {
		if err := db.Collection(coll).Drop(context.Background()); err != nil {
			t.Logf("Warning: failed to drop %s collection: %v", coll, err)
		}
	}

	return repository.GetSettingsRepo(client), repository.GetStatsRepo(client), cleanup
}

func TestGetSettingsCreatesDefaults(t *testing.T) {
	settingsRepo, _, cleanup := setupSingletonsTest(t)
	defer cleanup()
	ctx := context.Background()

	first, err := settingsRepo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("created settings should have an id")
	}
	if first.OutreachSettings.DefaultFollowUpGapDays != 7 {
		t.Errorf("default follow-up gap = %d, want 7", first.OutreachSettings.DefaultFollowUpGapDays)
	}
	if got := first.OutreachSettings.FollowUpCap(); got != 2 {
		t.Errorf("default follow-up cap = %d, want 2", got)
	}
	if got := (model.OutreachSettings{}).FollowUpCap(); got != 2 {
		t.Errorf("zero-value follow-up cap = %d, want 2", got)
	}

	// A second call returns the same document, not a new one
	second, err := settingsRepo.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second GetSettings returned a different document: %s vs %s", second.ID, first.ID)
	}
}

func TestUpdateSettings(t *testing.T) {
	settingsRepo, _, cleanup := setupSingletonsTest(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := settingsRepo.GetSettings(ctx); err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}

	updated, err := settingsRepo.UpdateSettings(ctx, bson.M{"full_name": "Ada Lovelace"})
	if err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}
	if updated.FullName != "Ada Lovelace" {
		t.Errorf("full name = %q, want %q", updated.FullName, "Ada Lovelace")
	}
}

func TestCreateStatsSingleton(t *testing.T) {
	_, statsRepo, cleanup := setupSingletonsTest(t)
	defer cleanup()
	ctx := context.Background()

	stats := model.DefaultStats()
	if err := statsRepo.CreateStats(ctx, stats); err != nil {
		t.Fatalf("first CreateStats failed: %v", err)
	}

	err := statsRepo.CreateStats(ctx, model.DefaultStats())
	if err != repository.ErrSingletonExists {
		t.Errorf("second CreateStats: expected ErrSingletonExists, got %v", err)
	}
}

func TestGetStatsCreatesDefaults(t *testing.T) {
	_, statsRepo, cleanup := setupSingletonsTest(t)
	defer cleanup()
	ctx := context.Background()

	first, err := statsRepo.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if first.ID == "" {
		t.Fatal("created stats should have an id")
	}

	second, err := statsRepo.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second GetStats returned a different document: %s vs %s", second.ID, first.ID)
	}
}
