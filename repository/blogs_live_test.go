package repository_test

import (
	"context"
	"os"
	"testing"

	"main/model"
	"main/repository"
	"main/test/testutils"

	"github.com/google/uuid"
)

func setupBlogsTest(t *testing.T) (*repository.BlogsRepo, func()) {
	client, cleanup := testutils.SetupTestDB(t)

	db := client.Database(os.Getenv("MONGO_DB"))
	if err := db.Collection("blogs").Drop(context.Background()); err != nil {
		t.Logf("Warning: failed to drop blogs collection: %v", err)
	}
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	return repository.GetBlogsRepo(client), cleanup
}

func createTestBlog(title, slug string) *model.Blog {
	return &model.Blog{
		ID:       uuid.New().String(),
		Title:    title,
		Slug:     slug,
		Excerpt:  "An excerpt",
		Content:  "Some content for the test blog post.",
		Category: "engineering",
		Author:   model.BlogAuthor{Name: "Test Author"},
		Status:   model.StatusPublished,
	}
}

func TestSlugExists(t *testing.T) {
	repo, cleanup := setupBlogsTest(t)
	defer cleanup()
	ctx := context.Background()

	blog := createTestBlog("Hello World", "hello-world")
	if err := repo.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	taken, err := repo.SlugExists(ctx, "hello-world", "")
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if !taken {
		t.Error("existing slug should be reported as taken")
	}

	// The blog's own id is excluded, so the slug is free for itself
	taken, err = repo.SlugExists(ctx, "hello-world", blog.ID)
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if taken {
		t.Error("slug should be free when its owner is excluded")
	}

	taken, err = repo.SlugExists(ctx, "no-such-slug", "")
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if taken {
		t.Error("unknown slug should be free")
	}
}

func TestIncrementViewsAndShares(t *testing.T) {
	repo, cleanup := setupBlogsTest(t)
	defer cleanup()
	ctx := context.Background()

	blog := createTestBlog("Counting Things", "counting-things")
	if err := repo.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	if err := repo.IncrementViews(ctx, blog.ID, true); err != nil {
		t.Fatalf("IncrementViews failed: %v", err)
	}
	if err := repo.IncrementViews(ctx, blog.ID, false); err != nil {
		t.Fatalf("IncrementViews failed: %v", err)
	}
	if err := repo.IncrementShares(ctx, blog.ID, "twitter"); err != nil {
		t.Fatalf("IncrementShares failed: %v", err)
	}
	if err := repo.IncrementShares(ctx, blog.ID, "somewhere-else"); err != nil {
		t.Fatalf("IncrementShares failed: %v", err)
	}

	got, err := repo.GetBlog(ctx, blog.ID)
	if err != nil {
		t.Fatalf("GetBlog failed: %v", err)
	}
	if got.Stats.Views.Total != 2 {
		t.Errorf("total views = %d, want 2", got.Stats.Views.Total)
	}
	if got.Stats.Views.Unique != 1 {
		t.Errorf("unique views = %d, want 1", got.Stats.Views.Unique)
	}
	if got.Stats.Shares.Total != 2 {
		t.Errorf("total shares = %d, want 2", got.Stats.Shares.Total)
	}
	if got.Stats.Shares.Platforms.Twitter != 1 {
		t.Errorf("twitter shares = %d, want 1", got.Stats.Shares.Platforms.Twitter)
	}
}

func TestGetPublishedBlogBySlug(t *testing.T) {
	repo, cleanup := setupBlogsTest(t)
	defer cleanup()
	ctx := context.Background()

	draft := createTestBlog("Still Cooking", "still-cooking")
	draft.Status = model.StatusDraft
	if err := repo.CreateBlog(ctx, draft); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	if _, err := repo.GetPublishedBlogBySlug(ctx, "still-cooking"); err != repository.ErrNotFound {
		t.Errorf("draft should not be visible publicly, got %v", err)
	}

	published := createTestBlog("Done", "done")
	if err := repo.CreateBlog(ctx, published); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	got, err := repo.GetPublishedBlogBySlug(ctx, "done")
	if err != nil {
		t.Fatalf("GetPublishedBlogBySlug failed: %v", err)
	}
	if got.ID != published.ID {
		t.Errorf("got blog %s, want %s", got.ID, published.ID)
	}
}
