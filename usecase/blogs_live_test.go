package usecase_test

import (
	"context"
	"os"
	"testing"

	"main/model"
	"main/repository"
	"main/test/testutils"
	"main/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "portfolio_test")
}

func setupBlogsService(t *testing.T) (*usecase.BlogsService, *mongo.Client, func()) {
	client, cleanup := testutils.SetupTestDB(t)

	db := client.Database(os.Getenv("MONGO_DB"))
	for _, coll := range []string{"blogs", "blog_stats", "comments", "notifications"} {
		if err := db.Collection(coll).Drop(context.Background()); err != nil {
			t.Logf("Warning: failed to drop %s collection: %v", coll, err)
		}
	}
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	svc := &usecase.BlogsService{
		BlogsRepo:         repository.GetBlogsRepo(client),
		BlogStatsRepo:     repository.GetBlogStatsRepo(client),
		CommentsRepo:      repository.GetCommentsRepo(client),
		NotificationsRepo: repository.GetNotificationsRepo(client),
	}
	return svc, client, cleanup
}

func newDraftBlog(title string) *model.Blog {
	return &model.Blog{
		Title:    title,
		Excerpt:  "An excerpt",
		Content:  "Some content for the test blog post.",
		Category: "engineering",
		Author:   model.BlogAuthor{Name: "Test Author"},
	}
}

func TestCreateBlogGeneratesUniqueSlugs(t *testing.T) {
	svc, _, cleanup := setupBlogsService(t)
	defer cleanup()
	ctx := context.Background()

	wantSlugs := []string{"hello-world", "hello-world-1", "hello-world-2"}
	for i, want := range wantSlugs {
		blog := newDraftBlog("Hello World")
		if err := svc.CreateBlog(ctx, blog); err != nil {
			t.Fatalf("CreateBlog %d failed: %v", i, err)
		}
		if blog.Slug != want {
			t.Errorf("blog %d slug = %q, want %q", i, blog.Slug, want)
		}
	}
}

func TestCreateBlogDefaults(t *testing.T) {
	svc, _, cleanup := setupBlogsService(t)
	defer cleanup()
	ctx := context.Background()

	blog := newDraftBlog("Defaults")
	if err := svc.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}
	if blog.Status != model.StatusDraft {
		t.Errorf("status = %q, want draft", blog.Status)
	}
	if blog.ReadTime < 1 {
		t.Errorf("read time = %d, want at least 1", blog.ReadTime)
	}
	if blog.PublishedAt != nil {
		t.Error("draft should not have a published_at stamp")
	}
}

func TestCreateBlogStampsPublishedAt(t *testing.T) {
	svc, _, cleanup := setupBlogsService(t)
	defer cleanup()
	ctx := context.Background()

	blog := newDraftBlog("Going Live")
	blog.Status = model.StatusPublished
	if err := svc.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}
	if blog.PublishedAt == nil {
		t.Error("publishing should stamp published_at")
	}
}

func TestLikeDeduplicatesByIP(t *testing.T) {
	svc, _, cleanup := setupBlogsService(t)
	defer cleanup()
	ctx := context.Background()

	blog := newDraftBlog("Likeable")
	blog.Status = model.StatusPublished
	if err := svc.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	total, err := svc.Like(ctx, blog, "1.2.3.4")
	if err != nil {
		t.Fatalf("first Like failed: %v", err)
	}
	if total != 1 {
		t.Errorf("total after first like = %d, want 1", total)
	}

	// Same IP again is rejected
	fresh, err := svc.BlogsRepo.GetBlog(ctx, blog.ID)
	if err != nil {
		t.Fatalf("GetBlog failed: %v", err)
	}
	if _, err := svc.Like(ctx, fresh, "1.2.3.4"); err != usecase.ErrAlreadyLiked {
		t.Errorf("second like from same IP: expected ErrAlreadyLiked, got %v", err)
	}

	// A different IP still counts
	fresh, err = svc.BlogsRepo.GetBlog(ctx, blog.ID)
	if err != nil {
		t.Fatalf("GetBlog failed: %v", err)
	}
	total, err = svc.Like(ctx, fresh, "5.6.7.8")
	if err != nil {
		t.Fatalf("like from second IP failed: %v", err)
	}
	if total != 2 {
		t.Errorf("total after second like = %d, want 2", total)
	}
}

func TestRecordViewCountsUniquePerIP(t *testing.T) {
	svc, _, cleanup := setupBlogsService(t)
	defer cleanup()
	ctx := context.Background()

	blog := newDraftBlog("Viewable")
	blog.Status = model.StatusPublished
	if err := svc.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.RecordView(ctx, blog, "1.2.3.4", "test-agent", ""); err != nil {
			t.Fatalf("RecordView failed: %v", err)
		}
	}
	if err := svc.RecordView(ctx, blog, "5.6.7.8", "test-agent", ""); err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}

	got, err := svc.BlogsRepo.GetBlog(ctx, blog.ID)
	if err != nil {
		t.Fatalf("GetBlog failed: %v", err)
	}
	if got.Stats.Views.Total != 3 {
		t.Errorf("total views = %d, want 3", got.Stats.Views.Total)
	}
	if got.Stats.Views.Unique != 2 {
		t.Errorf("unique views = %d, want 2", got.Stats.Views.Unique)
	}
}

func TestDeleteBlogCascades(t *testing.T) {
	svc, client, cleanup := setupBlogsService(t)
	defer cleanup()
	ctx := context.Background()

	blog := newDraftBlog("Doomed")
	blog.Status = model.StatusPublished
	if err := svc.CreateBlog(ctx, blog); err != nil {
		t.Fatalf("CreateBlog failed: %v", err)
	}
	if _, err := svc.Like(ctx, blog, "1.2.3.4"); err != nil {
		t.Fatalf("Like failed: %v", err)
	}

	if err := svc.DeleteBlog(ctx, blog.ID); err != nil {
		t.Fatalf("DeleteBlog failed: %v", err)
	}

	if _, err := svc.BlogsRepo.GetBlog(ctx, blog.ID); err != repository.ErrNotFound {
		t.Errorf("blog should be gone, got %v", err)
	}

	db := client.Database(os.Getenv("MONGO_DB"))
	count, err := db.Collection("blog_stats").CountDocuments(ctx, bson.M{"blog_id": blog.ID})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("blog stats should be deleted with the blog, found %d", count)
	}
}
