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

func init() {
	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "portfolio_test")
}

func setupSkillsTest(t *testing.T) (*repository.SkillsRepo, func()) {
	client, cleanup := testutils.SetupTestDB(t)

	db := client.Database(os.Getenv("MONGO_DB"))
	if err := db.Collection("skills").Drop(context.Background()); err != nil {
		t.Logf("Warning: failed to drop skills collection: %v", err)
	}

	return repository.GetSkillsRepo(client), cleanup
}

func createTestSkill(name, category string) *model.Skill {
	return &model.Skill{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Proficiency: 4,
	}
}

func TestCreateSkillAssignsPerCategoryOrder(t *testing.T) {
	repo, cleanup := setupSkillsTest(t)
	defer cleanup()
	ctx := context.Background()

	backend := []*model.Skill{
		createTestSkill("Go", "backend"),
		createTestSkill("PostgreSQL", "backend"),
		createTestSkill("MongoDB", "backend"),
	}
	for _, s := range backend {
		if err := repo.CreateSkill(ctx, s); err != nil {
			t.Fatalf("CreateSkill failed: %v", err)
		}
	}

	frontend := createTestSkill("React", "frontend")
	if err := repo.CreateSkill(ctx, frontend); err != nil {
		t.Fatalf("CreateSkill failed: %v", err)
	}

	for i, s := range backend {
		got, err := repo.GetSkill(ctx, s.ID)
		if err != nil {
			t.Fatalf("GetSkill failed: %v", err)
		}
		if got.Order != i {
			t.Errorf("backend skill %s order = %d, want %d", got.Name, got.Order, i)
		}
	}

	got, err := repo.GetSkill(ctx, frontend.ID)
	if err != nil {
		t.Fatalf("GetSkill failed: %v", err)
	}
	if got.Order != 0 {
		t.Errorf("frontend skill order = %d, want 0 (categories order independently)", got.Order)
	}
}

func TestDeleteSkillClosesOrderGap(t *testing.T) {
	repo, cleanup := setupSkillsTest(t)
	defer cleanup()
	ctx := context.Background()

	skills := []*model.Skill{
		createTestSkill("Go", "backend"),
		createTestSkill("PostgreSQL", "backend"),
		createTestSkill("MongoDB", "backend"),
	}
	for _, s := range skills {
		if err := repo.CreateSkill(ctx, s); err != nil {
			t.Fatalf("CreateSkill failed: %v", err)
		}
	}
	other := createTestSkill("React", "frontend")
	if err := repo.CreateSkill(ctx, other); err != nil {
		t.Fatalf("CreateSkill failed: %v", err)
	}

	// Delete the middle skill; the last one should slide down
	if err := repo.DeleteSkill(ctx, skills[1].ID); err != nil {
		t.Fatalf("DeleteSkill failed: %v", err)
	}

	first, err := repo.GetSkill(ctx, skills[0].ID)
	if err != nil {
		t.Fatalf("GetSkill failed: %v", err)
	}
	if first.Order != 0 {
		t.Errorf("first skill order = %d, want 0", first.Order)
	}

	last, err := repo.GetSkill(ctx, skills[2].ID)
	if err != nil {
		t.Fatalf("GetSkill failed: %v", err)
	}
	if last.Order != 1 {
		t.Errorf("last skill order = %d, want 1 after renumbering", last.Order)
	}

	// Other categories are untouched
	untouched, err := repo.GetSkill(ctx, other.ID)
	if err != nil {
		t.Fatalf("GetSkill failed: %v", err)
	}
	if untouched.Order != 0 {
		t.Errorf("frontend skill order = %d, want 0", untouched.Order)
	}
}

func TestDeleteSkillNotFound(t *testing.T) {
	repo, cleanup := setupSkillsTest(t)
	defer cleanup()

	err := repo.DeleteSkill(context.Background(), uuid.New().String())
	if err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReorderSkills(t *testing.T) {
	repo, cleanup := setupSkillsTest(t)
	defer cleanup()
	ctx := context.Background()

	skills := []*model.Skill{
		createTestSkill("Go", "backend"),
		createTestSkill("PostgreSQL", "backend"),
		createTestSkill("MongoDB", "backend"),
	}
	for _, s := range skills {
		if err := repo.CreateSkill(ctx, s); err != nil {
			t.Fatalf("CreateSkill failed: %v", err)
		}
	}

	// Reverse the order
	if err := repo.ReorderSkills(ctx, []string{skills[2].ID, skills[1].ID, skills[0].ID}); err != nil {
		t.Fatalf("ReorderSkills failed: %v", err)
	}

	wantOrders := map[string]int{
		skills[2].ID: 0,
		skills[1].ID: 1,
		skills[0].ID: 2,
	}
	for id, want := range wantOrders {
		got, err := repo.GetSkill(ctx, id)
		if err != nil {
			t.Fatalf("GetSkill failed: %v", err)
		}
		if got.Order != want {
			t.Errorf("skill %s order = %d, want %d", got.Name, got.Order, want)
		}
	}
}

func TestSkillCategories(t *testing.T) {
	repo, cleanup := setupSkillsTest(t)
	defer cleanup()
	ctx := context.Background()

	for _, s := range []*model.Skill{
		createTestSkill("Go", "backend"),
		createTestSkill("React", "frontend"),
		createTestSkill("Docker", "devops"),
	} {
		if err := repo.CreateSkill(ctx, s); err != nil {
			t.Fatalf("CreateSkill failed: %v", err)
		}
	}

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 3 {
		t.Errorf("got %d categories, want 3: %v", len(categories), categories)
	}
}
