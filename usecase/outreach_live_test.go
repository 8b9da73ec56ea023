package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/test/testutils"
	"main/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func setupOutreachService(t *testing.T) (*usecase.OutreachService, func()) {
	client, cleanup := testutils.SetupTestDB(t)

	db := client.Database(os.Getenv("MONGO_DB"))
	collections := []string{
		"outreach_companies", "outreach_contacts", "outreach_emails",
		"outreach_templates", "settings", "notifications",
	}
	for _, coll := range collections {
		if err := db.Collection(coll).Drop(context.Background()); err != nil {
			t.Logf("Warning: failed to drop %s collection: %v", coll, err)
		}
	}
	if err := repository.SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	svc := &usecase.OutreachService{
		CompaniesRepo:     repository.GetOutreachCompaniesRepo(client),
		ContactsRepo:      repository.GetOutreachContactsRepo(client),
		EmailsRepo:        repository.GetOutreachEmailsRepo(client),
		TemplatesRepo:     repository.GetOutreachTemplatesRepo(client),
		SettingsRepo:      repository.GetSettingsRepo(client),
		NotificationsRepo: repository.GetNotificationsRepo(client),
	}
	return svc, cleanup
}

func createCompanyAndContact(t *testing.T, svc *usecase.OutreachService) (*model.OutreachCompany, *model.OutreachContact) {
	t.Helper()
	ctx := context.Background()

	company := &model.OutreachCompany{Name: "Acme Corp", Country: "Germany"}
	if err := svc.CompaniesRepo.CreateCompany(ctx, company); err != nil {
		t.Fatalf("CreateCompany failed: %v", err)
	}

	contact := &model.OutreachContact{
		CompanyID: company.ID,
		Name:      "Jordan Smith",
		Email:     "jordan@acme.example",
	}
	if err := svc.CreateContact(ctx, contact); err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	return company, contact
}

func TestLogEmailSetsFollowUpDate(t *testing.T) {
	svc, cleanup := setupOutreachService(t)
	defer cleanup()
	ctx := context.Background()

	company, contact := createCompanyAndContact(t, svc)

	email := &model.OutreachEmail{
		ContactID: contact.ID,
		CompanyID: company.ID,
		Subject:   "Backend Engineer Application",
		Body:      "Hello, I would love to join your team.",
	}
	loggedBefore := testutil.ToFloat64(middleware.OutreachEmailsLogged)
	if err := svc.LogEmail(ctx, email); err != nil {
		t.Fatalf("LogEmail failed: %v", err)
	}
	if got := testutil.ToFloat64(middleware.OutreachEmailsLogged); got != loggedBefore+1 {
		t.Errorf("logged email counter = %v, want %v", got, loggedBefore+1)
	}

	if email.FollowUpDate == nil {
		t.Fatal("follow-up date should default from settings")
	}
	wantFollowUp := email.SentAt.AddDate(0, 0, 7)
	if diff := email.FollowUpDate.Sub(wantFollowUp); diff < -time.Minute || diff > time.Minute {
		t.Errorf("follow-up date = %v, want about %v", email.FollowUpDate, wantFollowUp)
	}

	// Logging an email marks the contact contacted
	updated, err := svc.ContactsRepo.GetContact(ctx, contact.ID)
	if err != nil {
		t.Fatalf("GetContact failed: %v", err)
	}
	if updated.Status != model.ContactContacted {
		t.Errorf("contact status = %q, want contacted", updated.Status)
	}
	if updated.LastContactedAt == nil {
		t.Error("last_contacted_at should be stamped")
	}
}

func TestLogEmailRejectsUnknownContact(t *testing.T) {
	svc, cleanup := setupOutreachService(t)
	defer cleanup()

	email := &model.OutreachEmail{
		ContactID: "no-such-contact",
		CompanyID: "no-such-company",
		Subject:   "Hello",
		Body:      "World",
	}
	err := svc.LogEmail(context.Background(), email)
	if !errors.Is(err, repository.ErrInvalidReference) {
		t.Errorf("expected ErrInvalidReference, got %v", err)
	}
}

func TestFollowUpScan(t *testing.T) {
	svc, cleanup := setupOutreachService(t)
	defer cleanup()
	ctx := context.Background()

	company, contact := createCompanyAndContact(t, svc)

	past := time.Now().Add(-48 * time.Hour)
	email := &model.OutreachEmail{
		ContactID:    contact.ID,
		CompanyID:    company.ID,
		Subject:      "Checking In",
		Body:         "Just checking in.",
		SentAt:       past,
		FollowUpDate: &past,
	}
	if err := svc.EmailsRepo.CreateEmail(ctx, email); err != nil {
		t.Fatalf("CreateEmail failed: %v", err)
	}

	result, err := svc.RunFollowUpScan(ctx)
	if err != nil {
		t.Fatalf("RunFollowUpScan failed: %v", err)
	}
	if result.Due != 1 || result.Notified != 1 {
		t.Fatalf("first scan = %+v, want 1 due and 1 notified", result)
	}

	notifications, _, err := svc.NotificationsRepo.FindNotifications(ctx, repository.NotificationFilter{})
	if err != nil {
		t.Fatalf("FindNotifications failed: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications))
	}
	if !strings.Contains(notifications[0].Message, contact.Name) {
		t.Errorf("notification should name the contact: %q", notifications[0].Message)
	}

	// The scan pushed the follow-up date forward
	updated, err := svc.EmailsRepo.GetEmail(ctx, email.ID)
	if err != nil {
		t.Fatalf("GetEmail failed: %v", err)
	}
	if updated.FollowUpCount != 1 {
		t.Errorf("follow-up count = %d, want 1", updated.FollowUpCount)
	}
	if !updated.FollowUpDate.After(time.Now()) {
		t.Error("follow-up date should be pushed into the future")
	}

	// Force the email due again: the recent notification dedupes it
	due := time.Now().Add(-time.Hour)
	if err := svc.EmailsRepo.UpdateEmail(ctx, email.ID, bson.M{"follow_up_date": due}); err != nil {
		t.Fatalf("UpdateEmail failed: %v", err)
	}

	result, err = svc.RunFollowUpScan(ctx)
	if err != nil {
		t.Fatalf("second RunFollowUpScan failed: %v", err)
	}
	if result.Due != 1 || result.Skipped != 1 || result.Notified != 0 {
		t.Errorf("second scan = %+v, want 1 due and 1 skipped", result)
	}
}

func TestFollowUpScanRespectsCap(t *testing.T) {
	svc, cleanup := setupOutreachService(t)
	defer cleanup()
	ctx := context.Background()

	company, contact := createCompanyAndContact(t, svc)

	past := time.Now().Add(-48 * time.Hour)
	email := &model.OutreachEmail{
		ContactID:     contact.ID,
		CompanyID:     company.ID,
		Subject:       "Exhausted",
		Body:          "No more follow-ups.",
		SentAt:        past,
		FollowUpDate:  &past,
		FollowUpCount: model.MaxFollowUpCount,
	}
	if err := svc.EmailsRepo.CreateEmail(ctx, email); err != nil {
		t.Fatalf("CreateEmail failed: %v", err)
	}

	result, err := svc.RunFollowUpScan(ctx)
	if err != nil {
		t.Fatalf("RunFollowUpScan failed: %v", err)
	}
	if result.Due != 0 {
		t.Errorf("email at the follow-up cap should not be due, got %+v", result)
	}
}

func TestFollowUpScanUsesConfiguredCap(t *testing.T) {
	svc, cleanup := setupOutreachService(t)
	defer cleanup()
	ctx := context.Background()

	company, contact := createCompanyAndContact(t, svc)

	if _, err := svc.SettingsRepo.GetSettings(ctx); err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if _, err := svc.SettingsRepo.UpdateSettings(ctx, bson.M{"outreach_settings.max_follow_ups": 4}); err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}

	past := time.Now().Add(-48 * time.Hour)
	email := &model.OutreachEmail{
		ContactID:     contact.ID,
		CompanyID:     company.ID,
		Subject:       "Past the default",
		Body:          "Still under the configured cap.",
		SentAt:        past,
		FollowUpDate:  &past,
		FollowUpCount: model.MaxFollowUpCount,
	}
	if err := svc.EmailsRepo.CreateEmail(ctx, email); err != nil {
		t.Fatalf("CreateEmail failed: %v", err)
	}

	result, err := svc.RunFollowUpScan(ctx)
	if err != nil {
		t.Fatalf("RunFollowUpScan failed: %v", err)
	}
	if result.Due != 1 || result.Notified != 1 {
		t.Errorf("raised cap should make the email due, got %+v", result)
	}
}

func TestMarkRepliedSyncsContact(t *testing.T) {
	svc, cleanup := setupOutreachService(t)
	defer cleanup()
	ctx := context.Background()

	company, contact := createCompanyAndContact(t, svc)

	email := &model.OutreachEmail{
		ContactID: contact.ID,
		CompanyID: company.ID,
		Subject:   "Ping",
		Body:      "Hello",
	}
	if err := svc.LogEmail(ctx, email); err != nil {
		t.Fatalf("LogEmail failed: %v", err)
	}

	updated, err := svc.MarkReplied(ctx, email.ID, model.OutcomePositive, "They want a call")
	if err != nil {
		t.Fatalf("MarkReplied failed: %v", err)
	}
	if updated.Status != model.EmailReplied {
		t.Errorf("email status = %q, want replied", updated.Status)
	}
	if updated.ReplyReceivedAt == nil {
		t.Error("reply_received_at should be stamped")
	}

	refreshed, err := svc.ContactsRepo.GetContact(ctx, contact.ID)
	if err != nil {
		t.Fatalf("GetContact failed: %v", err)
	}
	if refreshed.Status != model.ContactReplied {
		t.Errorf("contact status = %q, want replied", refreshed.Status)
	}
}

func TestImportCompaniesSkipsDuplicates(t *testing.T) {
	svc, cleanup := setupOutreachService(t)
	defer cleanup()
	ctx := context.Background()

	existing := &model.OutreachCompany{Name: "Acme Corp", Country: "Germany"}
	if err := svc.CompaniesRepo.CreateCompany(ctx, existing); err != nil {
		t.Fatalf("CreateCompany failed: %v", err)
	}

	csv := strings.Join([]string{
		"name,country",
		"ACME CORP,germany",
		"Initech,USA",
		",France",
	}, "\n")

	result, err := svc.ImportCompanies(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportCompanies failed: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("imported = %d, want 1", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("skipped = %d, want 2 (duplicate plus invalid row)", result.Skipped)
	}

	total, err := svc.CompaniesRepo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 2 {
		t.Errorf("company count = %d, want 2", total)
	}
}

func TestImportContactsResolvesCompanyByName(t *testing.T) {
	svc, cleanup := setupOutreachService(t)
	defer cleanup()
	ctx := context.Background()

	company, existing := createCompanyAndContact(t, svc)

	csv := strings.Join([]string{
		"name,email,company",
		"Riley Chen,riley@acme.example,ACME CORP",
		"Sam Park,sam@ghost.example,Ghost Inc",
		"Dup Contact," + existing.Email + ",Acme Corp",
	}, "\n")

	result, err := svc.ImportContacts(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportContacts failed: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("imported = %d, want 1", result.Imported)
	}
	if result.Skipped != 2 {
		t.Errorf("skipped = %d, want 2 (unknown company plus duplicate email)", result.Skipped)
	}

	imported, err := svc.ContactsRepo.FindByEmail(ctx, "riley@acme.example")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if imported.CompanyID != company.ID {
		t.Errorf("company id = %q, want %q", imported.CompanyID, company.ID)
	}
}
