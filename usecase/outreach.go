package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"main/middleware"
	"main/model"
	"main/repository"
	"main/services"
)

// followUpDedupeWindow suppresses duplicate follow-up reminders for the
// same email inside this window.
const followUpDedupeWindow = 24 * time.Hour

type OutreachService struct {
	CompaniesRepo     *repository.OutreachCompaniesRepo
	ContactsRepo      *repository.OutreachContactsRepo
	EmailsRepo        *repository.OutreachEmailsRepo
	TemplatesRepo     *repository.OutreachTemplatesRepo
	SettingsRepo      *repository.SettingsRepo
	NotificationsRepo *repository.NotificationsRepo
}

// CreateContact verifies the company reference before inserting.
func (svc *OutreachService) CreateContact(ctx context.Context, contact *model.OutreachContact) error {
	if _, err := svc.CompaniesRepo.GetCompany(ctx, contact.CompanyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: company %s", repository.ErrInvalidReference, contact.CompanyID)
		}
		return err
	}
	return svc.ContactsRepo.CreateContact(ctx, contact)
}

// DeleteCompany removes the company together with its contacts and their
// emails.
func (svc *OutreachService) DeleteCompany(ctx context.Context, id string) error {
	contacts, _, err := svc.ContactsRepo.FindContacts(ctx, repository.OutreachContactFilter{CompanyID: id})
	if err != nil {
		return err
	}
	for _, contact := range contacts {
		if err := svc.EmailsRepo.DeleteForContact(ctx, contact.ID); err != nil {
			return err
		}
	}
	if err := svc.ContactsRepo.DeleteForCompany(ctx, id); err != nil {
		return err
	}
	return svc.CompaniesRepo.DeleteCompany(ctx, id)
}

// DeleteContact removes the contact and its email history.
func (svc *OutreachService) DeleteContact(ctx context.Context, id string) error {
	if err := svc.EmailsRepo.DeleteForContact(ctx, id); err != nil {
		return err
	}
	return svc.ContactsRepo.DeleteContact(ctx, id)
}

// LogEmail records a sent outreach email. The follow-up date defaults to
// the configured gap after the send time and the contact moves to
// contacted.
func (svc *OutreachService) LogEmail(ctx context.Context, email *model.OutreachEmail) error {
	contact, err := svc.ContactsRepo.GetContact(ctx, email.ContactID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: contact %s", repository.ErrInvalidReference, email.ContactID)
		}
		return err
	}
	if contact.CompanyID != email.CompanyID {
		return fmt.Errorf("%w: contact %s does not belong to company %s", repository.ErrInvalidReference, email.ContactID, email.CompanyID)
	}

	if email.SentAt.IsZero() {
		email.SentAt = time.Now()
	}
	if email.FollowUpDate == nil {
		settings, err := svc.SettingsRepo.GetSettings(ctx)
		if err != nil {
			return err
		}
		gap := settings.OutreachSettings.DefaultFollowUpGapDays
		if gap <= 0 {
			gap = 7
		}
		followUp := email.SentAt.AddDate(0, 0, gap)
		email.FollowUpDate = &followUp
	}

	if err := svc.EmailsRepo.CreateEmail(ctx, email); err != nil {
		return err
	}
	middleware.OutreachEmailsLogged.Inc()
	if err := svc.ContactsRepo.MarkContacted(ctx, contact.ID, email.SentAt); err != nil {
		log.Printf("failed to mark contact %s contacted: %v", contact.ID, err)
	}
	return nil
}

// MarkReplied records the reply on the email and moves the contact to
// replied.
func (svc *OutreachService) MarkReplied(ctx context.Context, emailID string, outcome model.OutreachOutcome, note string) (*model.OutreachEmail, error) {
	switch outcome {
	case model.OutcomePositive, model.OutcomeNeutral, model.OutcomeRejection:
	default:
		return nil, fmt.Errorf("invalid outcome %q", outcome)
	}

	email, err := svc.EmailsRepo.MarkReplied(ctx, emailID, outcome, note)
	if err != nil {
		return nil, err
	}
	if err := svc.ContactsRepo.SetStatus(ctx, email.ContactID, model.ContactReplied); err != nil {
		log.Printf("failed to mark contact %s replied: %v", email.ContactID, err)
	}
	return email, nil
}

// Close ends the thread as closed or no_response and closes the contact.
func (svc *OutreachService) Close(ctx context.Context, emailID string, status model.OutreachEmailStatus) (*model.OutreachEmail, error) {
	if status != model.EmailClosed && status != model.EmailNoResponse {
		return nil, fmt.Errorf("invalid closing status %q", status)
	}

	email, err := svc.EmailsRepo.CloseEmail(ctx, emailID, status)
	if err != nil {
		return nil, err
	}
	if err := svc.ContactsRepo.SetStatus(ctx, email.ContactID, model.ContactClosed); err != nil {
		log.Printf("failed to close contact %s: %v", email.ContactID, err)
	}
	return email, nil
}

// FollowUpScanResult summarizes one cron run.
type FollowUpScanResult struct {
	Due      int `json:"due"`
	Notified int `json:"notified"`
	Skipped  int `json:"skipped"`
}

// RunFollowUpScan finds sent emails whose follow-up date has arrived,
// raises one reminder notification per email (deduped over 24 hours) and
// advances the follow-up counter.
func (svc *OutreachService) RunFollowUpScan(ctx context.Context) (*FollowUpScanResult, error) {
	settings, err := svc.SettingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	gap := settings.OutreachSettings.DefaultFollowUpGapDays
	if gap <= 0 {
		gap = 7
	}

	due, err := svc.EmailsRepo.FindDueFollowUps(ctx, time.Now(), settings.OutreachSettings.FollowUpCap())
	if err != nil {
		return nil, err
	}

	result := &FollowUpScanResult{Due: len(due)}
	for _, email := range due {
		recent, err := svc.NotificationsRepo.ExistsRecent(ctx, model.NotifySystem, email.ID, followUpDedupeWindow)
		if err != nil {
			return nil, err
		}
		if recent {
			result.Skipped++
			continue
		}

		contactName := email.ContactID
		if contact, err := svc.ContactsRepo.GetContact(ctx, email.ContactID); err == nil {
			contactName = contact.Name
		}

		n := &model.Notification{
			Type:        model.NotifySystem,
			Title:       "Outreach follow-up due",
			Message:     fmt.Sprintf("Follow up with %s on %q", contactName, email.Subject),
			Priority:    model.PriorityHigh,
			RelatedID:   email.ID,
			RelatedType: "outreach_email",
			ActionURL:   "/dashboard/outreach/emails/" + email.ID,
		}
		if err := svc.NotificationsRepo.CreateNotification(ctx, n); err != nil {
			log.Printf("failed to create follow-up notification for %s: %v", email.ID, err)
			result.Skipped++
			continue
		}
		if err := svc.EmailsRepo.RecordFollowUp(ctx, email.ID, gap); err != nil {
			log.Printf("failed to record follow-up for %s: %v", email.ID, err)
		}
		middleware.FollowUpNotifications.Inc()
		result.Notified++
	}
	return result, nil
}

// ImportResult summarizes a CSV bulk import.
type ImportResult struct {
	Imported int                    `json:"imported"`
	Skipped  int                    `json:"skipped"`
	Errors   []services.CSVRowError `json:"errors,omitempty"`
}

// ImportCompanies parses the CSV and inserts every valid row, skipping
// duplicates of existing companies.
func (svc *OutreachService) ImportCompanies(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, rowErrors, err := services.ParseCompanyCSV(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: rowErrors, Skipped: len(rowErrors)}
	for _, row := range rows {
		company := row.Company
		err := svc.CompaniesRepo.CreateCompany(ctx, &company)
		if errors.Is(err, repository.ErrDuplicate) {
			result.Skipped++
			result.Errors = append(result.Errors, services.CSVRowError{
				Line:   row.Line,
				Reason: "company already exists",
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Imported++
	}
	return result, nil
}

// ImportContacts parses the CSV and inserts every valid row. The company
// column resolves by case-insensitive name; rows naming an unknown
// company or a contact email that already exists are skipped per line.
func (svc *OutreachService) ImportContacts(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, rowErrors, err := services.ParseContactCSV(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: rowErrors, Skipped: len(rowErrors)}
	for _, row := range rows {
		if row.CompanyName == "" {
			result.Skipped++
			result.Errors = append(result.Errors, services.CSVRowError{
				Line:   row.Line,
				Reason: "missing company",
			})
			continue
		}

		company, err := svc.CompaniesRepo.FindByName(ctx, row.CompanyName)
		if errors.Is(err, repository.ErrNotFound) {
			result.Skipped++
			result.Errors = append(result.Errors, services.CSVRowError{
				Line:   row.Line,
				Reason: fmt.Sprintf("unknown company %q", row.CompanyName),
			})
			continue
		}
		if err != nil {
			return nil, err
		}

		contact := row.Contact
		contact.CompanyID = company.ID
		err = svc.ContactsRepo.CreateContact(ctx, &contact)
		if errors.Is(err, repository.ErrDuplicate) {
			result.Skipped++
			result.Errors = append(result.Errors, services.CSVRowError{
				Line:   row.Line,
				Reason: "contact email already exists",
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Imported++
	}
	return result, nil
}

// Stats assembles the outreach pipeline summary.
func (svc *OutreachService) Stats(ctx context.Context) (*model.OutreachStats, error) {
	companies, err := svc.CompaniesRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := svc.ContactsRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := svc.EmailsRepo.StatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := svc.SettingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	dueCount, err := svc.EmailsRepo.CountDueFollowUps(ctx, time.Now(), settings.OutreachSettings.FollowUpCap())
	if err != nil {
		return nil, err
	}

	stats := &model.OutreachStats{
		Companies:    int(companies),
		Contacts:     int(contacts),
		Replied:      counts[model.EmailReplied],
		NoResponse:   counts[model.EmailNoResponse],
		Closed:       counts[model.EmailClosed],
		FollowUpsDue: int(dueCount),
	}
	for _, count := range counts {
		stats.EmailsSent += count
	}
	if stats.EmailsSent > 0 {
		stats.ReplyRate = float64(stats.Replied) / float64(stats.EmailsSent)
	}
	return stats, nil
}
