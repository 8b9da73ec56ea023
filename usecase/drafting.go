package usecase

import (
	"context"
	"errors"
	"fmt"

	"main/model"
	"main/repository"
	"main/services"
)

// DraftingService builds AI outreach drafts from the contact, the company
// and selected portfolio pieces.
type DraftingService struct {
	AI             *services.AIClient
	CompaniesRepo  *repository.OutreachCompaniesRepo
	ContactsRepo   *repository.OutreachContactsRepo
	EmailsRepo     *repository.OutreachEmailsRepo
	DraftsRepo     *repository.OutreachDraftsRepo
	ProjectsRepo   *repository.ProjectsRepo
	SkillsRepo     *repository.SkillsRepo
	ExperienceRepo *repository.ExperienceRepo
	SettingsRepo   *repository.SettingsRepo
}

const draftSystemPrompt = "You are an assistant that writes concise, personal job-hunting outreach emails. " +
	"Always answer with exactly two sections: a line starting with SUBJECT: and a section starting with BODY:. " +
	"Keep the body under 200 words, plain text, no markdown."

// DraftRequest is the payload for draft generation.
type DraftRequest struct {
	ContactID             string   `json:"contactId" binding:"required"`
	Intent                string   `json:"intent" binding:"omitempty,oneof=cold post_application follow_up"`
	Tone                  string   `json:"tone" binding:"omitempty,oneof=professional friendly"`
	JobTitle              string   `json:"jobTitle" binding:"max=200"`
	JobDescription        string   `json:"jobDescription" binding:"max=8000"`
	SelectedProjectIDs    []string `json:"selectedProjectIds"`
	SelectedSkillIDs      []string `json:"selectedSkillIds"`
	SelectedExperienceIDs []string `json:"selectedExperienceIds"`
}

// GenerateDraft calls the model and stores the parsed result as a draft.
func (svc *DraftingService) GenerateDraft(ctx context.Context, req DraftRequest) (*model.OutreachDraft, error) {
	if svc.AI == nil {
		return nil, services.ErrAINotConfigured
	}

	dc, contact, err := svc.buildContext(ctx, req)
	if err != nil {
		return nil, err
	}

	raw, err := svc.AI.Generate(ctx, draftSystemPrompt, services.BuildDraftPrompt(*dc))
	if err != nil {
		return nil, err
	}
	subject, body := services.ParseAIResponse(raw)

	draft := &model.OutreachDraft{
		ContactID:             contact.ID,
		CompanyID:             contact.CompanyID,
		Intent:                dc.Intent,
		Tone:                  dc.Tone,
		JobTitle:              req.JobTitle,
		JobDescription:        req.JobDescription,
		SelectedProjectIDs:    req.SelectedProjectIDs,
		SelectedSkillIDs:      req.SelectedSkillIDs,
		SelectedExperienceIDs: req.SelectedExperienceIDs,
		Subject:               subject,
		Body:                  body,
		ModelUsed:             svc.AI.Model(),
	}
	if err := svc.DraftsRepo.CreateDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ImproveRequest is the payload for revising an existing draft.
type ImproveRequest struct {
	Subject     string `json:"subject" binding:"required,max=300"`
	Body        string `json:"body" binding:"required,max=12000"`
	Instruction string `json:"instruction" binding:"max=1000"`
	Tone        string `json:"tone" binding:"omitempty,oneof=professional friendly"`
}

// ImproveDraft revises the given subject and body per the instruction.
func (svc *DraftingService) ImproveDraft(ctx context.Context, req ImproveRequest) (subject, body string, err error) {
	if svc.AI == nil {
		return "", "", services.ErrAINotConfigured
	}

	raw, err := svc.AI.Generate(ctx, draftSystemPrompt,
		services.BuildImprovePrompt(req.Subject, req.Body, req.Instruction, req.Tone))
	if err != nil {
		return "", "", err
	}
	subject, body = services.ParseAIResponse(raw)
	if subject == "" {
		subject = req.Subject
	}
	return subject, body, nil
}

// FollowUpDraft drafts a follow-up to an email that got no response.
func (svc *DraftingService) FollowUpDraft(ctx context.Context, emailID, tone string) (subject, body string, err error) {
	if svc.AI == nil {
		return "", "", services.ErrAINotConfigured
	}

	email, err := svc.EmailsRepo.GetEmail(ctx, emailID)
	if err != nil {
		return "", "", err
	}
	settings, err := svc.SettingsRepo.GetSettings(ctx)
	if err != nil {
		return "", "", err
	}
	if email.FollowUpCount >= settings.OutreachSettings.FollowUpCap() {
		return "", "", errors.New("follow-up limit reached for this email")
	}

	dc, _, err := svc.buildContext(ctx, DraftRequest{
		ContactID: email.ContactID,
		Intent:    "follow_up",
		Tone:      tone,
	})
	if err != nil {
		return "", "", err
	}

	raw, err := svc.AI.Generate(ctx, draftSystemPrompt,
		services.BuildFollowUpPrompt(*dc, email.Subject, email.Body, email.FollowUpCount+1))
	if err != nil {
		return "", "", err
	}
	subject, body = services.ParseAIResponse(raw)
	if subject == "" {
		subject = "Re: " + email.Subject
	}
	return subject, body, nil
}

func (svc *DraftingService) buildContext(ctx context.Context, req DraftRequest) (*services.DraftContext, *model.OutreachContact, error) {
	contact, err := svc.ContactsRepo.GetContact(ctx, req.ContactID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: contact %s", repository.ErrInvalidReference, req.ContactID)
		}
		return nil, nil, err
	}
	company, err := svc.CompaniesRepo.GetCompany(ctx, contact.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	settings, err := svc.SettingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, nil, err
	}

	tone := req.Tone
	if tone == "" {
		tone = settings.OutreachSettings.DefaultTone
	}
	intent := req.Intent
	if intent == "" {
		intent = "cold"
	}

	dc := &services.DraftContext{
		ContactName:    contact.Name,
		ContactRole:    contact.RoleTitle,
		CompanyName:    company.Name,
		Country:        company.Country,
		Intent:         intent,
		Tone:           tone,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		SenderName:     settings.FullName,
		SenderBio:      settings.Bio,
		Signature:      settings.OutreachSettings.SignatureSnippet,
	}

	for _, id := range req.SelectedProjectIDs {
		if project, err := svc.ProjectsRepo.GetProject(ctx, id); err == nil {
			dc.Projects = append(dc.Projects, project)
		}
	}
	for _, id := range req.SelectedSkillIDs {
		if skill, err := svc.SkillsRepo.GetSkill(ctx, id); err == nil {
			dc.Skills = append(dc.Skills, skill)
		}
	}
	for _, id := range req.SelectedExperienceIDs {
		if work, err := svc.ExperienceRepo.GetWork(ctx, id); err == nil {
			dc.Experience = append(dc.Experience, work)
		}
	}
	return dc, contact, nil
}
