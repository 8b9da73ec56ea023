package handler

import (
	"errors"
	"log"
	"strconv"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// --- companies ---

func GetOutreachCompaniesHandler(c *gin.Context, svc *usecase.OutreachService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := repository.OutreachCompanyFilter{
		Search:   c.Query("search"),
		Country:  c.Query("country"),
		Tag:      c.Query("tag"),
		Starred:  parseBoolQuery(c, "starred"),
		Archived: parseBoolQuery(c, "archived"),
		Page:     page,
		Limit:    limit,
	}

	companies, total, err := svc.CompaniesRepo.FindCompanies(c, filter)
	if err != nil {
		log.Printf("failed to list outreach companies: %v", err)
		utils.InternalError(c, "Failed to fetch companies")
		return
	}
	utils.Success(c, gin.H{
		"companies":  companies,
		"pagination": utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

func GetOutreachCompanyHandler(c *gin.Context, svc *usecase.OutreachService) {
	company, err := svc.CompaniesRepo.GetCompany(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Company not found")
			return
		}
		utils.InternalError(c, "Failed to fetch company")
		return
	}
	utils.Success(c, company)
}

func CreateOutreachCompanyHandler(c *gin.Context, svc *usecase.OutreachService) {
	var company model.OutreachCompany
	if err := c.ShouldBindJSON(&company); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := svc.CompaniesRepo.CreateCompany(c, &company); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.Conflict(c, "Company already exists for this country")
			return
		}
		utils.InternalError(c, "Failed to create company")
		return
	}
	utils.Created(c, company)
}

func UpdateOutreachCompanyHandler(c *gin.Context, svc *usecase.OutreachService) {
	var company model.OutreachCompany
	if err := c.ShouldBindJSON(&company); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	company.Normalize()

	fields := map[string]interface{}{
		"name":            company.Name,
		"name_lower":      company.NameLower,
		"country":         company.Country,
		"country_lower":   company.CountryLower,
		"website":         company.Website,
		"career_page_url": company.CareerPageURL,
		"tags":            company.Tags,
		"notes":           company.Notes,
	}
	if err := svc.CompaniesRepo.UpdateCompany(c, c.Param("id"), fields); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFound(c, "Company not found")
		case errors.Is(err, repository.ErrDuplicate):
			utils.Conflict(c, "Company already exists for this country")
		default:
			utils.InternalError(c, "Failed to update company")
		}
		return
	}

	updated, err := svc.CompaniesRepo.GetCompany(c, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch company")
		return
	}
	utils.SuccessWithMessage(c, updated, "Company updated successfully")
}

func DeleteOutreachCompanyHandler(c *gin.Context, svc *usecase.OutreachService) {
	if err := svc.DeleteCompany(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Company not found")
			return
		}
		log.Printf("failed to delete outreach company: %v", err)
		utils.InternalError(c, "Failed to delete company")
		return
	}
	utils.SuccessWithMessage(c, nil, "Company deleted successfully")
}

type ToggleRequest struct {
	Value bool `json:"value"`
}

func StarOutreachCompanyHandler(c *gin.Context, svc *usecase.OutreachService) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := svc.CompaniesRepo.UpdateCompany(c, c.Param("id"), map[string]interface{}{"starred": req.Value}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Company not found")
			return
		}
		utils.InternalError(c, "Failed to update company")
		return
	}
	utils.SuccessWithMessage(c, nil, "Company updated successfully")
}

func ArchiveOutreachCompanyHandler(c *gin.Context, svc *usecase.OutreachService) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := svc.CompaniesRepo.UpdateCompany(c, c.Param("id"), map[string]interface{}{"archived": req.Value}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Company not found")
			return
		}
		utils.InternalError(c, "Failed to update company")
		return
	}
	utils.SuccessWithMessage(c, nil, "Company updated successfully")
}

// ImportOutreachCompaniesHandler takes a CSV upload and inserts each
// valid row; duplicates and bad rows are reported per line.
func ImportOutreachCompaniesHandler(c *gin.Context, svc *usecase.OutreachService) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "CSV file is required")
		return
	}
	defer file.Close()

	result, err := svc.ImportCompanies(c, file)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, result, "Import finished")
}

// --- contacts ---

// ImportOutreachContactsHandler takes a CSV upload; the company column
// of each row must name an existing company.
func ImportOutreachContactsHandler(c *gin.Context, svc *usecase.OutreachService) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "CSV file is required")
		return
	}
	defer file.Close()

	result, err := svc.ImportContacts(c, file)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, result, "Import finished")
}

func StarOutreachContactHandler(c *gin.Context, svc *usecase.OutreachService) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if err := svc.ContactsRepo.UpdateContact(c, c.Param("id"), map[string]interface{}{"starred": req.Value}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Contact not found")
			return
		}
		utils.InternalError(c, "Failed to update contact")
		return
	}
	utils.SuccessWithMessage(c, nil, "Contact updated successfully")
}

func GetOutreachContactsHandler(c *gin.Context, svc *usecase.OutreachService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := repository.OutreachContactFilter{
		CompanyID: c.Query("company_id"),
		Status:    model.OutreachContactStatus(c.Query("status")),
		Search:    c.Query("search"),
		Starred:   parseBoolQuery(c, "starred"),
		Page:      page,
		Limit:     limit,
	}

	contacts, total, err := svc.ContactsRepo.FindContacts(c, filter)
	if err != nil {
		log.Printf("failed to list outreach contacts: %v", err)
		utils.InternalError(c, "Failed to fetch contacts")
		return
	}
	utils.Success(c, gin.H{
		"contacts":   contacts,
		"pagination": utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

func GetOutreachContactHandler(c *gin.Context, svc *usecase.OutreachService) {
	contact, err := svc.ContactsRepo.GetContact(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Contact not found")
			return
		}
		utils.InternalError(c, "Failed to fetch contact")
		return
	}

	emails, _, err := svc.EmailsRepo.FindEmails(c, repository.OutreachEmailFilter{ContactID: contact.ID})
	if err != nil {
		utils.InternalError(c, "Failed to fetch contact emails")
		return
	}
	utils.Success(c, gin.H{"contact": contact, "emails": emails})
}

func CreateOutreachContactHandler(c *gin.Context, svc *usecase.OutreachService) {
	var contact model.OutreachContact
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := svc.CreateContact(c, &contact); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			utils.Conflict(c, "A contact with this email already exists")
		case errors.Is(err, repository.ErrInvalidReference):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, "Failed to create contact")
		}
		return
	}
	utils.Created(c, contact)
}

func UpdateOutreachContactHandler(c *gin.Context, svc *usecase.OutreachService) {
	var contact model.OutreachContact
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	contact.Normalize()

	fields := map[string]interface{}{
		"name":         contact.Name,
		"email":        contact.Email,
		"email_lower":  contact.EmailLower,
		"role_title":   contact.RoleTitle,
		"linkedin_url": contact.LinkedinURL,
		"notes":        contact.Notes,
		"starred":      contact.Starred,
	}
	if err := svc.ContactsRepo.UpdateContact(c, c.Param("id"), fields); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.NotFound(c, "Contact not found")
		case errors.Is(err, repository.ErrDuplicate):
			utils.Conflict(c, "A contact with this email already exists")
		default:
			utils.InternalError(c, "Failed to update contact")
		}
		return
	}

	updated, err := svc.ContactsRepo.GetContact(c, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch contact")
		return
	}
	utils.SuccessWithMessage(c, updated, "Contact updated successfully")
}

func DeleteOutreachContactHandler(c *gin.Context, svc *usecase.OutreachService) {
	if err := svc.DeleteContact(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Contact not found")
			return
		}
		utils.InternalError(c, "Failed to delete contact")
		return
	}
	utils.SuccessWithMessage(c, nil, "Contact deleted successfully")
}

// --- emails ---

func GetOutreachEmailsHandler(c *gin.Context, svc *usecase.OutreachService) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := repository.OutreachEmailFilter{
		ContactID: c.Query("contact_id"),
		CompanyID: c.Query("company_id"),
		Status:    model.OutreachEmailStatus(c.Query("status")),
		Page:      page,
		Limit:     limit,
	}

	emails, total, err := svc.EmailsRepo.FindEmails(c, filter)
	if err != nil {
		log.Printf("failed to list outreach emails: %v", err)
		utils.InternalError(c, "Failed to fetch emails")
		return
	}
	utils.Success(c, gin.H{
		"emails":     emails,
		"pagination": utils.NewPagination(total, filter.Page, filter.Limit),
	})
}

// LogOutreachEmailHandler records an email the admin sent from their own
// mail client.
func LogOutreachEmailHandler(c *gin.Context, svc *usecase.OutreachService) {
	var email model.OutreachEmail
	if err := c.ShouldBindJSON(&email); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := svc.LogEmail(c, &email); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			utils.BadRequest(c, err.Error())
			return
		}
		log.Printf("failed to log outreach email: %v", err)
		utils.InternalError(c, "Failed to log email")
		return
	}
	utils.Created(c, email)
}

type ReplyOutcomeRequest struct {
	Outcome model.OutreachOutcome `json:"outcome" binding:"required,oneof=positive neutral rejection"`
	Note    string                `json:"note" binding:"max=2000"`
}

func MarkOutreachEmailRepliedHandler(c *gin.Context, svc *usecase.OutreachService) {
	var req ReplyOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid outcome")
		return
	}

	email, err := svc.MarkReplied(c, c.Param("id"), req.Outcome, req.Note)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Email not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, email, "Email marked as replied")
}

type CloseEmailRequest struct {
	Status model.OutreachEmailStatus `json:"status" binding:"required,oneof=closed no_response"`
}

func CloseOutreachEmailHandler(c *gin.Context, svc *usecase.OutreachService) {
	var req CloseEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid status")
		return
	}

	email, err := svc.Close(c, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Email not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}
	utils.SuccessWithMessage(c, email, "Email closed")
}

func DeleteOutreachEmailHandler(c *gin.Context, svc *usecase.OutreachService) {
	if err := svc.EmailsRepo.DeleteEmail(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Email not found")
			return
		}
		utils.InternalError(c, "Failed to delete email")
		return
	}
	utils.SuccessWithMessage(c, nil, "Email deleted successfully")
}

// --- templates ---

func GetOutreachTemplatesHandler(c *gin.Context, svc *usecase.OutreachService) {
	templates, err := svc.TemplatesRepo.FindTemplates(c, model.OutreachTemplateType(c.Query("type")))
	if err != nil {
		utils.InternalError(c, "Failed to fetch templates")
		return
	}
	utils.Success(c, templates)
}

func CreateOutreachTemplateHandler(c *gin.Context, svc *usecase.OutreachService) {
	var template model.OutreachTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := svc.TemplatesRepo.CreateTemplate(c, &template); err != nil {
		utils.InternalError(c, "Failed to create template")
		return
	}
	utils.Created(c, template)
}

func UpdateOutreachTemplateHandler(c *gin.Context, svc *usecase.OutreachService) {
	var template model.OutreachTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{
		"name":             template.Name,
		"type":             template.Type,
		"tone":             template.Tone,
		"subject_template": template.SubjectTemplate,
		"body_template":    template.BodyTemplate,
		"variables":        template.Variables,
	}
	if err := svc.TemplatesRepo.UpdateTemplate(c, c.Param("id"), fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Template not found")
			return
		}
		utils.InternalError(c, "Failed to update template")
		return
	}

	updated, err := svc.TemplatesRepo.GetTemplate(c, c.Param("id"))
	if err != nil {
		utils.InternalError(c, "Failed to fetch template")
		return
	}
	utils.SuccessWithMessage(c, updated, "Template updated successfully")
}

func DeleteOutreachTemplateHandler(c *gin.Context, svc *usecase.OutreachService) {
	if err := svc.TemplatesRepo.DeleteTemplate(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "Template not found")
			return
		}
		utils.InternalError(c, "Failed to delete template")
		return
	}
	utils.SuccessWithMessage(c, nil, "Template deleted successfully")
}

// --- stats and cron ---

func GetOutreachStatsHandler(c *gin.Context, svc *usecase.OutreachService) {
	stats, err := svc.Stats(c)
	if err != nil {
		log.Printf("failed to assemble outreach stats: %v", err)
		utils.InternalError(c, "Failed to fetch outreach stats")
		return
	}
	utils.Success(c, stats)
}

// RunFollowUpCronHandler is hit by the external scheduler. It is guarded
// by the shared CRON_SECRET, accepted as a header or as a query
// parameter for schedulers that cannot set headers.
func RunFollowUpCronHandler(c *gin.Context, svc *usecase.OutreachService, cronSecret string) {
	provided := c.GetHeader("X-Cron-Secret")
	if provided == "" {
		provided = c.Query("secret")
	}
	if cronSecret == "" || provided != cronSecret {
		utils.Unauthorized(c, "Invalid cron secret")
		return
	}

	result, err := svc.RunFollowUpScan(c)
	if err != nil {
		log.Printf("follow-up scan failed: %v", err)
		utils.InternalError(c, "Follow-up scan failed")
		return
	}
	utils.SuccessWithMessage(c, result, "Follow-up scan finished")
}
