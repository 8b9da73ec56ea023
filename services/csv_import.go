package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/mail"
	"strings"

	"main/model"
)

// CompanyCSVRow is one parsed, validated line of a company import file.
type CompanyCSVRow struct {
	Line    int
	Company model.OutreachCompany
}

// CSVRowError reports why a line was skipped.
type CSVRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// companyColumns maps normalized header names to canonical fields.
var companyColumns = map[string]string{
	"name":         "name",
	"company":      "name",
	"company name": "name",
	"country":      "country",
	"website":      "website",
	"url":          "website",
	"career page":  "career_page",
	"careers":      "career_page",
	"career url":   "career_page",
	"tags":         "tags",
	"notes":        "notes",
}

// ParseCompanyCSV reads a company import file. Headers are matched
// case-insensitively against known aliases; rows missing a name or a
// country are reported, not fatal.
func ParseCompanyCSV(r io.Reader) ([]CompanyCSVRow, []CSVRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	fields := make(map[int]string, len(header))
	for i, col := range header {
		normalized := strings.ToLower(strings.TrimSpace(col))
		if field, ok := companyColumns[normalized]; ok {
			fields[i] = field
		}
	}

	hasName, hasCountry := false, false
	for _, field := range fields {
		switch field {
		case "name":
			hasName = true
		case "country":
			hasCountry = true
		}
	}
	if !hasName || !hasCountry {
		return nil, nil, fmt.Errorf("CSV must have name and country columns")
	}

	var rows []CompanyCSVRow
	var rowErrors []CSVRowError
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrors = append(rowErrors, CSVRowError{Line: line, Reason: err.Error()})
			continue
		}

		company := model.OutreachCompany{}
		for i, value := range record {
			field, ok := fields[i]
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			switch field {
			case "name":
				company.Name = value
			case "country":
				company.Country = value
			case "website":
				company.Website = value
			case "career_page":
				company.CareerPageURL = value
			case "notes":
				company.Notes = value
			case "tags":
				for _, tag := range strings.Split(value, ";") {
					if tag = strings.TrimSpace(tag); tag != "" {
						company.Tags = append(company.Tags, tag)
					}
				}
			}
		}

		if company.Name == "" {
			rowErrors = append(rowErrors, CSVRowError{Line: line, Reason: "missing company name"})
			continue
		}
		if company.Country == "" {
			rowErrors = append(rowErrors, CSVRowError{Line: line, Reason: "missing country"})
			continue
		}

		company.Normalize()
		rows = append(rows, CompanyCSVRow{Line: line, Company: company})
	}

	return rows, rowErrors, nil
}

// ContactCSVRow is one parsed, validated line of a contact import file.
// CompanyName carries the raw company column; resolving it to a company
// id happens at import time.
type ContactCSVRow struct {
	Line        int
	Contact     model.OutreachContact
	CompanyName string
}

var contactColumns = map[string]string{
	"name":          "name",
	"contact":       "name",
	"contact name":  "name",
	"email":         "email",
	"e-mail":        "email",
	"email address": "email",
	"company":       "company",
	"company name":  "company",
	"role":          "role",
	"title":         "role",
	"role title":    "role",
	"linkedin":      "linkedin",
	"linkedin url":  "linkedin",
	"notes":         "notes",
}

// ParseContactCSV reads a contact import file. Name and email columns
// are mandatory; rows with a missing name or an unparseable email are
// reported, not fatal.
func ParseContactCSV(r io.Reader) ([]ContactCSVRow, []CSVRowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	fields := make(map[int]string, len(header))
	for i, col := range header {
		normalized := strings.ToLower(strings.TrimSpace(col))
		if field, ok := contactColumns[normalized]; ok {
			fields[i] = field
		}
	}

	hasName, hasEmail := false, false
	for _, field := range fields {
		switch field {
		case "name":
			hasName = true
		case "email":
			hasEmail = true
		}
	}
	if !hasName || !hasEmail {
		return nil, nil, fmt.Errorf("CSV must have name and email columns")
	}

	var rows []ContactCSVRow
	var rowErrors []CSVRowError
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrors = append(rowErrors, CSVRowError{Line: line, Reason: err.Error()})
			continue
		}

		row := ContactCSVRow{Line: line}
		for i, value := range record {
			field, ok := fields[i]
			if !ok {
				continue
			}
			value = strings.TrimSpace(value)
			switch field {
			case "name":
				row.Contact.Name = value
			case "email":
				row.Contact.Email = value
			case "company":
				row.CompanyName = value
			case "role":
				row.Contact.RoleTitle = value
			case "linkedin":
				row.Contact.LinkedinURL = value
			case "notes":
				row.Contact.Notes = value
			}
		}

		if row.Contact.Name == "" {
			rowErrors = append(rowErrors, CSVRowError{Line: line, Reason: "missing contact name"})
			continue
		}
		if _, err := mail.ParseAddress(row.Contact.Email); err != nil {
			rowErrors = append(rowErrors, CSVRowError{Line: line, Reason: "invalid email address"})
			continue
		}

		row.Contact.Normalize()
		rows = append(rows, row)
	}

	return rows, rowErrors, nil
}
