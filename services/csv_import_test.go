package services

import (
	"strings"
	"testing"
)

func TestParseCompanyCSV(t *testing.T) {
	input := strings.Join([]string{
		"Name,Country,Website,Career Page,Tags,Notes",
		"Acme Corp,Germany,https://acme.example,https://acme.example/careers,backend;golang,Met at a meetup",
		",Germany,,,,",
		"NoCountry Inc,,,,,",
		"Minimal Co,Netherlands,,,,",
	}, "\n")

	rows, rowErrors, err := ParseCompanyCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCompanyCSV returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 valid rows, got %d", len(rows))
	}
	if len(rowErrors) != 2 {
		t.Fatalf("expected 2 row errors, got %d", len(rowErrors))
	}

	acme := rows[0].Company
	if acme.Name != "Acme Corp" {
		t.Errorf("name = %q, want %q", acme.Name, "Acme Corp")
	}
	if acme.Country != "Germany" {
		t.Errorf("country = %q, want %q", acme.Country, "Germany")
	}
	if acme.CareerPageURL != "https://acme.example/careers" {
		t.Errorf("career page = %q", acme.CareerPageURL)
	}
	if len(acme.Tags) != 2 || acme.Tags[0] != "backend" || acme.Tags[1] != "golang" {
		t.Errorf("tags = %v, want [backend golang]", acme.Tags)
	}
	if acme.Notes != "Met at a meetup" {
		t.Errorf("notes = %q", acme.Notes)
	}

	if rowErrors[0].Line != 3 || !strings.Contains(rowErrors[0].Reason, "name") {
		t.Errorf("unexpected first row error: %+v", rowErrors[0])
	}
	if rowErrors[1].Line != 4 || !strings.Contains(rowErrors[1].Reason, "country") {
		t.Errorf("unexpected second row error: %+v", rowErrors[1])
	}
}

func TestParseCompanyCSVHeaderAliases(t *testing.T) {
	input := "Company Name,Country,URL\nWayne Enterprises,USA,https://wayne.example\n"

	rows, rowErrors, err := ParseCompanyCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCompanyCSV returned error: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %+v", rowErrors)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Company.Name != "Wayne Enterprises" {
		t.Errorf("name = %q", rows[0].Company.Name)
	}
	if rows[0].Company.Website != "https://wayne.example" {
		t.Errorf("website = %q", rows[0].Company.Website)
	}
}

func TestParseCompanyCSVMissingRequiredHeaders(t *testing.T) {
	input := "Name,Website\nAcme,https://acme.example\n"

	_, _, err := ParseCompanyCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for missing country column")
	}
}

func TestParseContactCSV(t *testing.T) {
	input := strings.Join([]string{
		"Name,Email,Company,Role,LinkedIn,Notes",
		"Jane Doe,Jane.Doe@acme.example,Acme Corp,Engineering Manager,https://linkedin.example/janedoe,Referred by Sam",
		",anon@acme.example,Acme Corp,,,",
		"No Email,not-an-email,Acme Corp,,,",
		"Max Kort,max@kort.example,,,,",
	}, "\n")

	rows, rowErrors, err := ParseContactCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseContactCSV returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 valid rows, got %d", len(rows))
	}
	if len(rowErrors) != 2 {
		t.Fatalf("expected 2 row errors, got %d", len(rowErrors))
	}

	jane := rows[0]
	if jane.Contact.Name != "Jane Doe" {
		t.Errorf("name = %q", jane.Contact.Name)
	}
	if jane.Contact.EmailLower != "jane.doe@acme.example" {
		t.Errorf("email_lower = %q", jane.Contact.EmailLower)
	}
	if jane.CompanyName != "Acme Corp" {
		t.Errorf("company = %q", jane.CompanyName)
	}
	if jane.Contact.RoleTitle != "Engineering Manager" {
		t.Errorf("role = %q", jane.Contact.RoleTitle)
	}

	if rowErrors[0].Line != 3 || !strings.Contains(rowErrors[0].Reason, "name") {
		t.Errorf("first row error = %+v", rowErrors[0])
	}
	if rowErrors[1].Line != 4 || !strings.Contains(rowErrors[1].Reason, "email") {
		t.Errorf("second row error = %+v", rowErrors[1])
	}

	// No company column is a resolution problem, not a parse problem.
	if rows[1].CompanyName != "" {
		t.Errorf("expected empty company for row %d", rows[1].Line)
	}
}

func TestParseContactCSVMissingRequiredHeaders(t *testing.T) {
	input := "Name,Company\nJane Doe,Acme\n"

	_, _, err := ParseContactCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected error for missing email column")
	}
}
