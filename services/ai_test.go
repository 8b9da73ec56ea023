package services

import (
	"strings"
	"testing"
)

func TestParseAIResponse(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantSubject string
		wantBody    string
	}{
		{
			name:        "well formed response",
			raw:         "SUBJECT: Backend Engineer Application\nBODY: Hi there,\n\nI came across your team.",
			wantSubject: "Backend Engineer Application",
			wantBody:    "Hi there,\n\nI came across your team.",
		},
		{
			name:        "lowercase markers",
			raw:         "subject: Quick question\nbody: Just following up.",
			wantSubject: "Quick question",
			wantBody:    "Just following up.",
		},
		{
			name:        "markers with extra whitespace",
			raw:         "SUBJECT:   Spaced out  \nBODY:   Indented body",
			wantSubject: "Spaced out",
			wantBody:    "Indented body",
		},
		{
			name:        "missing markers falls back to raw body",
			raw:         "Hi, I wanted to reach out about the open role.",
			wantSubject: "",
			wantBody:    "Hi, I wanted to reach out about the open role.",
		},
		{
			name:        "empty response",
			raw:         "  \n ",
			wantSubject: "",
			wantBody:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := ParseAIResponse(tt.raw)
			if subject != tt.wantSubject {
				t.Errorf("subject = %q, want %q", subject, tt.wantSubject)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestBuildDraftPromptIncludesContext(t *testing.T) {
	dc := DraftContext{
		CompanyName: "Acme Corp",
		ContactName: "Jordan Smith",
		Intent:      "job_application",
		Tone:        "professional",
	}

	prompt := BuildDraftPrompt(dc)

	for _, want := range []string{"Acme Corp", "Jordan Smith"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
