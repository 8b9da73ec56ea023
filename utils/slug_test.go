package utils

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "special characters stripped",
			title: "Building a REST API with Go & MongoDB!",
			want:  "building-a-rest-api-with-go-mongodb",
		},
		{
			name:  "underscores and repeated spaces collapse",
			title: "my_new   project",
			want:  "my-new-project",
		},
		{
			name:  "leading and trailing hyphens trimmed",
			title: "  --Edge Case--  ",
			want:  "edge-case",
		},
		{
			name:  "already lowercase slug unchanged",
			title: "already-a-slug",
			want:  "already-a-slug",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlug(tt.title)
			if got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestCalculateReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "empty content",
			content: "",
			want:    0,
		},
		{
			name:    "short content rounds up to one minute",
			content: "just a few words here",
			want:    1,
		},
		{
			name:    "exactly two hundred words",
			content: strings.Repeat("word ", 200),
			want:    1,
		},
		{
			name:    "two hundred and one words",
			content: strings.Repeat("word ", 201),
			want:    2,
		},
		{
			name:    "five hundred words",
			content: strings.Repeat("word ", 500),
			want:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateReadTime(tt.content)
			if got != tt.want {
				t.Errorf("CalculateReadTime() = %d, want %d", got, tt.want)
			}
		})
	}
}
