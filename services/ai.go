package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"main/model"

	"github.com/sashabaranov/go-openai"
)

const defaultAIModel = "gpt-4o-mini"

var ErrAINotConfigured = errors.New("OPENAI_API_KEY not set")

// AIClient wraps the OpenAI chat completion API for outreach drafting.
type AIClient struct {
	client *openai.Client
	model  string
}

func NewAIClient() (*AIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrAINotConfigured
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultAIModel
	}
	return &AIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (a *AIClient) Model() string {
	return a.model
}

// Generate sends the prompt and returns the raw completion text.
func (a *AIClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// DraftContext carries everything the prompt builders need about the
// recipient and the sender's portfolio.
type DraftContext struct {
	ContactName    string
	ContactRole    string
	CompanyName    string
	Country        string
	Intent         string
	Tone           string
	JobTitle       string
	JobDescription string
	SenderName     string
	SenderBio      string
	Signature      string
	Projects       []*model.Project
	Skills         []*model.Skill
	Experience     []*model.WorkExperience
}

// BuildDraftPrompt renders the user prompt for a fresh outreach draft.
func BuildDraftPrompt(dc DraftContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a %s outreach email (%s tone) to %s", intentLabel(dc.Intent), toneOrDefault(dc.Tone), dc.ContactName)
	if dc.ContactRole != "" {
		fmt.Fprintf(&b, " (%s)", dc.ContactRole)
	}
	fmt.Fprintf(&b, " at %s", dc.CompanyName)
	if dc.Country != "" {
		fmt.Fprintf(&b, " (%s)", dc.Country)
	}
	b.WriteString(".\n\n")

	if dc.JobTitle != "" {
		fmt.Fprintf(&b, "Target role: %s\n", dc.JobTitle)
	}
	if dc.JobDescription != "" {
		fmt.Fprintf(&b, "Job description:\n%s\n", dc.JobDescription)
	}

	fmt.Fprintf(&b, "\nAbout the sender: %s", dc.SenderName)
	if dc.SenderBio != "" {
		fmt.Fprintf(&b, " - %s", dc.SenderBio)
	}
	b.WriteString("\n")

	if len(dc.Projects) > 0 {
		b.WriteString("\nRelevant projects:\n")
		for _, p := range dc.Projects {
			fmt.Fprintf(&b, "- %s: %s\n", p.Title, p.ShortDescription)
		}
	}
	if len(dc.Skills) > 0 {
		names := make([]string, 0, len(dc.Skills))
		for _, s := range dc.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "\nKey skills: %s\n", strings.Join(names, ", "))
	}
	if len(dc.Experience) > 0 {
		b.WriteString("\nExperience:\n")
		for _, e := range dc.Experience {
			fmt.Fprintf(&b, "- %s at %s\n", e.Title, e.Company)
		}
	}
	if dc.Signature != "" {
		fmt.Fprintf(&b, "\nSign off with:\n%s\n", dc.Signature)
	}
	return b.String()
}

// BuildImprovePrompt renders the user prompt for revising an existing
// draft per the given instruction.
func BuildImprovePrompt(subject, body, instruction, tone string) string {
	var b strings.Builder

	b.WriteString("Improve the following outreach email")
	if instruction != "" {
		fmt.Fprintf(&b, " with this instruction: %s", instruction)
	}
	fmt.Fprintf(&b, ". Keep a %s tone.\n\n", toneOrDefault(tone))
	fmt.Fprintf(&b, "SUBJECT: %s\nBODY:\n%s\n", subject, body)
	return b.String()
}

// BuildFollowUpPrompt renders the user prompt for a follow-up to an email
// that got no response.
func BuildFollowUpPrompt(dc DraftContext, originalSubject, originalBody string, followUpNumber int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write follow-up number %d (%s tone) to %s at %s for the email below. ",
		followUpNumber, toneOrDefault(dc.Tone), dc.ContactName, dc.CompanyName)
	b.WriteString("It got no response. Be brief, polite and add one new detail instead of repeating the original.\n\n")
	fmt.Fprintf(&b, "Original SUBJECT: %s\nOriginal BODY:\n%s\n", originalSubject, originalBody)
	if dc.Signature != "" {
		fmt.Fprintf(&b, "\nSign off with:\n%s\n", dc.Signature)
	}
	return b.String()
}

func intentLabel(intent string) string {
	switch intent {
	case "post_application":
		return "post-application"
	case "follow_up":
		return "follow-up"
	default:
		return "cold"
	}
}

func toneOrDefault(tone string) string {
	if tone == "" {
		return "professional"
	}
	return tone
}

var (
	subjectRe = regexp.MustCompile(`(?i)SUBJECT:\s*(.+)`)
	bodyRe    = regexp.MustCompile(`(?is)BODY:\s*(.+)`)
)

// ParseAIResponse splits a completion into subject and body. When the
// SUBJECT:/BODY: markers are missing the whole text becomes the body and
// the subject stays empty.
func ParseAIResponse(raw string) (subject, body string) {
	raw = strings.TrimSpace(raw)

	if m := subjectRe.FindStringSubmatch(raw); m != nil {
		subject = strings.TrimSpace(strings.SplitN(m[1], "\n", 2)[0])
	}
	if m := bodyRe.FindStringSubmatch(raw); m != nil {
		body = strings.TrimSpace(m[1])
	}
	if body == "" {
		body = raw
	}
	return subject, body
}
