// Package generate invokes Gemini structured-output calls for the two
// generated artifacts: inspection-prep checklists and repair cost estimates.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/summitinspect/leadgate/internal/models"
)

var (
	// ErrEmptyArtifact means the provider answered but produced nothing
	// usable. Recoverable: the caller should invite a retry with different
	// input.
	ErrEmptyArtifact = errors.New("generator produced no usable output")

	// ErrProvider wraps transport or provider failures. Also recoverable
	// from the user's perspective; full detail is logged server-side only.
	ErrProvider = errors.New("generation provider error")
)

const systemInstruction = "You are a licensed home inspector with 20 years of field experience. " +
	"Answer with practical, specific guidance for homeowners. Respond only with JSON matching the requested schema."

// Gemini is the generation adapter.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the adapter. The API key is checked by the config guard
// before any flow reaches this constructor.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generate: API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("generate: create client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Checklist produces a categorized inspection-prep checklist.
func (g *Gemini) Checklist(ctx context.Context, req models.ChecklistRequest) (*models.Checklist, error) {
	text, err := g.generate(ctx, checklistPrompt(req), checklistSchema)
	if err != nil {
		return nil, err
	}
	return DecodeChecklist(text)
}

// Estimate produces a cost range and materials list for a described deficiency.
func (g *Gemini) Estimate(ctx context.Context, description string) (*models.CostEstimate, error) {
	text, err := g.generate(ctx, estimatePrompt(description), estimateSchema)
	if err != nil {
		return nil, err
	}
	return DecodeEstimate(text)
}

// Close releases the underlying client. The genai client holds no
// long-lived resources and exposes no Close of its own.
func (g *Gemini) Close() error {
	return nil
}

func (g *Gemini) generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, cfg)
	if err != nil {
		log.Printf("ERROR: gemini call failed: model=%s err=%v", g.model, err)
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyArtifact
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func checklistPrompt(req models.ChecklistRequest) string {
	var b strings.Builder
	b.WriteString("Create a pre-inspection preparation checklist for a homeowner.\n")
	b.WriteString("Property type: " + req.PropertyType + "\n")
	b.WriteString("Property age: " + req.PropertyAge + "\n")
	if req.UserConcerns != "" {
		b.WriteString("Specific concerns raised by the homeowner: " + req.UserConcerns + "\n")
	}
	b.WriteString("Group the checklist into 4-6 named categories (e.g. Exterior, Plumbing, Electrical) " +
		"with 3-6 concrete, actionable items each.")
	return b.String()
}

func estimatePrompt(description string) string {
	return "A homeowner describes the following deficiency found during a home inspection:\n\n" +
		description + "\n\n" +
		"Estimate a realistic repair cost range in US dollars for a licensed contractor to fix it, " +
		"list the main materials involved, and include a one-sentence disclaimer that the figure is " +
		"a rough estimate and actual quotes vary."
}
