package generate

import (
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/summitinspect/leadgate/internal/models"
)

// Response schemas passed to the provider. Keeping them shallow avoids the
// nesting-depth limits some model versions enforce on responseSchema.

var checklistSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"categories": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {Type: genai.TypeString, Description: "Category name, e.g. Exterior"},
					"items": {
						Type:  genai.TypeArray,
						Items: &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{"name", "items"},
			},
		},
	},
	Required: []string{"categories"},
}

var estimateSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"minCost":    {Type: genai.TypeNumber, Description: "Low end of the repair cost range in USD"},
		"maxCost":    {Type: genai.TypeNumber, Description: "High end of the repair cost range in USD"},
		"materials":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"disclaimer": {Type: genai.TypeString},
	},
	Required: []string{"minCost", "maxCost", "disclaimer"},
}

// DecodeChecklist turns the provider's JSON text into a checklist. A decode
// failure is a provider error (the schema was not honored); a decoded but
// empty checklist is an absent result.
func DecodeChecklist(text string) (*models.Checklist, error) {
	var c models.Checklist
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return nil, fmt.Errorf("%w: decode checklist: %v", ErrProvider, err)
	}
	if c.Empty() {
		return nil, ErrEmptyArtifact
	}
	return &c, nil
}

// DecodeEstimate turns the provider's JSON text into a cost estimate. A
// missing or non-positive cost range is an absent result, not a schema error.
func DecodeEstimate(text string) (*models.CostEstimate, error) {
	var raw struct {
		MinCost    *float64 `json:"minCost"`
		MaxCost    *float64 `json:"maxCost"`
		Materials  []string `json:"materials"`
		Disclaimer string   `json:"disclaimer"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: decode estimate: %v", ErrProvider, err)
	}
	if raw.MinCost == nil || raw.MaxCost == nil || *raw.MaxCost <= 0 {
		return nil, ErrEmptyArtifact
	}
	return &models.CostEstimate{
		MinCost:    *raw.MinCost,
		MaxCost:    *raw.MaxCost,
		Materials:  raw.Materials,
		Disclaimer: raw.Disclaimer,
	}, nil
}
