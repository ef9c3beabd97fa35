package generate

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/summitinspect/leadgate/internal/models"
)

func TestDecodeChecklist(t *testing.T) {
	got, err := DecodeChecklist(`{"categories":[
		{"name":"Exterior","items":["clear gutters","trim shrubs"]},
		{"name":"Plumbing","items":["check under sinks"]}
	]}`)
	assert.NoError(t, err)

	want := &models.Checklist{Categories: []models.ChecklistCategory{
		{Name: "Exterior", Items: []string{"clear gutters", "trim shrubs"}},
		{Name: "Plumbing", Items: []string{"check under sinks"}},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("checklist mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeChecklistEmptyIsAbsent(t *testing.T) {
	for _, text := range []string{
		`{"categories":[]}`,
		`{}`,
		`{"categories":[{"name":"Exterior","items":[]}]}`,
	} {
		_, err := DecodeChecklist(text)
		assert.ErrorIs(t, err, ErrEmptyArtifact, text)
	}
}

func TestDecodeChecklistMalformedIsProviderError(t *testing.T) {
	_, err := DecodeChecklist(`not json at all`)
	assert.ErrorIs(t, err, ErrProvider)
	assert.False(t, errors.Is(err, ErrEmptyArtifact))
}

func TestDecodeEstimate(t *testing.T) {
	got, err := DecodeEstimate(`{
		"minCost": 150,
		"maxCost": 400,
		"materials": ["fill valve", "flapper"],
		"disclaimer": "Rough estimate; actual quotes vary."
	}`)
	assert.NoError(t, err)

	want := &models.CostEstimate{
		MinCost:    150,
		MaxCost:    400,
		Materials:  []string{"fill valve", "flapper"},
		Disclaimer: "Rough estimate; actual quotes vary.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("estimate mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEstimateMissingRangeIsAbsent(t *testing.T) {
	for _, text := range []string{
		`{"materials":["paint"],"disclaimer":"d"}`,
		`{"minCost":100,"disclaimer":"d"}`,
		`{"minCost":0,"maxCost":0,"disclaimer":"d"}`,
	} {
		_, err := DecodeEstimate(text)
		assert.ErrorIs(t, err, ErrEmptyArtifact, text)
	}
}

func TestDecodeEstimateMalformedIsProviderError(t *testing.T) {
	_, err := DecodeEstimate(`[1,2,3]`)
	assert.ErrorIs(t, err, ErrProvider)
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(t.Context(), "", "")
	assert.Error(t, err)
}
