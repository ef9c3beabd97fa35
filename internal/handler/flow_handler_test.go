package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summitinspect/leadgate/internal/config"
	"github.com/summitinspect/leadgate/internal/handler"
	"github.com/summitinspect/leadgate/internal/mailer"
	"github.com/summitinspect/leadgate/internal/models"
	"github.com/summitinspect/leadgate/internal/router"
	"github.com/summitinspect/leadgate/internal/service"
)

type stubStore struct{ count int }

func (s *stubStore) Append(context.Context, string, map[string]string) (string, error) {
	s.count++
	return "doc-1", nil
}

type stubGen struct {
	checklist *models.Checklist
	err       error
}

func (s *stubGen) Checklist(context.Context, models.ChecklistRequest) (*models.Checklist, error) {
	return s.checklist, s.err
}

func (s *stubGen) Estimate(context.Context, string) (*models.CostEstimate, error) {
	return nil, s.err
}

type stubMailer struct{}

func (stubMailer) Send(context.Context, mailer.Email) error { return nil }

func testServer(cfg *config.Config, gen service.Generator) *httptest.Server {
	svc := service.NewFlowService(cfg, &stubStore{}, gen, stubMailer{})
	r := router.New(handler.NewFlowHandler(svc), handler.NewHealthHandler(cfg))
	return httptest.NewServer(r)
}

func fullConfig() *config.Config {
	return &config.Config{
		FirebaseProjectID:   "p",
		FirebaseClientEmail: "e",
		FirebasePrivateKey:  "k",
		GeminiAPIKey:        "g",
		SMTPHost:            "smtp.example",
		SMTPPort:            587,
		MailFrom:            "no-reply@example.com",
		AdminEmail:          "owner@example.com",
		BusinessName:        "Summit Point",
	}
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestScheduleEndpointSuccess(t *testing.T) {
	ts := testServer(fullConfig(), &stubGen{})
	defer ts.Close()

	resp, body := post(t, ts.URL+"/api/v1/flows/schedule",
		`{"name":"Jo","address":"1 Oak St","email":"a@b.com"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "succeeded", body["status"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestScheduleEndpointIgnoresUnknownFields(t *testing.T) {
	ts := testServer(fullConfig(), &stubGen{})
	defer ts.Close()

	resp, body := post(t, ts.URL+"/api/v1/flows/schedule",
		`{"name":"Jo","address":"1 Oak St","email":"a@b.com","hpot":"","utm_source":"ad"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "succeeded", body["status"])
}

func TestScheduleEndpointMalformedBody(t *testing.T) {
	ts := testServer(fullConfig(), &stubGen{})
	defer ts.Close()

	resp, body := post(t, ts.URL+"/api/v1/flows/schedule", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid request body", body["error"])
}

func TestScheduleEndpointValidationFailure(t *testing.T) {
	ts := testServer(fullConfig(), &stubGen{})
	defer ts.Close()

	resp, body := post(t, ts.URL+"/api/v1/flows/schedule", `{"name":"J"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation_failed", body["status"])

	fieldErrors, ok := body["fieldErrors"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, fieldErrors, 3)
}

func TestScheduleEndpointUnconfigured(t *testing.T) {
	cfg := fullConfig()
	cfg.FirebaseProjectID = ""
	ts := testServer(cfg, &stubGen{})
	defer ts.Close()

	resp, body := post(t, ts.URL+"/api/v1/flows/schedule",
		`{"name":"Jo","address":"1 Oak St","email":"a@b.com"}`)

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "configuration_error", body["status"])
}

func TestGenerateEndpointReturnsChecklistPayload(t *testing.T) {
	gen := &stubGen{checklist: &models.Checklist{Categories: []models.ChecklistCategory{
		{Name: "Exterior", Items: []string{"clear gutters"}},
	}}}
	ts := testServer(fullConfig(), gen)
	defer ts.Close()

	resp, body := post(t, ts.URL+"/api/v1/flows/checklist/generate",
		`{"propertyType":"condo","propertyAge":"1980s"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload, ok := body["payload"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, payload["categories"])
}

func TestDeliverEndpointSuccess(t *testing.T) {
	ts := testServer(fullConfig(), &stubGen{})
	defer ts.Close()

	resp, body := post(t, ts.URL+"/api/v1/flows/checklist/deliver",
		`{"name":"Jo","email":"jo@example.com","checklistPayload":"{\"categories\":[{\"name\":\"Exterior\",\"items\":[\"clear gutters\"]}]}"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "succeeded", body["status"])
}

func TestHealthz(t *testing.T) {
	cfg := fullConfig()
	cfg.GeminiAPIKey = ""
	ts := testServer(cfg, &stubGen{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["store"])
	assert.Equal(t, false, body["generator"])
}
