// Package service holds the flow orchestrators: one operation per
// user-triggered flow, each reducing configuration, validation, persistence,
// generation, and notification outcomes into a single FlowResult.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/summitinspect/leadgate/internal/config"
	"github.com/summitinspect/leadgate/internal/generate"
	"github.com/summitinspect/leadgate/internal/mailer"
	"github.com/summitinspect/leadgate/internal/models"
)

// RecordStore appends one validated submission to a named collection.
type RecordStore interface {
	Append(ctx context.Context, collection string, fields map[string]string) (string, error)
}

// Generator produces structured artifacts from typed input.
type Generator interface {
	Checklist(ctx context.Context, req models.ChecklistRequest) (*models.Checklist, error)
	Estimate(ctx context.Context, description string) (*models.CostEstimate, error)
}

// FlowService composes the adapters. Unconfigured adapters may be nil; the
// configuration guard runs before any adapter is touched, so a nil adapter
// is unreachable in a guarded flow.
type FlowService struct {
	cfg   *config.Config
	store RecordStore
	gen   Generator
	mail  mailer.Sender
}

func NewFlowService(cfg *config.Config, store RecordStore, gen Generator, mail mailer.Sender) *FlowService {
	return &FlowService{cfg: cfg, store: store, gen: gen, mail: mail}
}

// serverErrorMsg is the only fatal-opaque message users ever see; the real
// cause is logged server-side.
const serverErrorMsg = "A server error occurred. Please try again later."

// notifyAdmin sends an internal notification. Failures are logged and
// swallowed as a deliberate business rule: the admin copy is an internal
// convenience, never a deliverable, and must not change the flow outcome.
func (s *FlowService) notifyAdmin(ctx context.Context, build func() (mailer.Email, error)) {
	if err := s.cfg.MailerReady(); err != nil {
		log.Printf("Warning: admin notification skipped: %v", err)
		return
	}
	e, err := build()
	if err != nil {
		log.Printf("ERROR: admin notification render failed: %v", err)
		return
	}
	if err := s.mail.Send(ctx, e); err != nil {
		log.Printf("ERROR: admin notification to %s failed: %v", e.To, err)
	}
}

// generationFailure maps generation errors to user-facing results. An empty
// artifact invites a retry with different input; provider errors get a
// generic retry message with the detail kept server-side.
func generationFailure(err error, emptyMsg string) *models.FlowResult {
	if errors.Is(err, generate.ErrEmptyArtifact) {
		return models.Failed(emptyMsg)
	}
	log.Printf("ERROR: generation failed: %v", err)
	return models.Failed("The generator is temporarily unavailable. Please try again in a moment.")
}
