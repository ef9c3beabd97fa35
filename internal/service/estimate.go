package service

import (
	"context"

	"github.com/summitinspect/leadgate/internal/models"
)

// EstimateCost produces a repair cost range for a described deficiency.
// Nothing is persisted: a generation failure must leave the store untouched.
func (s *FlowService) EstimateCost(ctx context.Context, req models.EstimateRequest) *models.FlowResult {
	if err := s.cfg.GeneratorReady(); err != nil {
		return models.ConfigurationError(err.Error())
	}
	if errs := req.Validate(); errs != nil {
		return models.ValidationFailed(errs)
	}

	estimate, err := s.gen.Estimate(ctx, req.DeficiencyDescription)
	if err != nil {
		return generationFailure(err,
			"We could not estimate a cost for that issue. Please try again with a different description.")
	}

	return models.Succeeded("Estimate ready.", estimate)
}
