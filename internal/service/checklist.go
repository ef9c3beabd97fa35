package service

import (
	"context"
	"log"

	"github.com/summitinspect/leadgate/internal/mailer"
	"github.com/summitinspect/leadgate/internal/models"
	"github.com/summitinspect/leadgate/internal/store"
)

// GenerateChecklist produces a categorized inspection-prep checklist.
// Nothing is persisted and nobody is notified; the artifact is the whole
// deliverable.
func (s *FlowService) GenerateChecklist(ctx context.Context, req models.ChecklistRequest) *models.FlowResult {
	if err := s.cfg.GeneratorReady(); err != nil {
		return models.ConfigurationError(err.Error())
	}
	if errs := req.Validate(); errs != nil {
		return models.ValidationFailed(errs)
	}

	checklist, err := s.gen.Checklist(ctx, req)
	if err != nil {
		return generationFailure(err,
			"We could not generate a checklist for that property. Please try again with different details.")
	}

	return models.Succeeded("Your checklist is ready.", checklist)
}

const partialDeliveryMsg = "We saved your request, but the copy to your inbox could not be sent. " +
	"Please contact us if it does not arrive."

// DeliverChecklist stores a checklist lead and emails the checklist to the
// submitter, with a copy to the business. The submitter's send decides
// success vs partial success; the admin copy is logged only.
func (s *FlowService) DeliverChecklist(ctx context.Context, lead models.ChecklistLead) *models.FlowResult {
	if err := s.cfg.StoreReady(); err != nil {
		return models.ConfigurationError(err.Error())
	}
	if errs := lead.Validate(); errs != nil {
		return models.ValidationFailed(errs)
	}
	checklist, err := lead.Checklist()
	if err != nil {
		// Validate already parsed the payload; reaching here means it
		// changed between calls, which only a programming error can cause.
		log.Printf("ERROR: checklist payload decode failed after validation: %v", err)
		return models.Failed(serverErrorMsg)
	}

	id, err := s.store.Append(ctx, store.ChecklistLeadsCollection, lead.Fields())
	if err != nil {
		log.Printf("ERROR: persist checklist lead failed: %v", err)
		return models.Failed(serverErrorMsg)
	}
	log.Printf("checklist lead stored: id=%s", id)

	if err := s.cfg.MailerReady(); err != nil {
		log.Printf("ERROR: checklist delivery skipped: %v", err)
		return models.PartiallySucceeded(partialDeliveryMsg, nil)
	}

	outgoing := make([]mailer.Outgoing, 0, 2)

	submitterMail, err := mailer.ChecklistEmail(lead.Email, s.cfg.BusinessName, lead.Name, checklist)
	if err != nil {
		log.Printf("ERROR: checklist email render failed: %v", err)
		return models.PartiallySucceeded(partialDeliveryMsg, nil)
	}
	outgoing = append(outgoing, mailer.Outgoing{Email: submitterMail, Role: models.RoleSubmitter})

	if adminMail, err := mailer.ChecklistAdminEmail(s.cfg.AdminEmail, lead); err != nil {
		log.Printf("ERROR: checklist admin email render failed: %v", err)
	} else {
		outgoing = append(outgoing, mailer.Outgoing{Email: adminMail, Role: models.RoleAdmin})
	}

	// Sends are independent and may run concurrently; only the submitter's
	// outcome feeds the reduction. Admin failures are already logged inside
	// Broadcast and never downgrade the result.
	outcomes := mailer.Broadcast(ctx, s.mail, outgoing)
	for _, o := range outcomes {
		if o.Role == models.RoleSubmitter && !o.Sent {
			return models.PartiallySucceeded(partialDeliveryMsg, nil)
		}
	}

	return models.Succeeded("Your checklist is on its way to your inbox.", nil)
}
