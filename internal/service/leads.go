package service

import (
	"context"
	"log"

	"github.com/summitinspect/leadgate/internal/mailer"
	"github.com/summitinspect/leadgate/internal/models"
	"github.com/summitinspect/leadgate/internal/store"
)

// ScheduleInspection validates and stores an inspection request, then
// notifies the business. The stored record is the system of record for the
// lead: a store failure aborts the flow before any notification.
func (s *FlowService) ScheduleInspection(ctx context.Context, req models.InspectionRequest) *models.FlowResult {
	if err := s.cfg.StoreReady(); err != nil {
		return models.ConfigurationError(err.Error())
	}
	if errs := req.Validate(); errs != nil {
		return models.ValidationFailed(errs)
	}

	id, err := s.store.Append(ctx, store.InspectionsCollection, req.Fields())
	if err != nil {
		log.Printf("ERROR: persist inspection request failed: %v", err)
		return models.Failed(serverErrorMsg)
	}
	log.Printf("inspection request stored: id=%s", id)

	s.notifyAdmin(ctx, func() (mailer.Email, error) {
		return mailer.InspectionAdminEmail(s.cfg.AdminEmail, s.cfg.BusinessName, req)
	})

	return models.Succeeded("Inspection request sent. We will contact you shortly to confirm a time.", nil)
}

// ContactMessage validates and stores a contact message, then notifies the
// business.
func (s *FlowService) ContactMessage(ctx context.Context, req models.ContactRequest) *models.FlowResult {
	if err := s.cfg.StoreReady(); err != nil {
		return models.ConfigurationError(err.Error())
	}
	if errs := req.Validate(); errs != nil {
		return models.ValidationFailed(errs)
	}

	id, err := s.store.Append(ctx, store.ContactsCollection, req.Fields())
	if err != nil {
		log.Printf("ERROR: persist contact message failed: %v", err)
		return models.Failed(serverErrorMsg)
	}
	log.Printf("contact message stored: id=%s", id)

	s.notifyAdmin(ctx, func() (mailer.Email, error) {
		return mailer.ContactAdminEmail(s.cfg.AdminEmail, s.cfg.BusinessName, req)
	})

	return models.Succeeded("Message sent. We will get back to you within one business day.", nil)
}
