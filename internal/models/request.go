package models

import (
	"encoding/json"

	"github.com/summitinspect/leadgate/internal/validate"
)

// One record type per flow. Client-held form state is a pre-fill hint only;
// these schemas are the authoritative contract.

// InspectionRequest asks for an on-site inspection appointment.
type InspectionRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

var inspectionSchema = validate.Schema{
	{Field: "name", Label: "Name", Required: true, MinLength: 2},
	{Field: "address", Label: "Address", Required: true, MinLength: 5},
	{Field: "email", Label: "Email", Required: true, Kind: validate.KindEmail},
	{Field: "phone", Label: "Phone"},
	{Field: "notes", Label: "Notes"},
}

func (r InspectionRequest) Fields() map[string]string {
	return map[string]string{
		"name":    r.Name,
		"address": r.Address,
		"email":   r.Email,
		"phone":   r.Phone,
		"notes":   r.Notes,
	}
}

func (r InspectionRequest) Validate() map[string][]string {
	return inspectionSchema.Apply(r.Fields())
}

// ContactRequest is a general question or message to the business.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Phone   string `json:"phone,omitempty"`
}

var contactSchema = validate.Schema{
	{Field: "name", Label: "Name", Required: true, MinLength: 2},
	{Field: "email", Label: "Email", Required: true, Kind: validate.KindEmail},
	{Field: "message", Label: "Message", Required: true, MinLength: 10},
	{Field: "phone", Label: "Phone"},
}

func (r ContactRequest) Fields() map[string]string {
	return map[string]string{
		"name":    r.Name,
		"email":   r.Email,
		"message": r.Message,
		"phone":   r.Phone,
	}
}

func (r ContactRequest) Validate() map[string][]string {
	return contactSchema.Apply(r.Fields())
}

// ChecklistRequest asks for a generated inspection-prep checklist.
type ChecklistRequest struct {
	PropertyType string `json:"propertyType"`
	PropertyAge  string `json:"propertyAge"`
	UserConcerns string `json:"userConcerns,omitempty"`
}

var checklistRequestSchema = validate.Schema{
	{Field: "propertyType", Label: "Property type", Required: true},
	{Field: "propertyAge", Label: "Property age", Required: true},
	{Field: "userConcerns", Label: "Concerns"},
}

func (r ChecklistRequest) Fields() map[string]string {
	return map[string]string{
		"propertyType": r.PropertyType,
		"propertyAge":  r.PropertyAge,
		"userConcerns": r.UserConcerns,
	}
}

func (r ChecklistRequest) Validate() map[string][]string {
	return checklistRequestSchema.Apply(r.Fields())
}

// ChecklistLead asks for a previously generated checklist to be emailed to
// the submitter; the serialized checklist rides along in ChecklistPayload.
type ChecklistLead struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	ChecklistPayload string `json:"checklistPayload"`
}

var checklistLeadSchema = validate.Schema{
	{Field: "name", Label: "Name", Required: true, MinLength: 2},
	{Field: "email", Label: "Email", Required: true, Kind: validate.KindEmail},
	{Field: "checklistPayload", Label: "Checklist", Required: true, Kind: validate.KindJSON},
}

func (r ChecklistLead) Fields() map[string]string {
	return map[string]string{
		"name":             r.Name,
		"email":            r.Email,
		"checklistPayload": r.ChecklistPayload,
	}
}

func (r ChecklistLead) Validate() map[string][]string {
	errs := checklistLeadSchema.Apply(r.Fields())
	if errs != nil {
		return errs
	}
	// A payload that parses but holds no categories would produce a blank
	// deliverable, so it fails validation rather than the send.
	if c, err := r.Checklist(); err != nil || c.Empty() {
		return map[string][]string{
			"checklistPayload": {"Checklist must contain at least one category"},
		}
	}
	return nil
}

// Checklist decodes the serialized checklist payload.
func (r ChecklistLead) Checklist() (*Checklist, error) {
	var c Checklist
	if err := json.Unmarshal([]byte(r.ChecklistPayload), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// EstimateRequest asks for a repair cost range for a described deficiency.
type EstimateRequest struct {
	DeficiencyDescription string `json:"deficiencyDescription"`
}

var estimateSchema = validate.Schema{
	{Field: "deficiencyDescription", Label: "Description", Required: true, MinLength: 10},
}

func (r EstimateRequest) Fields() map[string]string {
	return map[string]string{"deficiencyDescription": r.DeficiencyDescription}
}

func (r EstimateRequest) Validate() map[string][]string {
	return estimateSchema.Apply(r.Fields())
}
