package models

// FlowStatus is the discriminant of a FlowResult.
type FlowStatus string

const (
	StatusSucceeded          FlowStatus = "succeeded"
	StatusPartiallySucceeded FlowStatus = "partially_succeeded"
	StatusFailed             FlowStatus = "failed"
	StatusValidationFailed   FlowStatus = "validation_failed"
	StatusConfigurationError FlowStatus = "configuration_error"
)

// FlowResult is the single value every flow returns to its caller. Exactly
// one is produced per invocation; expected failure modes never surface as
// raw errors.
type FlowResult struct {
	Status      FlowStatus          `json:"status"`
	Message     string              `json:"message"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
	Payload     any                 `json:"payload,omitempty"`
}

// OK reports whether the primary deliverable was achieved (fully or with a
// degraded delivery channel).
func (r *FlowResult) OK() bool {
	return r.Status == StatusSucceeded || r.Status == StatusPartiallySucceeded
}

func Succeeded(message string, payload any) *FlowResult {
	return &FlowResult{Status: StatusSucceeded, Message: message, Payload: payload}
}

func PartiallySucceeded(message string, payload any) *FlowResult {
	return &FlowResult{Status: StatusPartiallySucceeded, Message: message, Payload: payload}
}

func Failed(message string) *FlowResult {
	return &FlowResult{Status: StatusFailed, Message: message}
}

func ValidationFailed(fieldErrors map[string][]string) *FlowResult {
	return &FlowResult{
		Status:      StatusValidationFailed,
		Message:     "Please correct the highlighted fields.",
		FieldErrors: fieldErrors,
	}
}

func ConfigurationError(message string) *FlowResult {
	return &FlowResult{Status: StatusConfigurationError, Message: message}
}
