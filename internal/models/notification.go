package models

// RecipientRole partitions notification failures: the submitter's copy can
// degrade a flow to partial success, the admin copy never can.
type RecipientRole string

const (
	RoleSubmitter RecipientRole = "submitter"
	RoleAdmin     RecipientRole = "admin"
)

// NotificationOutcome records one email send attempt for one recipient.
// Outcomes are independent: one recipient's failure never rolls back another
// recipient's send or an earlier persistence step.
type NotificationOutcome struct {
	Recipient string        `json:"recipient"`
	Role      RecipientRole `json:"role"`
	Sent      bool          `json:"sent"`
	Reason    string        `json:"reason,omitempty"`
}
