package domain

import "time"

const (
	AuditUserVerified   = "user.verified"
	AuditUserFired      = "user.fired"
	AuditRoleGranted    = "user.role_granted"
	AuditSalaryUpdated  = "user.salary_updated"
	AuditPaymentCreated = "payment.created"
)

// AuditEntry records an administrative mutation and who performed it.
type AuditEntry struct {
	Action   string
	Actor    string
	TargetID string
	Details  map[string]any
	At       time.Time
}
