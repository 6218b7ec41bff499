package domain

import "time"

// PaymentRecord is one salary disbursement. At most one record exists per
// recipient email, month and year.
type PaymentRecord struct {
	ID         string    `json:"_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	EmployeeID string    `json:"employeeId"`
	Salary     float64   `json:"salary"`
	Month      string    `json:"month"`
	Year       int       `json:"year"`
	PaidBy     string    `json:"paidBy,omitempty"`
	PaidAt     time.Time `json:"paidAt"`
}
