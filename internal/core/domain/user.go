package domain

const (
	RoleEmployee = "employee"
	RoleHR       = "HR"
	RoleAdmin    = "admin"
)

// User is an employee, HR officer or administrator. Email is the identity key.
type User struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Role          string  `json:"role,omitempty"`
	Image         string  `json:"image,omitempty"`
	BankAccountNo string  `json:"bank_account_no,omitempty"`
	Salary        float64 `json:"salary"`
	Designation   string  `json:"designation,omitempty"`
	IsVerified    bool    `json:"isVerified"`
	IsFired       bool    `json:"isFired"`
}

// HasAnyRole reports whether the stored role is one of roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Identity is the decoded payload of a verified bearer token.
type Identity struct {
	Email  string
	Claims map[string]any
}
