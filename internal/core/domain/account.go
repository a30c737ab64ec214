package domain

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// MaxLoginRetries is the number of consecutive failed logins that locks an
// account. The counter only resets on a successful login; a locked account
// stays locked until an admin reactivates it.
const MaxLoginRetries = 3

// Account models a registered user or administrator identity.
// Accounts are never hard-deleted; deactivation flips the Active flag.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Active       bool   `json:"active"`
	LoginRetries int    `json:"-"`
}
