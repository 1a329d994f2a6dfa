package types

import "nexustech/models"

// Principal is the caller resolved from the session cookie. Role is only
// filled once a role gate has loaded it from the user directory.
type Principal struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role,omitempty"`
}
