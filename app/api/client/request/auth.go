package request

import "strings"

type LoginRequest struct {
	// Identifier is an email or a username.
	Identifier string `json:"identifier" validate:"required_without_all=Email Username"`
	Email      string `json:"email,omitempty"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password" validate:"required"`
}

// LoginID returns the first identifier the client sent.
func (r LoginRequest) LoginID() string {
	for _, v := range []string{r.Identifier, r.Email, r.Username} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,notblank,max=64"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role,omitempty" validate:"omitempty,role"`
	Phone    *string `json:"phone,omitempty"`
	Pole     *string `json:"pole,omitempty"`
}

type ValidationAction string

const (
	ActionApprove ValidationAction = "approve"
	ActionReject  ValidationAction = "reject"
)

func (a ValidationAction) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}
