package request

import (
	"strings"

	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/usecase/commands"
)

type SignUpRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
}

func (r *SignUpRequest) ToParams() commands.SignUpParams {
	var phone *string
	if r.Phone != nil {
		trimmed := strings.TrimSpace(*r.Phone)
		if trimmed != "" {
			phone = &trimmed
		}
	}
	return commands.SignUpParams{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Phone:    phone,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}
