package auth

import (
	"bugtrail/internal/application/auth/usecases"
	"bugtrail/internal/shared/utils"
)

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	// Either a new company or an invite token, not both.
	CompanyName        string `json:"company_name,omitempty" validate:"excluded_with=InviteToken,required_without=InviteToken,omitempty,max=100"`
	CompanyDescription string `json:"company_description,omitempty" validate:"max=500"`
	InviteToken        string `json:"invite_token,omitempty"`
}

// Validate enforces the cross-field rule the binding tags cannot express:
// the request founds a company or joins via invite, never both.
func (r *RegisterRequest) Validate() error {
	return utils.ValidateStruct(r)
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		Password:           r.Password,
		CompanyName:        r.CompanyName,
		CompanyDescription: r.CompanyDescription,
		InviteToken:        r.InviteToken,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
