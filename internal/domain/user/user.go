// Package user models a tracker member. A user belongs to exactly one
// company; repository lookups that enumerate users always take a company id
// so role queries cannot leak across tenants.
package user

import (
	"context"
	"fmt"
	"strings"
)

type User struct {
	id           uint
	firstName    string
	lastName     string
	email        string
	passwordHash string
	companyID    uint
	avatar       *Avatar
}

// Avatar is an optional uploaded image, stored as the byte/name/content-type
// triple the file collaborator produces.
type Avatar struct {
	FileName    string
	ContentType string
	Data        []byte
}

func NewUser(firstName, lastName, email, passwordHash string, companyID uint) (*User, error) {
	firstName = NormalizeName(firstName)
	lastName = NormalizeName(lastName)
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if len(lastName) == 0 {
		return nil, fmt.Errorf("last name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		companyID:    companyID,
	}, nil
}

func ReconstructUser(id uint, firstName, lastName, email, passwordHash string, companyID uint, avatar *Avatar) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		passwordHash: passwordHash,
		companyID:    companyID,
		avatar:       avatar,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) CompanyID() uint      { return u.companyID }
func (u *User) Avatar() *Avatar      { return u.avatar }

func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetAvatar(avatar *Avatar) {
	u.avatar = avatar
}

// BelongsTo reports whether the user is a member of the given tenant.
func (u *User) BelongsTo(companyID uint) bool {
	return u.companyID == companyID
}

type Repository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByCompany(ctx context.Context, companyID uint) ([]*User, error)
	// ListByIDs returns the subset of the given users that belong to the
	// company, preserving no particular order.
	ListByIDs(ctx context.Context, companyID uint, userIDs []uint) ([]*User, error)
}
