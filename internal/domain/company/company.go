// Package company models the tenant. Every list operation elsewhere in the
// system is scoped by company id; cross-tenant access is a bug.
package company

import (
	"context"
	"fmt"
)

type Company struct {
	id          uint
	name        string
	description string
}

func NewCompany(name, description string) (*Company, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("company name is required")
	}
	return &Company{
		name:        name,
		description: description,
	}, nil
}

func ReconstructCompany(id uint, name, description string) (*Company, error) {
	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("company name is required")
	}
	return &Company{
		id:          id,
		name:        name,
		description: description,
	}, nil
}

func (c *Company) ID() uint            { return c.id }
func (c *Company) Name() string        { return c.name }
func (c *Company) Description() string { return c.description }

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

type Repository interface {
	Save(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, companyID uint) (*Company, error)
}
