// Package catalog holds the fixed reference lists: ticket types, ticket
// statuses, ticket priorities and project priorities. The rows are seeded
// once and read-only at runtime.
package catalog

import "context"

type TicketType struct {
	ID   uint
	Name string
}

type TicketStatus struct {
	ID   uint
	Name string
}

type TicketPriority struct {
	ID   uint
	Name string
}

type ProjectPriority struct {
	ID   uint
	Name string
}

// Seeded ticket status names.
const (
	StatusNew         = "New"
	StatusDevelopment = "Development"
	StatusTesting     = "Testing"
	StatusResolved    = "Resolved"
)

// Seeded priority names, shared by tickets and projects.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Seeded ticket type names.
const (
	TypeNewDevelopment = "NewDevelopment"
	TypeWorkTask       = "WorkTask"
	TypeDefect         = "Defect"
	TypeChangeRequest  = "ChangeRequest"
	TypeEnhancement    = "Enhancement"
	TypeGeneralTask    = "GeneralTask"
)

type Repository interface {
	ListTicketTypes(ctx context.Context) ([]TicketType, error)
	ListTicketStatuses(ctx context.Context) ([]TicketStatus, error)
	ListTicketPriorities(ctx context.Context) ([]TicketPriority, error)
	ListProjectPriorities(ctx context.Context) ([]ProjectPriority, error)

	TicketTypeIDByName(ctx context.Context, name string) (uint, error)
	TicketStatusIDByName(ctx context.Context, name string) (uint, error)
	TicketPriorityIDByName(ctx context.Context, name string) (uint, error)
	ProjectPriorityIDByName(ctx context.Context, name string) (uint, error)
}
