package project

import "context"

type Repository interface {
	Save(ctx context.Context, project *Project) error
	// Update persists the aggregate with a version check; stale writes are
	// reported as conflict errors distinguishable from not-found.
	Update(ctx context.Context, project *Project) error
	// GetByID is company scoped for tenant isolation.
	GetByID(ctx context.Context, projectID, companyID uint) (*Project, error)
	ListByCompany(ctx context.Context, companyID uint, includeArchived bool) ([]*Project, error)
	ListArchivedByCompany(ctx context.Context, companyID uint) ([]*Project, error)
	ListByIDs(ctx context.Context, companyID uint, projectIDs []uint) ([]*Project, error)
	ListByPriority(ctx context.Context, companyID, priorityID uint) ([]*Project, error)
}

// MembershipRepository is the explicit (project id, user id) join relation.
// Mutations persist immediately; there is no in-memory member collection.
type MembershipRepository interface {
	Add(ctx context.Context, projectID, userID uint) error
	Remove(ctx context.Context, projectID, userID uint) error
	Contains(ctx context.Context, projectID, userID uint) (bool, error)
	MemberIDs(ctx context.Context, projectID uint) ([]uint, error)
	ProjectIDs(ctx context.Context, userID uint) ([]uint, error)
}
