package usecases

import "context"

// Transactor runs a function inside one storage transaction scope. The
// shared db.TransactionManager satisfies it.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateProjectExecutor interface {
	Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error)
}

type UpdateProjectExecutor interface {
	Execute(ctx context.Context, cmd UpdateProjectCommand) (*UpdateProjectResult, error)
}

type ArchiveProjectExecutor interface {
	Execute(ctx context.Context, cmd ArchiveProjectCommand) (*ArchiveProjectResult, error)
}

type RestoreProjectExecutor interface {
	Execute(ctx context.Context, cmd RestoreProjectCommand) (*RestoreProjectResult, error)
}

type AddUserToProjectExecutor interface {
	Execute(ctx context.Context, cmd AddUserToProjectCommand) (bool, error)
}

type RemoveUserFromProjectExecutor interface {
	Execute(ctx context.Context, cmd RemoveUserFromProjectCommand) error
}

type RemoveUsersByRoleExecutor interface {
	Execute(ctx context.Context, cmd RemoveUsersByRoleCommand) error
}

type AssignProjectManagerExecutor interface {
	Execute(ctx context.Context, cmd AssignProjectManagerCommand) (bool, error)
}

type GetProjectManagerExecutor interface {
	Execute(ctx context.Context, query GetProjectManagerQuery) (*MemberDTO, error)
}

type ListProjectMembersExecutor interface {
	Execute(ctx context.Context, query ListProjectMembersQuery) ([]MemberDTO, error)
}

type ListProjectsExecutor interface {
	Execute(ctx context.Context, query ListProjectsQuery) ([]ProjectDTO, error)
}

type GetProjectExecutor interface {
	Execute(ctx context.Context, query GetProjectQuery) (*ProjectDTO, error)
}
