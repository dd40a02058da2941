package usecases

import "context"

type DispatchToUsersExecutor interface {
	Execute(ctx context.Context, cmd DispatchToUsersCommand) (*DispatchResult, error)
}

type DispatchToRoleExecutor interface {
	Execute(ctx context.Context, cmd DispatchToRoleCommand) (*DispatchResult, error)
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) ([]NotificationDTO, error)
}
