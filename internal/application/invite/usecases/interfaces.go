package usecases

import "context"

type IssueInviteExecutor interface {
	Execute(ctx context.Context, cmd IssueInviteCommand) (*IssueInviteResult, error)
}

type ValidateInviteTokenExecutor interface {
	Execute(ctx context.Context, query ValidateInviteTokenQuery) (*InviteDTO, error)
	Redeemable(ctx context.Context, query ValidateInviteTokenQuery) (*InviteDTO, error)
}

type AcceptInviteExecutor interface {
	Execute(ctx context.Context, cmd AcceptInviteCommand) (*InviteDTO, error)
}

type GetInviteExecutor interface {
	Execute(ctx context.Context, query GetInviteQuery) (*InviteDTO, error)
}
