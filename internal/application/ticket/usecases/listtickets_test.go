package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
)

func reconstructTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()
	now := time.Now()
	tk, err := ticket.ReconstructTicket(id, 1, 2, "t", "d", 3, 4, 5, 6, nil, false, false, 1, now, now)
	require.NoError(t, err)
	return tk
}

func newListTicketsUseCase(ticketRepo *mockTicketRepository, membershipRepo *mockMembershipRepository) *ListTicketsUseCase {
	return NewListTicketsUseCase(ticketRepo, membershipRepo, &mockCatalogRepository{}, &mockLogger{})
}

func TestListTicketsUseCase_AdminSeesWholeCompany(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			assert.Equal(t, uint(1), companyID)
			assert.Nil(t, filter.DeveloperID)
			assert.Nil(t, filter.OwnerID)
			assert.Empty(t, filter.ProjectIDs)
			assert.Equal(t, ticket.VisibilityLive, filter.Visibility)
			return []*ticket.Ticket{reconstructTicket(t, 10), reconstructTicket(t, 11)}, nil
		},
	}

	uc := newListTicketsUseCase(ticketRepo, &mockMembershipRepository{})

	dtos, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleAdmin,
		Scope:          ScopeVisible,
	})

	require.NoError(t, err)
	assert.Len(t, dtos, 2)
}

func TestListTicketsUseCase_ProjectManagerNarrowsToMemberProjects(t *testing.T) {
	membershipRepo := &mockMembershipRepository{
		ProjectIDsFunc: func(ctx context.Context, userID uint) ([]uint, error) {
			assert.Equal(t, uint(42), userID)
			return []uint{2, 3}, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			assert.Equal(t, []uint{2, 3}, filter.ProjectIDs)
			return []*ticket.Ticket{reconstructTicket(t, 10)}, nil
		},
	}

	uc := newListTicketsUseCase(ticketRepo, membershipRepo)

	dtos, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleProjectManager,
		Scope:          ScopeVisible,
	})

	require.NoError(t, err)
	assert.Len(t, dtos, 1)
}

func TestListTicketsUseCase_ProjectManagerWithoutProjectsSeesNothing(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			t.Fatal("List must not run when the manager has no projects")
			return nil, nil
		},
	}

	uc := newListTicketsUseCase(ticketRepo, &mockMembershipRepository{})

	dtos, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleProjectManager,
		Scope:          ScopeVisible,
	})

	require.NoError(t, err)
	assert.Empty(t, dtos)
}

func TestListTicketsUseCase_DeveloperSeesAssignedTickets(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			require.NotNil(t, filter.DeveloperID)
			assert.Equal(t, uint(42), *filter.DeveloperID)
			assert.Nil(t, filter.OwnerID)
			return []*ticket.Ticket{reconstructTicket(t, 10)}, nil
		},
	}

	uc := newListTicketsUseCase(ticketRepo, &mockMembershipRepository{})

	dtos, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleDeveloper,
		Scope:          ScopeVisible,
	})

	require.NoError(t, err)
	assert.Len(t, dtos, 1)
}

func TestListTicketsUseCase_SubmitterSeesOwnedTickets(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			require.NotNil(t, filter.OwnerID)
			assert.Equal(t, uint(42), *filter.OwnerID)
			assert.Nil(t, filter.DeveloperID)
			return []*ticket.Ticket{reconstructTicket(t, 10)}, nil
		},
	}

	uc := newListTicketsUseCase(ticketRepo, &mockMembershipRepository{})

	dtos, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleSubmitter,
		Scope:          ScopeVisible,
	})

	require.NoError(t, err)
	assert.Len(t, dtos, 1)
}

func TestListTicketsUseCase_DemoUserSeesNothing(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			t.Fatal("List must not run for a demo user")
			return nil, nil
		},
	}

	uc := newListTicketsUseCase(ticketRepo, &mockMembershipRepository{})

	dtos, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleDemoUser,
		Scope:          ScopeVisible,
	})

	require.NoError(t, err)
	assert.NotNil(t, dtos)
	assert.Empty(t, dtos)
}

func TestListTicketsUseCase_ArchivedScope(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			assert.Equal(t, ticket.VisibilityArchived, filter.Visibility)
			return nil, nil
		},
	}

	uc := newListTicketsUseCase(ticketRepo, &mockMembershipRepository{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleAdmin,
		Scope:          ScopeArchived,
	})
	require.NoError(t, err)
}

func TestListTicketsUseCase_UnassignedScope(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			assert.True(t, filter.Unassigned)
			assert.Equal(t, ticket.VisibilityLive, filter.Visibility)
			return nil, nil
		},
	}

	uc := newListTicketsUseCase(ticketRepo, &mockMembershipRepository{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleAdmin,
		Scope:          ScopeUnassigned,
	})
	require.NoError(t, err)
}

func TestListTicketsUseCase_NameFiltersResolveThroughCatalog(t *testing.T) {
	catalogRepo := &mockCatalogRepository{
		TicketStatusIDByNameFunc: func(ctx context.Context, name string) (uint, error) {
			assert.Equal(t, "Development", name)
			return 7, nil
		},
	}
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
			require.NotNil(t, filter.StatusID)
			assert.Equal(t, uint(7), *filter.StatusID)
			return nil, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, &mockMembershipRepository{}, catalogRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.RoleAdmin,
		Scope:          ScopeVisible,
		StatusName:     "Development",
	})
	require.NoError(t, err)
}

func TestListTicketsUseCase_UnknownRoleRejected(t *testing.T) {
	uc := newListTicketsUseCase(&mockTicketRepository{}, &mockMembershipRepository{})

	_, err := uc.Execute(context.Background(), ListTicketsQuery{
		ActorUserID:    42,
		ActorCompanyID: 1,
		ActorRole:      authorization.Role("Overlord"),
		Scope:          ScopeVisible,
	})
	assert.True(t, errors.IsValidationError(err))
}
