package usecases

import (
	"context"

	"bugtrail/internal/domain/catalog"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                 func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc               func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc              func(ctx context.Context, ticketID, companyID uint) (*ticket.Ticket, error)
	ListFunc                 func(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error)
	SetArchivedByProjectFunc func(ctx context.Context, projectID uint, archived bool) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID, companyID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID, companyID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, companyID uint, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, companyID, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) SetArchivedByProject(ctx context.Context, projectID uint, archived bool) error {
	if m.SetArchivedByProjectFunc != nil {
		return m.SetArchivedByProjectFunc(ctx, projectID, archived)
	}
	return nil
}

type mockProjectRepository struct {
	SaveFunc                  func(ctx context.Context, p *project.Project) error
	UpdateFunc                func(ctx context.Context, p *project.Project) error
	GetByIDFunc               func(ctx context.Context, projectID, companyID uint) (*project.Project, error)
	ListByCompanyFunc         func(ctx context.Context, companyID uint, includeArchived bool) ([]*project.Project, error)
	ListArchivedByCompanyFunc func(ctx context.Context, companyID uint) ([]*project.Project, error)
	ListByIDsFunc             func(ctx context.Context, companyID uint, projectIDs []uint) ([]*project.Project, error)
	ListByPriorityFunc        func(ctx context.Context, companyID, priorityID uint) ([]*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID, companyID uint) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, projectID, companyID)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByCompany(ctx context.Context, companyID uint, includeArchived bool) ([]*project.Project, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID, includeArchived)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListArchivedByCompany(ctx context.Context, companyID uint) ([]*project.Project, error) {
	if m.ListArchivedByCompanyFunc != nil {
		return m.ListArchivedByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByIDs(ctx context.Context, companyID uint, projectIDs []uint) ([]*project.Project, error) {
	if m.ListByIDsFunc != nil {
		return m.ListByIDsFunc(ctx, companyID, projectIDs)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByPriority(ctx context.Context, companyID, priorityID uint) ([]*project.Project, error) {
	if m.ListByPriorityFunc != nil {
		return m.ListByPriorityFunc(ctx, companyID, priorityID)
	}
	return nil, nil
}

type mockMembershipRepository struct {
	AddFunc        func(ctx context.Context, projectID, userID uint) error
	RemoveFunc     func(ctx context.Context, projectID, userID uint) error
	ContainsFunc   func(ctx context.Context, projectID, userID uint) (bool, error)
	MemberIDsFunc  func(ctx context.Context, projectID uint) ([]uint, error)
	ProjectIDsFunc func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockMembershipRepository) Add(ctx context.Context, projectID, userID uint) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, projectID, userID)
	}
	return nil
}

func (m *mockMembershipRepository) Remove(ctx context.Context, projectID, userID uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, projectID, userID)
	}
	return nil
}

func (m *mockMembershipRepository) Contains(ctx context.Context, projectID, userID uint) (bool, error) {
	if m.ContainsFunc != nil {
		return m.ContainsFunc(ctx, projectID, userID)
	}
	return false, nil
}

func (m *mockMembershipRepository) MemberIDs(ctx context.Context, projectID uint) ([]uint, error) {
	if m.MemberIDsFunc != nil {
		return m.MemberIDsFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockMembershipRepository) ProjectIDs(ctx context.Context, userID uint) ([]uint, error) {
	if m.ProjectIDsFunc != nil {
		return m.ProjectIDsFunc(ctx, userID)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ListByCompanyFunc func(ctx context.Context, companyID uint) ([]*user.User, error)
	ListByIDsFunc     func(ctx context.Context, companyID uint, userIDs []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByCompany(ctx context.Context, companyID uint) ([]*user.User, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockUserRepository) ListByIDs(ctx context.Context, companyID uint, userIDs []uint) ([]*user.User, error) {
	if m.ListByIDsFunc != nil {
		return m.ListByIDsFunc(ctx, companyID, userIDs)
	}
	return nil, nil
}

type mockCatalogRepository struct {
	ListTicketTypesFunc         func(ctx context.Context) ([]catalog.TicketType, error)
	ListTicketStatusesFunc      func(ctx context.Context) ([]catalog.TicketStatus, error)
	ListTicketPrioritiesFunc    func(ctx context.Context) ([]catalog.TicketPriority, error)
	ListProjectPrioritiesFunc   func(ctx context.Context) ([]catalog.ProjectPriority, error)
	TicketTypeIDByNameFunc      func(ctx context.Context, name string) (uint, error)
	TicketStatusIDByNameFunc    func(ctx context.Context, name string) (uint, error)
	TicketPriorityIDByNameFunc  func(ctx context.Context, name string) (uint, error)
	ProjectPriorityIDByNameFunc func(ctx context.Context, name string) (uint, error)
}

func (m *mockCatalogRepository) ListTicketTypes(ctx context.Context) ([]catalog.TicketType, error) {
	if m.ListTicketTypesFunc != nil {
		return m.ListTicketTypesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) ListTicketStatuses(ctx context.Context) ([]catalog.TicketStatus, error) {
	if m.ListTicketStatusesFunc != nil {
		return m.ListTicketStatusesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) ListTicketPriorities(ctx context.Context) ([]catalog.TicketPriority, error) {
	if m.ListTicketPrioritiesFunc != nil {
		return m.ListTicketPrioritiesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) ListProjectPriorities(ctx context.Context) ([]catalog.ProjectPriority, error) {
	if m.ListProjectPrioritiesFunc != nil {
		return m.ListProjectPrioritiesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) TicketTypeIDByName(ctx context.Context, name string) (uint, error) {
	if m.TicketTypeIDByNameFunc != nil {
		return m.TicketTypeIDByNameFunc(ctx, name)
	}
	return 0, nil
}

func (m *mockCatalogRepository) TicketStatusIDByName(ctx context.Context, name string) (uint, error) {
	if m.TicketStatusIDByNameFunc != nil {
		return m.TicketStatusIDByNameFunc(ctx, name)
	}
	return 0, nil
}

func (m *mockCatalogRepository) TicketPriorityIDByName(ctx context.Context, name string) (uint, error) {
	if m.TicketPriorityIDByNameFunc != nil {
		return m.TicketPriorityIDByNameFunc(ctx, name)
	}
	return 0, nil
}

func (m *mockCatalogRepository) ProjectPriorityIDByName(ctx context.Context, name string) (uint, error) {
	if m.ProjectPriorityIDByNameFunc != nil {
		return m.ProjectPriorityIDByNameFunc(ctx, name)
	}
	return 0, nil
}

type mockHistoryRepository struct {
	SaveFunc          func(ctx context.Context, entry ticket.HistoryEntry) error
	ListByTicketFunc  func(ctx context.Context, ticketID uint) ([]ticket.HistoryEntry, error)
	ListByCompanyFunc func(ctx context.Context, companyID uint) ([]ticket.HistoryEntry, error)
	ListByProjectFunc func(ctx context.Context, projectID, companyID uint) ([]ticket.HistoryEntry, error)
}

func (m *mockHistoryRepository) Save(ctx context.Context, entry ticket.HistoryEntry) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByTicket(ctx context.Context, ticketID uint) ([]ticket.HistoryEntry, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockHistoryRepository) ListByCompany(ctx context.Context, companyID uint) ([]ticket.HistoryEntry, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockHistoryRepository) ListByProject(ctx context.Context, projectID, companyID uint) ([]ticket.HistoryEntry, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID, companyID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc         func(ctx context.Context, comment *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
