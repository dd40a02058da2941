package usecases

import (
	"context"

	"bugtrail/internal/domain/invite"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/shared/logger"
)

type mockInviteRepository struct {
	SaveFunc           func(ctx context.Context, inv *invite.Invite) error
	UpdateFunc         func(ctx context.Context, inv *invite.Invite) error
	GetByTokenFunc     func(ctx context.Context, token string) (*invite.Invite, error)
	GetByIDFunc        func(ctx context.Context, inviteID, companyID uint) (*invite.Invite, error)
	ExistsMatchingFunc func(ctx context.Context, companyID uint, token, inviteeEmail string) (bool, error)
}

func (m *mockInviteRepository) Save(ctx context.Context, inv *invite.Invite) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, inv)
	}
	return nil
}

func (m *mockInviteRepository) Update(ctx context.Context, inv *invite.Invite) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inv)
	}
	return nil
}

func (m *mockInviteRepository) GetByToken(ctx context.Context, token string) (*invite.Invite, error) {
	if m.GetByTokenFunc != nil {
		return m.GetByTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockInviteRepository) GetByID(ctx context.Context, inviteID, companyID uint) (*invite.Invite, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, inviteID, companyID)
	}
	return nil, nil
}

func (m *mockInviteRepository) ExistsMatching(ctx context.Context, companyID uint, token, inviteeEmail string) (bool, error) {
	if m.ExistsMatchingFunc != nil {
		return m.ExistsMatchingFunc(ctx, companyID, token, inviteeEmail)
	}
	return false, nil
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

type mockEmailSender struct {
	SendFunc func(ctx context.Context, toAddress, subject, body string) error
}

func (m *mockEmailSender) Send(ctx context.Context, toAddress, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, toAddress, subject, body)
	}
	return nil
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
