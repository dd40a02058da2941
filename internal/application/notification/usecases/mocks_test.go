package usecases

import (
	"context"

	"bugtrail/internal/domain/notification"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/logger"
)

type mockNotificationRepository struct {
	SaveFunc         func(ctx context.Context, n *notification.Notification) error
	ListSentFunc     func(ctx context.Context, userID uint) ([]*notification.Notification, error)
	ListReceivedFunc func(ctx context.Context, userID uint) ([]*notification.Notification, error)
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) ListSent(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	if m.ListSentFunc != nil {
		return m.ListSentFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockNotificationRepository) ListReceived(ctx context.Context, userID uint) ([]*notification.Notification, error) {
	if m.ListReceivedFunc != nil {
		return m.ListReceivedFunc(ctx, userID)
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

type mockEmailSender struct {
	SendFunc func(ctx context.Context, toAddress, subject, body string) error
}

func (m *mockEmailSender) Send(ctx context.Context, toAddress, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, toAddress, subject, body)
	}
	return nil
}

type mockRoleDirectory struct {
	AssignRoleFunc    func(ctx context.Context, userID uint, role authorization.Role) error
	RemoveRoleFunc    func(ctx context.Context, userID uint, role authorization.Role) error
	RemoveRolesFunc   func(ctx context.Context, userID uint, roles []authorization.Role) error
	HasRoleFunc       func(ctx context.Context, userID uint, role authorization.Role) (bool, error)
	RolesOfFunc       func(ctx context.Context, userID uint) ([]authorization.Role, error)
	UserIDsInRoleFunc func(ctx context.Context, role authorization.Role) ([]uint, error)
}

func (m *mockRoleDirectory) AssignRole(ctx context.Context, userID uint, role authorization.Role) error {
	if m.AssignRoleFunc != nil {
		return m.AssignRoleFunc(ctx, userID, role)
	}
	return nil
}

func (m *mockRoleDirectory) RemoveRole(ctx context.Context, userID uint, role authorization.Role) error {
	if m.RemoveRoleFunc != nil {
		return m.RemoveRoleFunc(ctx, userID, role)
	}
	return nil
}

func (m *mockRoleDirectory) RemoveRoles(ctx context.Context, userID uint, roles []authorization.Role) error {
	if m.RemoveRolesFunc != nil {
		return m.RemoveRolesFunc(ctx, userID, roles)
	}
	return nil
}

func (m *mockRoleDirectory) HasRole(ctx context.Context, userID uint, role authorization.Role) (bool, error) {
	if m.HasRoleFunc != nil {
		return m.HasRoleFunc(ctx, userID, role)
	}
	return false, nil
}

func (m *mockRoleDirectory) RolesOf(ctx context.Context, userID uint) ([]authorization.Role, error) {
	if m.RolesOfFunc != nil {
		return m.RolesOfFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockRoleDirectory) UserIDsInRole(ctx context.Context, role authorization.Role) ([]uint, error) {
	if m.UserIDsInRoleFunc != nil {
		return m.UserIDsInRoleFunc(ctx, role)
	}
	return nil, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...any)
	ErrorwFunc func(msg string, keysAndValues ...any)
	WarnwFunc  func(msg string, keysAndValues ...any)
	DebugwFunc func(msg string, keysAndValues ...any)
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...any) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }
