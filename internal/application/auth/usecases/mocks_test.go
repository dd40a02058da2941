package usecases

import (
	"context"

	inviteusecases "bugtrail/internal/application/invite/usecases"
	"bugtrail/internal/domain/company"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/logger"
)

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

type mockCompanyRepository struct {
	SaveFunc    func(ctx context.Context, c *company.Company) error
	GetByIDFunc func(ctx context.Context, companyID uint) (*company.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) GetByID(ctx context.Context, companyID uint) (*company.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, companyID)
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

type mockValidateInvite struct {
	ExecuteFunc    func(ctx context.Context, query inviteusecases.ValidateInviteTokenQuery) (*inviteusecases.InviteDTO, error)
	RedeemableFunc func(ctx context.Context, query inviteusecases.ValidateInviteTokenQuery) (*inviteusecases.InviteDTO, error)
}

func (m *mockValidateInvite) Execute(ctx context.Context, query inviteusecases.ValidateInviteTokenQuery) (*inviteusecases.InviteDTO, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockValidateInvite) Redeemable(ctx context.Context, query inviteusecases.ValidateInviteTokenQuery) (*inviteusecases.InviteDTO, error) {
	if m.RedeemableFunc != nil {
		return m.RedeemableFunc(ctx, query)
	}
	return nil, nil
}

type mockAcceptInvite struct {
	ExecuteFunc func(ctx context.Context, cmd inviteusecases.AcceptInviteCommand) (*inviteusecases.InviteDTO, error)
}

func (m *mockAcceptInvite) Execute(ctx context.Context, cmd inviteusecases.AcceptInviteCommand) (*inviteusecases.InviteDTO, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return nil, nil
}

type mockPasswordHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Compare(hash, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, password)
	}
	return nil
}

type mockTokenIssuer struct {
	IssueFunc func(userID, companyID uint, role authorization.Role) (string, error)
}

func (m *mockTokenIssuer) Issue(userID, companyID uint, role authorization.Role) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, companyID, role)
	}
	return "token", nil
}

type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
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
