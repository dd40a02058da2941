// Package usecases implements role directory operations: assignment,
// removal and company-scoped enumeration.
package usecases

import (
	"context"

	"bugtrail/internal/domain/identity"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/shared/authorization"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

type UserDTO struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
	}
}

type AssignRoleCommand struct {
	ActorCompanyID uint
	UserID         uint
	Role           authorization.Role
}

// AssignRoleUseCase puts a user in exactly one role: any current roles are
// removed first so a user never holds two at once.
type AssignRoleUseCase struct {
	roleDirectory identity.RoleDirectory
	userRepo      user.Repository
	logger        logger.Interface
}

func NewAssignRoleUseCase(roleDirectory identity.RoleDirectory, userRepo user.Repository, logger logger.Interface) *AssignRoleUseCase {
	return &AssignRoleUseCase{
		roleDirectory: roleDirectory,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *AssignRoleUseCase) Execute(ctx context.Context, cmd AssignRoleCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if !cmd.Role.IsValid() {
		return errors.NewValidationError("unknown role: " + string(cmd.Role))
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if !target.BelongsTo(cmd.ActorCompanyID) {
		return errors.NewNotFoundError("user not found")
	}

	current, err := uc.roleDirectory.RolesOf(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to read current roles", "error", err, "user_id", cmd.UserID)
		return errors.NewInternalError("failed to assign role")
	}
	if len(current) > 0 {
		if err := uc.roleDirectory.RemoveRoles(ctx, cmd.UserID, current); err != nil {
			uc.logger.Errorw("failed to clear current roles", "error", err, "user_id", cmd.UserID)
			return errors.NewInternalError("failed to assign role")
		}
	}

	if err := uc.roleDirectory.AssignRole(ctx, cmd.UserID, cmd.Role); err != nil {
		uc.logger.Errorw("failed to assign role", "error", err, "user_id", cmd.UserID, "role", cmd.Role)
		return errors.NewInternalError("failed to assign role")
	}

	uc.logger.Infow("role assigned", "user_id", cmd.UserID, "role", cmd.Role)
	return nil
}

type RemoveRoleCommand struct {
	ActorCompanyID uint
	UserID         uint
	Role           authorization.Role
}

type RemoveRoleUseCase struct {
	roleDirectory identity.RoleDirectory
	userRepo      user.Repository
	logger        logger.Interface
}

func NewRemoveRoleUseCase(roleDirectory identity.RoleDirectory, userRepo user.Repository, logger logger.Interface) *RemoveRoleUseCase {
	return &RemoveRoleUseCase{
		roleDirectory: roleDirectory,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *RemoveRoleUseCase) Execute(ctx context.Context, cmd RemoveRoleCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if !cmd.Role.IsValid() {
		return errors.NewValidationError("unknown role: " + string(cmd.Role))
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if !target.BelongsTo(cmd.ActorCompanyID) {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.roleDirectory.RemoveRole(ctx, cmd.UserID, cmd.Role); err != nil {
		uc.logger.Errorw("failed to remove role", "error", err, "user_id", cmd.UserID, "role", cmd.Role)
		return errors.NewInternalError("failed to remove role")
	}
	return nil
}

type RolesOfUserQuery struct {
	ActorCompanyID uint
	UserID         uint
}

type RolesOfUserUseCase struct {
	roleDirectory identity.RoleDirectory
	userRepo      user.Repository
	logger        logger.Interface
}

func NewRolesOfUserUseCase(roleDirectory identity.RoleDirectory, userRepo user.Repository, logger logger.Interface) *RolesOfUserUseCase {
	return &RolesOfUserUseCase{
		roleDirectory: roleDirectory,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *RolesOfUserUseCase) Execute(ctx context.Context, query RolesOfUserQuery) ([]authorization.Role, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	target, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if !target.BelongsTo(query.ActorCompanyID) {
		return nil, errors.NewNotFoundError("user not found")
	}

	roles, err := uc.roleDirectory.RolesOf(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to read roles", "error", err, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to read roles")
	}
	return roles, nil
}

// IsInRole reports whether a company member holds the role.
func (uc *RolesOfUserUseCase) IsInRole(ctx context.Context, query RolesOfUserQuery, role authorization.Role) (bool, error) {
	if !role.IsValid() {
		return false, errors.NewValidationError("unknown role: " + string(role))
	}
	roles, err := uc.Execute(ctx, query)
	if err != nil {
		return false, err
	}
	for _, r := range roles {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

type UsersInRoleQuery struct {
	ActorCompanyID uint
	Role           authorization.Role
}

// UsersInRoleUseCase enumerates company members holding a role. The
// directory itself is company-agnostic; the user repository narrows the
// raw id list to the tenant.
type UsersInRoleUseCase struct {
	roleDirectory identity.RoleDirectory
	userRepo      user.Repository
	logger        logger.Interface
}

func NewUsersInRoleUseCase(roleDirectory identity.RoleDirectory, userRepo user.Repository, logger logger.Interface) *UsersInRoleUseCase {
	return &UsersInRoleUseCase{
		roleDirectory: roleDirectory,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *UsersInRoleUseCase) Execute(ctx context.Context, query UsersInRoleQuery) ([]UserDTO, error) {
	if query.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}
	if !query.Role.IsValid() {
		return nil, errors.NewValidationError("unknown role: " + string(query.Role))
	}

	userIDs, err := uc.roleDirectory.UserIDsInRole(ctx, query.Role)
	if err != nil {
		uc.logger.Errorw("failed to enumerate role members", "error", err, "role", query.Role)
		return nil, errors.NewInternalError("failed to list role members")
	}
	if len(userIDs) == 0 {
		return []UserDTO{}, nil
	}

	members, err := uc.userRepo.ListByIDs(ctx, query.ActorCompanyID, userIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve role members", "error", err, "company_id", query.ActorCompanyID)
		return nil, errors.NewInternalError("failed to list role members")
	}

	dtos := make([]UserDTO, 0, len(members))
	for _, member := range members {
		dtos = append(dtos, toUserDTO(member))
	}
	return dtos, nil
}

// UsersNotInRole returns the company members who do not hold the role.
func (uc *UsersInRoleUseCase) UsersNotInRole(ctx context.Context, query UsersInRoleQuery) ([]UserDTO, error) {
	if query.ActorCompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}
	if !query.Role.IsValid() {
		return nil, errors.NewValidationError("unknown role: " + string(query.Role))
	}

	userIDs, err := uc.roleDirectory.UserIDsInRole(ctx, query.Role)
	if err != nil {
		uc.logger.Errorw("failed to enumerate role members", "error", err, "role", query.Role)
		return nil, errors.NewInternalError("failed to list role members")
	}
	inRole := make(map[uint]struct{}, len(userIDs))
	for _, id := range userIDs {
		inRole[id] = struct{}{}
	}

	everyone, err := uc.userRepo.ListByCompany(ctx, query.ActorCompanyID)
	if err != nil {
		uc.logger.Errorw("failed to list company members", "error", err, "company_id", query.ActorCompanyID)
		return nil, errors.NewInternalError("failed to list role members")
	}

	dtos := make([]UserDTO, 0, len(everyone))
	for _, member := range everyone {
		if _, ok := inRole[member.ID()]; ok {
			continue
		}
		dtos = append(dtos, toUserDTO(member))
	}
	return dtos, nil
}
