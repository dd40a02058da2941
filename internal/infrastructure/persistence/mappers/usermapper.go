package mappers

import (
	"bugtrail/internal/domain/user"
	"bugtrail/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CompanyID:    u.CompanyID(),
	}

	if avatar := u.Avatar(); avatar != nil {
		model.AvatarFileName = avatar.FileName
		model.AvatarContentType = avatar.ContentType
		model.AvatarData = avatar.Data
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	var avatar *user.Avatar
	if len(model.AvatarData) > 0 {
		avatar = &user.Avatar{
			FileName:    model.AvatarFileName,
			ContentType: model.AvatarContentType,
			Data:        model.AvatarData,
		}
	}

	return user.ReconstructUser(model.ID, model.FirstName, model.LastName,
		model.Email, model.PasswordHash, model.CompanyID, avatar)
}
