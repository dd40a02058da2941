package models

type UserModel struct {
	ID                uint   `gorm:"primaryKey"`
	FirstName         string `gorm:"size:100;not null"`
	LastName          string `gorm:"size:100;not null"`
	Email             string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash      string `gorm:"size:255;not null"`
	CompanyID         uint   `gorm:"not null;index"`
	AvatarFileName    string `gorm:"size:255"`
	AvatarContentType string `gorm:"size:100"`
	AvatarData        []byte `gorm:"type:mediumblob"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
