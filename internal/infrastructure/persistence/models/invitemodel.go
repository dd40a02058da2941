package models

type InviteModel struct {
	ID           uint   `gorm:"primaryKey"`
	CompanyID    uint   `gorm:"not null;index"`
	ProjectID    uint   `gorm:"not null;index"`
	InvitorID    uint   `gorm:"not null;index"`
	InviteeEmail string `gorm:"size:255;not null;index"`
	InviteeFirst string `gorm:"size:100"`
	InviteeLast  string `gorm:"size:100"`
	Token        string `gorm:"uniqueIndex;size:64;not null"`
	IssuedAt     int64  `gorm:"not null"`
	Accepted     bool   `gorm:"not null;default:false"`
	InviteeID    *uint  `gorm:"index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (InviteModel) TableName() string {
	return "invites"
}
