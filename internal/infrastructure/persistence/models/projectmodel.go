package models

import "gorm.io/datatypes"

type ProjectModel struct {
	ID               uint           `gorm:"primaryKey"`
	CompanyID        uint           `gorm:"not null;index"`
	Name             string         `gorm:"size:200;not null"`
	Description      string         `gorm:"type:text"`
	StartDate        datatypes.Date `gorm:"not null"`
	EndDate          datatypes.Date `gorm:"not null"`
	PriorityID       uint           `gorm:"not null;index"`
	Archived         bool           `gorm:"not null;default:false;index"`
	ImageFileName    string         `gorm:"size:255"`
	ImageContentType string         `gorm:"size:100"`
	ImageData        []byte         `gorm:"type:mediumblob"`
	Version          int            `gorm:"not null;default:1"`
	CreatedAt        int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

// ProjectMemberModel is the explicit membership join row.
type ProjectMemberModel struct {
	ID        uint  `gorm:"primaryKey"`
	ProjectID uint  `gorm:"not null;uniqueIndex:idx_project_user"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_project_user;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ProjectMemberModel) TableName() string {
	return "project_members"
}
