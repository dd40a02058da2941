package models

type TicketModel struct {
	ID                uint   `gorm:"primaryKey"`
	CompanyID         uint   `gorm:"not null;index"`
	ProjectID         uint   `gorm:"not null;index"`
	Title             string `gorm:"size:200;not null"`
	Description       string `gorm:"type:text;not null"`
	TypeID            uint   `gorm:"not null;index"`
	PriorityID        uint   `gorm:"not null;index"`
	StatusID          uint   `gorm:"not null;index"`
	OwnerID           uint   `gorm:"not null;index"`
	DeveloperID       *uint  `gorm:"index"`
	Archived          bool   `gorm:"not null;default:false;index"`
	ArchivedByProject bool   `gorm:"not null;default:false;index"`
	Version           int    `gorm:"not null;default:1"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketCommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketCommentModel) TableName() string {
	return "ticket_comments"
}

type TicketAttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	Description string `gorm:"size:500"`
	FileName    string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:100"`
	Data        []byte `gorm:"type:mediumblob;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}

// TicketHistoryModel rows are append-only.
type TicketHistoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	Property    string `gorm:"size:50;index"`
	OldValue    string `gorm:"size:500"`
	NewValue    string `gorm:"size:500"`
	Description string `gorm:"size:500;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketHistoryModel) TableName() string {
	return "ticket_histories"
}
