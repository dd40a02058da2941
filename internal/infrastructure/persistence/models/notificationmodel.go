package models

type NotificationModel struct {
	ID          uint   `gorm:"primaryKey"`
	SenderID    uint   `gorm:"not null;index"`
	RecipientID uint   `gorm:"not null;index"`
	TicketID    *uint  `gorm:"index"`
	Title       string `gorm:"size:200;not null"`
	Message     string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
