package models

// Catalog tables are seeded once and read-only at runtime.

type TicketTypeModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

func (TicketTypeModel) TableName() string {
	return "ticket_types"
}

type TicketStatusModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

func (TicketStatusModel) TableName() string {
	return "ticket_statuses"
}

type TicketPriorityModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

func (TicketPriorityModel) TableName() string {
	return "ticket_priorities"
}

type ProjectPriorityModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

func (ProjectPriorityModel) TableName() string {
	return "project_priorities"
}
