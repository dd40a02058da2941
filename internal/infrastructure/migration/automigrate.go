package migration

import (
	"bugtrail/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CompanyModel{},
		&models.UserModel{},
		&models.ProjectModel{},
		&models.ProjectMemberModel{},
		&models.TicketModel{},
		&models.TicketCommentModel{},
		&models.TicketAttachmentModel{},
		&models.TicketHistoryModel{},
		&models.InviteModel{},
		&models.NotificationModel{},
		&models.TicketTypeModel{},
		&models.TicketStatusModel{},
		&models.TicketPriorityModel{},
		&models.ProjectPriorityModel{},
	}
}
