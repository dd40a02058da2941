package http

import (
	"bugtrail/internal/domain/catalog"
	"bugtrail/internal/domain/company"
	"bugtrail/internal/domain/invite"
	"bugtrail/internal/domain/notification"
	"bugtrail/internal/domain/project"
	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/domain/user"
	"bugtrail/internal/infrastructure/repository"
)

// repositories holds every repository instance behind its domain interface.
type repositories struct {
	companyRepo      company.Repository
	userRepo         user.Repository
	projectRepo      project.Repository
	membershipRepo   project.MembershipRepository
	ticketRepo       ticket.Repository
	commentRepo      ticket.CommentRepository
	attachmentRepo   ticket.AttachmentRepository
	historyRepo      ticket.HistoryRepository
	inviteRepo       invite.Repository
	notificationRepo notification.Repository
	catalogRepo      catalog.Repository
}

func (c *Container) wireRepositories() {
	c.repos = &repositories{
		companyRepo:      repository.NewCompanyRepository(c.db),
		userRepo:         repository.NewUserRepository(c.db),
		projectRepo:      repository.NewProjectRepository(c.db),
		membershipRepo:   repository.NewMembershipRepository(c.db),
		ticketRepo:       repository.NewTicketRepository(c.db),
		commentRepo:      repository.NewCommentRepository(c.db),
		attachmentRepo:   repository.NewAttachmentRepository(c.db),
		historyRepo:      repository.NewHistoryRepository(c.db),
		inviteRepo:       repository.NewInviteRepository(c.db),
		notificationRepo: repository.NewNotificationRepository(c.db),
		catalogRepo:      repository.NewCatalogRepository(c.db),
	}
}
