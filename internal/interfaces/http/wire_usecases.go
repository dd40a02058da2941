package http

import (
	"time"

	authusecases "bugtrail/internal/application/auth/usecases"
	companyusecases "bugtrail/internal/application/company/usecases"
	"bugtrail/internal/application/history"
	identityusecases "bugtrail/internal/application/identity/usecases"
	inviteusecases "bugtrail/internal/application/invite/usecases"
	lookupusecases "bugtrail/internal/application/lookup/usecases"
	notificationusecases "bugtrail/internal/application/notification/usecases"
	projectusecases "bugtrail/internal/application/project/usecases"
	ticketusecases "bugtrail/internal/application/ticket/usecases"
	infraauth "bugtrail/internal/infrastructure/auth"
	"bugtrail/internal/infrastructure/email"
	"bugtrail/internal/infrastructure/roles"
	"bugtrail/internal/shared/db"
	"bugtrail/internal/shared/services/markdown"
)

// useCases holds every application executor the handlers depend on.
type useCases struct {
	// project
	createProject  *projectusecases.CreateProjectUseCase
	updateProject  *projectusecases.UpdateProjectUseCase
	archiveProject *projectusecases.ArchiveProjectUseCase
	restoreProject *projectusecases.RestoreProjectUseCase
	listProjects   *projectusecases.ListProjectsUseCase
	getProject     *projectusecases.GetProjectUseCase
	addMember      *projectusecases.AddUserToProjectUseCase
	removeMember   *projectusecases.RemoveUserFromProjectUseCase
	removeByRole   *projectusecases.RemoveUsersByRoleUseCase
	assignPM       *projectusecases.AssignProjectManagerUseCase
	getPM          *projectusecases.GetProjectManagerUseCase
	listMembers    *projectusecases.ListProjectMembersUseCase
	usersNotOnProj *projectusecases.UsersNotOnProjectUseCase

	// ticket
	createTicket  *ticketusecases.CreateTicketUseCase
	updateTicket  *ticketusecases.UpdateTicketUseCase
	assignDev     *ticketusecases.AssignDeveloperUseCase
	archiveTicket *ticketusecases.ArchiveTicketUseCase
	restoreTicket *ticketusecases.RestoreTicketUseCase
	listTickets   *ticketusecases.ListTicketsUseCase
	getTicket     *ticketusecases.GetTicketUseCase
	addComment    *ticketusecases.AddCommentUseCase
	addAttachment *ticketusecases.AddAttachmentUseCase
	getAttachment *ticketusecases.GetAttachmentUseCase
	listHistory   *ticketusecases.ListHistoryUseCase

	// invite
	issueInvite    *inviteusecases.IssueInviteUseCase
	validateInvite *inviteusecases.ValidateInviteTokenUseCase
	acceptInvite   *inviteusecases.AcceptInviteUseCase
	getInvite      *inviteusecases.GetInviteUseCase

	// notification
	dispatchToUsers *notificationusecases.DispatchToUsersUseCase
	dispatchToRole  *notificationusecases.DispatchToRoleUseCase
	listNotifs      *notificationusecases.ListNotificationsUseCase

	// identity
	assignRole  *identityusecases.AssignRoleUseCase
	removeRole  *identityusecases.RemoveRoleUseCase
	rolesOfUser *identityusecases.RolesOfUserUseCase
	usersInRole *identityusecases.UsersInRoleUseCase

	// company, lookup, auth
	getCompany      *companyusecases.GetCompanyUseCase
	companyMembers  *companyusecases.ListCompanyMembersUseCase
	companyActivity *companyusecases.CompanyActivityUseCase
	listLookups     *lookupusecases.ListLookupsUseCase
	register        *authusecases.RegisterUseCase
	login           *authusecases.LoginUseCase
}

func (c *Container) wireUseCases() error {
	log := c.log
	r := c.repos

	roleDirectory, err := roles.NewCasbinDirectory(c.db, log)
	if err != nil {
		return err
	}

	tx := db.NewTransactionManager(c.db)
	recorder := history.NewRecorder(r.historyRepo, log)
	markdownSvc := markdown.NewService()
	hasher := infraauth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	emailSender := email.NewSMTPEmailSender(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
	})

	inviteWindow := time.Duration(c.cfg.Invite.ValidityDays) * 24 * time.Hour

	ucs := &useCases{}

	ucs.createProject = projectusecases.NewCreateProjectUseCase(r.projectRepo, log)
	ucs.updateProject = projectusecases.NewUpdateProjectUseCase(r.projectRepo, log)
	ucs.archiveProject = projectusecases.NewArchiveProjectUseCase(r.projectRepo, r.ticketRepo, tx, log)
	ucs.restoreProject = projectusecases.NewRestoreProjectUseCase(r.projectRepo, r.ticketRepo, tx, log)
	ucs.listProjects = projectusecases.NewListProjectsUseCase(r.projectRepo, r.membershipRepo, r.catalogRepo)
	ucs.getProject = projectusecases.NewGetProjectUseCase(r.projectRepo)
	ucs.addMember = projectusecases.NewAddUserToProjectUseCase(r.projectRepo, r.membershipRepo, r.userRepo, log)
	ucs.removeMember = projectusecases.NewRemoveUserFromProjectUseCase(r.membershipRepo, log)
	ucs.removeByRole = projectusecases.NewRemoveUsersByRoleUseCase(r.membershipRepo, roleDirectory, log)
	ucs.assignPM = projectusecases.NewAssignProjectManagerUseCase(r.projectRepo, r.membershipRepo, r.userRepo, roleDirectory, tx, log)
	ucs.getPM = projectusecases.NewGetProjectManagerUseCase(r.membershipRepo, r.userRepo, roleDirectory)
	ucs.listMembers = projectusecases.NewListProjectMembersUseCase(r.membershipRepo, r.userRepo, roleDirectory)
	ucs.usersNotOnProj = projectusecases.NewUsersNotOnProjectUseCase(r.membershipRepo, r.userRepo)

	ucs.createTicket = ticketusecases.NewCreateTicketUseCase(r.ticketRepo, r.projectRepo, recorder, log)
	ucs.updateTicket = ticketusecases.NewUpdateTicketUseCase(r.ticketRepo, recorder, log)
	ucs.assignDev = ticketusecases.NewAssignDeveloperUseCase(r.ticketRepo, r.userRepo, r.catalogRepo, recorder, log)
	ucs.archiveTicket = ticketusecases.NewArchiveTicketUseCase(r.ticketRepo, recorder, log)
	ucs.restoreTicket = ticketusecases.NewRestoreTicketUseCase(r.ticketRepo, recorder, log)
	ucs.listTickets = ticketusecases.NewListTicketsUseCase(r.ticketRepo, r.membershipRepo, r.catalogRepo, log)
	ucs.getTicket = ticketusecases.NewGetTicketUseCase(r.ticketRepo, r.commentRepo, r.attachmentRepo, r.historyRepo, markdownSvc, log)
	ucs.addComment = ticketusecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, recorder, log)
	ucs.addAttachment = ticketusecases.NewAddAttachmentUseCase(r.ticketRepo, r.attachmentRepo, recorder, log)
	ucs.getAttachment = ticketusecases.NewGetAttachmentUseCase(r.ticketRepo, r.attachmentRepo, log)
	ucs.listHistory = ticketusecases.NewListHistoryUseCase(r.historyRepo, r.ticketRepo, log)

	ucs.issueInvite = inviteusecases.NewIssueInviteUseCase(r.inviteRepo, r.projectRepo, emailSender, c.cfg.Server.BaseURL, log)
	ucs.validateInvite = inviteusecases.NewValidateInviteTokenUseCase(r.inviteRepo, inviteWindow, log)
	ucs.acceptInvite = inviteusecases.NewAcceptInviteUseCase(r.inviteRepo, log)
	ucs.getInvite = inviteusecases.NewGetInviteUseCase(r.inviteRepo, log)

	ucs.dispatchToUsers = notificationusecases.NewDispatchToUsersUseCase(r.notificationRepo, r.userRepo, emailSender, log)
	ucs.dispatchToRole = notificationusecases.NewDispatchToRoleUseCase(ucs.dispatchToUsers, roleDirectory, r.userRepo, log)
	ucs.listNotifs = notificationusecases.NewListNotificationsUseCase(r.notificationRepo, log)

	ucs.assignRole = identityusecases.NewAssignRoleUseCase(roleDirectory, r.userRepo, log)
	ucs.removeRole = identityusecases.NewRemoveRoleUseCase(roleDirectory, r.userRepo, log)
	ucs.rolesOfUser = identityusecases.NewRolesOfUserUseCase(roleDirectory, r.userRepo, log)
	ucs.usersInRole = identityusecases.NewUsersInRoleUseCase(roleDirectory, r.userRepo, log)

	ucs.getCompany = companyusecases.NewGetCompanyUseCase(r.companyRepo, log)
	ucs.companyMembers = companyusecases.NewListCompanyMembersUseCase(r.userRepo, log)
	ucs.companyActivity = companyusecases.NewCompanyActivityUseCase(r.projectRepo, r.ticketRepo, r.userRepo, log)
	ucs.listLookups = lookupusecases.NewListLookupsUseCase(r.catalogRepo, log)

	ucs.register = authusecases.NewRegisterUseCase(
		r.userRepo, r.companyRepo, r.membershipRepo, roleDirectory,
		ucs.validateInvite, ucs.acceptInvite, hasher, tx, log)
	ucs.login = authusecases.NewLoginUseCase(r.userRepo, roleDirectory, hasher, c.jwtService, log)

	c.ucs = ucs
	return nil
}
