package http

import (
	authhandlers "bugtrail/internal/interfaces/http/handlers/auth"
	companyhandlers "bugtrail/internal/interfaces/http/handlers/company"
	invitehandlers "bugtrail/internal/interfaces/http/handlers/invite"
	lookuphandlers "bugtrail/internal/interfaces/http/handlers/lookup"
	notificationhandlers "bugtrail/internal/interfaces/http/handlers/notification"
	projecthandlers "bugtrail/internal/interfaces/http/handlers/project"
	rolehandlers "bugtrail/internal/interfaces/http/handlers/roles"
	tickethandlers "bugtrail/internal/interfaces/http/handlers/ticket"
)

// handlers holds the HTTP handler set.
type handlers struct {
	auth         *authhandlers.AuthHandler
	project      *projecthandlers.ProjectHandler
	ticket       *tickethandlers.TicketHandler
	invite       *invitehandlers.InviteHandler
	notification *notificationhandlers.NotificationHandler
	role         *rolehandlers.RoleHandler
	company      *companyhandlers.CompanyHandler
	lookup       *lookuphandlers.LookupHandler
}

func (c *Container) wireHandlers() {
	ucs := c.ucs

	c.hdlrs = &handlers{
		auth: authhandlers.NewAuthHandler(ucs.register, ucs.login, ucs.validateInvite),
		project: projecthandlers.NewProjectHandler(
			ucs.createProject, ucs.updateProject, ucs.archiveProject, ucs.restoreProject,
			ucs.listProjects, ucs.getProject,
			ucs.addMember, ucs.removeMember, ucs.removeByRole,
			ucs.assignPM, ucs.getPM, ucs.listMembers, ucs.usersNotOnProj,
		),
		ticket: tickethandlers.NewTicketHandler(
			ucs.createTicket, ucs.updateTicket, ucs.assignDev,
			ucs.archiveTicket, ucs.restoreTicket,
			ucs.listTickets, ucs.getTicket,
			ucs.addComment, ucs.addAttachment, ucs.getAttachment, ucs.listHistory,
		),
		invite:       invitehandlers.NewInviteHandler(ucs.issueInvite, ucs.getInvite),
		notification: notificationhandlers.NewNotificationHandler(ucs.dispatchToUsers, ucs.dispatchToRole, ucs.listNotifs),
		role:         rolehandlers.NewRoleHandler(ucs.assignRole, ucs.removeRole, ucs.rolesOfUser, ucs.usersInRole),
		company:      companyhandlers.NewCompanyHandler(ucs.getCompany, ucs.companyMembers, ucs.companyActivity),
		lookup:       lookuphandlers.NewLookupHandler(ucs.listLookups),
	}
}
