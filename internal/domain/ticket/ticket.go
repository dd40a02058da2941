// Package ticket models tickets and their comment/attachment/history
// trail. A ticket carries two independent archive flags: Archived is the
// user-controlled one, ArchivedByProject is derived and only ever set by
// the project archive cascade. A ticket is live only when both are false.
package ticket

import (
	"fmt"
	"time"
)

type Ticket struct {
	id                uint
	companyID         uint
	projectID         uint
	title             string
	description       string
	typeID            uint
	priorityID        uint
	statusID          uint
	ownerID           uint
	developerID       *uint
	archived          bool
	archivedByProject bool
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

func NewTicket(
	companyID uint,
	projectID uint,
	title string,
	description string,
	typeID, priorityID, statusID uint,
	ownerID uint,
) (*Ticket, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if typeID == 0 || priorityID == 0 || statusID == 0 {
		return nil, fmt.Errorf("ticket type, priority and status are required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()
	return &Ticket{
		companyID:   companyID,
		projectID:   projectID,
		title:       title,
		description: description,
		typeID:      typeID,
		priorityID:  priorityID,
		statusID:    statusID,
		ownerID:     ownerID,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	companyID uint,
	projectID uint,
	title string,
	description string,
	typeID, priorityID, statusID uint,
	ownerID uint,
	developerID *uint,
	archived bool,
	archivedByProject bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:                id,
		companyID:         companyID,
		projectID:         projectID,
		title:             title,
		description:       description,
		typeID:            typeID,
		priorityID:        priorityID,
		statusID:          statusID,
		ownerID:           ownerID,
		developerID:       developerID,
		archived:          archived,
		archivedByProject: archivedByProject,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) CompanyID() uint         { return t.companyID }
func (t *Ticket) ProjectID() uint         { return t.projectID }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) TypeID() uint            { return t.typeID }
func (t *Ticket) PriorityID() uint        { return t.priorityID }
func (t *Ticket) StatusID() uint          { return t.statusID }
func (t *Ticket) OwnerID() uint           { return t.ownerID }
func (t *Ticket) DeveloperID() *uint      { return t.developerID }
func (t *Ticket) Archived() bool          { return t.archived }
func (t *Ticket) ArchivedByProject() bool { return t.archivedByProject }
func (t *Ticket) Version() int            { return t.version }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

// IsLive reports whether the ticket appears in standard list views.
func (t *Ticket) IsLive() bool {
	return !t.archived && !t.archivedByProject
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateDetails(title, description string, typeID, priorityID, statusID uint) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if typeID == 0 || priorityID == 0 || statusID == 0 {
		return fmt.Errorf("ticket type, priority and status are required")
	}

	t.title = title
	t.description = description
	t.typeID = typeID
	t.priorityID = priorityID
	t.statusID = statusID
	t.updatedAt = time.Now()
	t.version++
	return nil
}

// AssignDeveloper sets the developer and moves the ticket into the given
// status (the "Development" status looked up by the caller).
func (t *Ticket) AssignDeveloper(developerID, statusID uint) error {
	if developerID == 0 {
		return fmt.Errorf("developer ID cannot be zero")
	}
	if statusID == 0 {
		return fmt.Errorf("status ID cannot be zero")
	}

	t.developerID = &developerID
	t.statusID = statusID
	t.updatedAt = time.Now()
	t.version++
	return nil
}

func (t *Ticket) MoveToProject(projectID uint) error {
	if projectID == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	t.projectID = projectID
	t.updatedAt = time.Now()
	t.version++
	return nil
}

// Archive toggles only the ticket-level flag; ArchivedByProject is owned by
// the project cascade.
func (t *Ticket) Archive() {
	if t.archived {
		return
	}
	t.archived = true
	t.updatedAt = time.Now()
	t.version++
}

func (t *Ticket) Restore() {
	if !t.archived {
		return
	}
	t.archived = false
	t.updatedAt = time.Now()
	t.version++
}
