// Package project models a company project and its member set. Membership
// is an explicit join relation rather than a live collection; the
// application layer persists every mutation through MembershipRepository.
package project

import (
	"fmt"
	"time"
)

type Project struct {
	id          uint
	companyID   uint
	name        string
	description string
	startDate   time.Time
	endDate     time.Time
	priorityID  uint
	archived    bool
	image       *Image
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// Image is an optional uploaded project image.
type Image struct {
	FileName    string
	ContentType string
	Data        []byte
}

func NewProject(companyID uint, name, description string, startDate, endDate time.Time, priorityID uint) (*Project, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("project name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("project name exceeds maximum length of 200 characters")
	}
	if priorityID == 0 {
		return nil, fmt.Errorf("project priority is required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("project end date precedes start date")
	}

	now := time.Now()
	return &Project{
		companyID:   companyID,
		name:        name,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		priorityID:  priorityID,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	companyID uint,
	name string,
	description string,
	startDate, endDate time.Time,
	priorityID uint,
	archived bool,
	image *Image,
	version int,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("project name is required")
	}

	return &Project{
		id:          id,
		companyID:   companyID,
		name:        name,
		description: description,
		startDate:   startDate,
		endDate:     endDate,
		priorityID:  priorityID,
		archived:    archived,
		image:       image,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint             { return p.id }
func (p *Project) CompanyID() uint      { return p.companyID }
func (p *Project) Name() string         { return p.name }
func (p *Project) Description() string  { return p.description }
func (p *Project) StartDate() time.Time { return p.startDate }
func (p *Project) EndDate() time.Time   { return p.endDate }
func (p *Project) PriorityID() uint     { return p.priorityID }
func (p *Project) Archived() bool       { return p.archived }
func (p *Project) Image() *Image        { return p.image }
func (p *Project) Version() int         { return p.version }
func (p *Project) CreatedAt() time.Time { return p.createdAt }
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) UpdateDetails(name, description string, startDate, endDate time.Time, priorityID uint) error {
	if len(name) == 0 {
		return fmt.Errorf("project name is required")
	}
	if priorityID == 0 {
		return fmt.Errorf("project priority is required")
	}
	if endDate.Before(startDate) {
		return fmt.Errorf("project end date precedes start date")
	}

	p.name = name
	p.description = description
	p.startDate = startDate
	p.endDate = endDate
	p.priorityID = priorityID
	p.updatedAt = time.Now()
	p.version++
	return nil
}

func (p *Project) SetImage(image *Image) {
	p.image = image
	p.updatedAt = time.Now()
	p.version++
}

// Archive soft-deletes the project. Ticket flags are cascaded by the
// archive use case, not here.
func (p *Project) Archive() {
	if p.archived {
		return
	}
	p.archived = true
	p.updatedAt = time.Now()
	p.version++
}

func (p *Project) Restore() {
	if !p.archived {
		return
	}
	p.archived = false
	p.updatedAt = time.Now()
	p.version++
}
