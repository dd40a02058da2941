package ticket

import "context"

// Visibility selects which archive states a list query returns.
type Visibility int

const (
	// VisibilityLive returns tickets with both archive flags false.
	VisibilityLive Visibility = iota
	// VisibilityArchived returns tickets with either archive flag true.
	VisibilityArchived
	// VisibilityAll ignores the archive flags.
	VisibilityAll
)

// Filter narrows List queries. Fields are combined with AND; nil pointer
// fields are ignored.
type Filter struct {
	ProjectID   *uint
	ProjectIDs  []uint
	DeveloperID *uint
	OwnerID     *uint
	StatusID    *uint
	PriorityID  *uint
	TypeID      *uint
	Unassigned  bool
	Visibility  Visibility
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	// Update persists the aggregate with a version check; a stale write is
	// reported as a conflict error, a vanished row as not-found.
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID, companyID uint) (*Ticket, error)
	List(ctx context.Context, companyID uint, filter Filter) ([]*Ticket, error)
	// SetArchivedByProject flips the derived flag on every ticket of the
	// project. Run inside the cascade transaction.
	SetArchivedByProject(ctx context.Context, projectID uint, archived bool) error
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Attachment, error)
}

// HistoryRepository is append-only; retrieval is chronological.
type HistoryRepository interface {
	Save(ctx context.Context, entry HistoryEntry) error
	ListByTicket(ctx context.Context, ticketID uint) ([]HistoryEntry, error)
	ListByCompany(ctx context.Context, companyID uint) ([]HistoryEntry, error)
	ListByProject(ctx context.Context, projectID, companyID uint) ([]HistoryEntry, error)
}
