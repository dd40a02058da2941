package ticket

import (
	"fmt"
	"strconv"
	"time"
)

// Tracked property names recorded in history entries.
const (
	PropTitle             = "Title"
	PropDescription       = "Description"
	PropType              = "TicketTypeID"
	PropPriority          = "TicketPriorityID"
	PropStatus            = "TicketStatusID"
	PropDeveloper         = "DeveloperUserID"
	PropProject           = "ProjectID"
	PropArchived          = "Archived"
	PropArchivedByProject = "ArchivedByProject"
)

// HistoryEntry is one immutable audit record: either a per-field change
// (Property/OldValue/NewValue set) or a free-text event (Property empty).
type HistoryEntry struct {
	id          uint
	ticketID    uint
	userID      uint
	property    string
	oldValue    string
	newValue    string
	description string
	createdAt   time.Time
}

func NewFieldChange(ticketID, userID uint, property, oldValue, newValue string, at time.Time) HistoryEntry {
	return HistoryEntry{
		ticketID:    ticketID,
		userID:      userID,
		property:    property,
		oldValue:    oldValue,
		newValue:    newValue,
		description: fmt.Sprintf("ticket %s changed from %q to %q", property, oldValue, newValue),
		createdAt:   at,
	}
}

func NewEvent(ticketID, userID uint, label string, at time.Time) HistoryEntry {
	return HistoryEntry{
		ticketID:    ticketID,
		userID:      userID,
		description: label,
		createdAt:   at,
	}
}

func ReconstructHistoryEntry(id, ticketID, userID uint, property, oldValue, newValue, description string, createdAt time.Time) HistoryEntry {
	return HistoryEntry{
		id:          id,
		ticketID:    ticketID,
		userID:      userID,
		property:    property,
		oldValue:    oldValue,
		newValue:    newValue,
		description: description,
		createdAt:   createdAt,
	}
}

func (h HistoryEntry) ID() uint             { return h.id }
func (h HistoryEntry) TicketID() uint       { return h.ticketID }
func (h HistoryEntry) UserID() uint         { return h.userID }
func (h HistoryEntry) Property() string     { return h.property }
func (h HistoryEntry) OldValue() string     { return h.oldValue }
func (h HistoryEntry) NewValue() string     { return h.newValue }
func (h HistoryEntry) Description() string  { return h.description }
func (h HistoryEntry) CreatedAt() time.Time { return h.createdAt }

// IsEvent reports whether the entry is a free-text event rather than a
// field diff.
func (h HistoryEntry) IsEvent() bool {
	return h.property == ""
}

// DiffEntries compares the tracked fields of two snapshots and returns one
// entry per changed field. A nil oldTicket means creation and yields a
// single "created" entry. Identical snapshots yield nothing.
func DiffEntries(oldTicket, newTicket *Ticket, userID uint, at time.Time) []HistoryEntry {
	if newTicket == nil {
		return nil
	}
	if oldTicket == nil {
		return []HistoryEntry{NewEvent(newTicket.ID(), userID, "created", at)}
	}

	var entries []HistoryEntry
	record := func(property, oldValue, newValue string) {
		if oldValue == newValue {
			return
		}
		entries = append(entries, NewFieldChange(newTicket.ID(), userID, property, oldValue, newValue, at))
	}

	record(PropTitle, oldTicket.Title(), newTicket.Title())
	record(PropDescription, oldTicket.Description(), newTicket.Description())
	record(PropType, formatUint(oldTicket.TypeID()), formatUint(newTicket.TypeID()))
	record(PropPriority, formatUint(oldTicket.PriorityID()), formatUint(newTicket.PriorityID()))
	record(PropStatus, formatUint(oldTicket.StatusID()), formatUint(newTicket.StatusID()))
	record(PropDeveloper, formatUintPtr(oldTicket.DeveloperID()), formatUintPtr(newTicket.DeveloperID()))
	record(PropProject, formatUint(oldTicket.ProjectID()), formatUint(newTicket.ProjectID()))
	record(PropArchived, strconv.FormatBool(oldTicket.Archived()), strconv.FormatBool(newTicket.Archived()))
	record(PropArchivedByProject, strconv.FormatBool(oldTicket.ArchivedByProject()), strconv.FormatBool(newTicket.ArchivedByProject()))

	return entries
}

func formatUint(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatUintPtr(v *uint) string {
	if v == nil {
		return ""
	}
	return formatUint(*v)
}
