// Package history provides the ticket history recorder: an append-only
// audit log of field diffs and free-text events.
package history

import (
	"context"
	"time"

	"bugtrail/internal/domain/ticket"
	"bugtrail/internal/shared/errors"
	"bugtrail/internal/shared/logger"
)

// Recorder writes history entries. Ticket use cases call it after every
// mutation; nothing ever updates or deletes an entry.
type Recorder struct {
	historyRepo ticket.HistoryRepository
	now         func() time.Time
	logger      logger.Interface
}

func NewRecorder(historyRepo ticket.HistoryRepository, logger logger.Interface) *Recorder {
	return &Recorder{
		historyRepo: historyRepo,
		now:         time.Now,
		logger:      logger,
	}
}

// NewRecorderWithClock is for tests that need a deterministic timestamp.
func NewRecorderWithClock(historyRepo ticket.HistoryRepository, logger logger.Interface, now func() time.Time) *Recorder {
	return &Recorder{
		historyRepo: historyRepo,
		now:         now,
		logger:      logger,
	}
}

// RecordChange diffs the tracked fields of two snapshots and appends one
// entry per changed field. A nil oldTicket records a single "created"
// entry; identical snapshots record nothing.
func (r *Recorder) RecordChange(ctx context.Context, oldTicket, newTicket *ticket.Ticket, userID uint) error {
	if newTicket == nil {
		return errors.NewValidationError("new ticket snapshot is required")
	}
	if userID == 0 {
		return errors.NewValidationError("acting user ID is required")
	}

	entries := ticket.DiffEntries(oldTicket, newTicket, userID, r.now())
	for _, entry := range entries {
		if err := r.historyRepo.Save(ctx, entry); err != nil {
			r.logger.Errorw("failed to append history entry", "error", err,
				"ticket_id", newTicket.ID(), "property", entry.Property())
			return errors.NewDownstreamError("failed to append ticket history", err.Error())
		}
	}
	return nil
}

// RecordEvent appends a single free-text entry, used for comment and
// attachment additions.
func (r *Recorder) RecordEvent(ctx context.Context, ticketID uint, eventLabel string, userID uint) error {
	if ticketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if eventLabel == "" {
		return errors.NewValidationError("event label is required")
	}
	if userID == 0 {
		return errors.NewValidationError("acting user ID is required")
	}

	entry := ticket.NewEvent(ticketID, userID, eventLabel, r.now())
	if err := r.historyRepo.Save(ctx, entry); err != nil {
		r.logger.Errorw("failed to append history event", "error", err,
			"ticket_id", ticketID, "event", eventLabel)
		return errors.NewDownstreamError("failed to append ticket history", err.Error())
	}
	return nil
}
