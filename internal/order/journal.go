package order

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
)

// Journal is the persistence collaborator. The lifecycle service calls it
// exactly once per successful mutation, synchronously, before returning:
// RecordTransition for status changes, RecordSnapshot for item edits.
type Journal interface {
	RecordTransition(ctx context.Context, orderID uuid.UUID, status Status, at time.Time) error
	RecordSnapshot(ctx context.Context, o *Order) error
}

// NopJournal is used when the session runs without persistence.
type NopJournal struct{}

func (NopJournal) RecordTransition(context.Context, uuid.UUID, Status, time.Time) error {
	return nil
}

func (NopJournal) RecordSnapshot(context.Context, *Order) error {
	return nil
}
