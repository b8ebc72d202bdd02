package order

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// PostgresJournal persists transitions to an append-only event table and
// keeps one row per order (plus its items) as the latest snapshot.
type PostgresJournal struct {
	db *pgxpool.Pool
}

func NewPostgresJournal(db *pgxpool.Pool) *PostgresJournal {
	return &PostgresJournal{db: db}
}

func (j *PostgresJournal) RecordTransition(ctx context.Context, orderID uuid.UUID, status Status, at time.Time) error {
	query := `
		INSERT INTO pos.order_events (order_id, status, occurred_at)
		VALUES ($1, $2, $3)
	`
	if _, err := j.db.Exec(ctx, query, orderID, string(status), at.UTC()); err != nil {
		return fmt.Errorf("journal: failed to insert order event: %w", err)
	}
	return nil
}

func (j *PostgresJournal) RecordSnapshot(ctx context.Context, o *Order) (err error) {
	tx, beginErr := j.db.Begin(ctx)
	if beginErr != nil {
		return fmt.Errorf("journal: failed to begin transaction: %w", beginErr)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error().Err(rbErr).Stringer("order_id", o.ID).Msg("journal: failed to rollback snapshot transaction")
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("journal: failed to commit snapshot transaction: %w", commitErr)
		}
	}()

	queryOrder := `
		INSERT INTO pos.order_snapshots
			(order_id, order_number, customer_name, status, order_type, payment_method,
			 payment_status, priority, total, delivery_fee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (order_id) DO UPDATE SET
			status = EXCLUDED.status,
			total = EXCLUDED.total,
			updated_at = EXCLUDED.updated_at
	`
	_, err = tx.Exec(ctx, queryOrder,
		o.ID,
		o.OrderNumber,
		o.CustomerName,
		string(o.Status),
		string(o.OrderType),
		string(o.PaymentMethod),
		string(o.PaymentStatus),
		string(o.Priority),
		o.Total,
		o.DeliveryFee,
		o.CreatedAt.UTC(),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("journal: failed to upsert order snapshot %s: %w", o.ID, err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM pos.order_snapshot_items WHERE order_id = $1`, o.ID); err != nil {
		return fmt.Errorf("journal: failed to clear snapshot items for order %s: %w", o.ID, err)
	}

	queryItem := `
		INSERT INTO pos.order_snapshot_items (id, order_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, it := range o.Items {
		if _, err = tx.Exec(ctx, queryItem, it.ID, o.ID, it.Name, it.Price, it.Quantity); err != nil {
			return fmt.Errorf("journal: failed to insert snapshot item for order %s: %w", o.ID, err)
		}
	}

	return nil
}
