package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Rig-by/mojsa-restaurant-sales-system/internal/user"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrRoleNotAllowed    = errors.New("role is not allowed to perform this transition")
)

// The lifecycle is strictly forward and single-step. completed has no
// successors and is terminal.
var allowedTransitions = map[Status]map[Status]bool{
	StatusPending:   {StatusPreparing: true},
	StatusPreparing: {StatusReady: true},
	StatusReady:     {StatusCompleted: true},
	StatusCompleted: {},
}

// Which roles may drive a transition, keyed by the target status. Kitchen
// staff only move orders out of preparation; cashiers confirm and hand over.
var transitionRoles = map[Status]map[user.Role]bool{
	StatusPreparing: {user.RoleAdmin: true, user.RoleManager: true, user.RoleCashier: true},
	StatusReady:     {user.RoleAdmin: true, user.RoleManager: true, user.RoleKitchen: true},
	StatusCompleted: {user.RoleAdmin: true, user.RoleManager: true, user.RoleCashier: true},
}

// Filter narrows Select results. Zero values mean "all". Search matches the
// order number and customer name case-insensitively.
type Filter struct {
	Search    string
	Status    Status
	OrderType OrderType
	From      time.Time
	To        time.Time
}

// Service is the order lifecycle manager: the only sanctioned way to mutate
// order status or contents. All operations are synchronous and local; the
// journal collaborator is notified exactly once per successful mutation,
// before the operation returns.
type Service struct {
	store   *Store
	journal Journal
	taxRate float64
	now     func() time.Time
}

func NewService(store *Store, journal Journal, taxRate float64) *Service {
	if journal == nil {
		journal = NopJournal{}
	}
	return &Service{
		store:   store,
		journal: journal,
		taxRate: taxRate,
		now:     time.Now,
	}
}

// Select is a side-effect-free snapshot lookup.
func (s *Service) Select(id uuid.UUID) (*Order, error) {
	return s.store.Get(id)
}

// UpdateStatus moves an order to newStatus. Re-sending the current status is
// an idempotent no-op and never re-stamps the transition time. Non-adjacent
// or backward transitions fail with ErrInvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus Status, role user.Role) (*Order, error) {
	if _, err := ParseStatus(string(newStatus)); err != nil {
		return nil, err
	}

	at := s.now()
	var noop bool

	updated, err := s.store.update(id, func(o *Order) error {
		if o.Status == newStatus {
			noop = true
			return nil
		}
		if !allowedTransitions[o.Status][newStatus] {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, newStatus)
		}
		if !transitionRoles[newStatus][role] {
			return fmt.Errorf("%w: role %s may not set status %s", ErrRoleNotAllowed, role, newStatus)
		}

		o.Status = newStatus
		switch newStatus {
		case StatusPreparing:
			if o.PreparingAt == nil {
				o.PreparingAt = &at
			}
		case StatusReady:
			if o.ReadyAt == nil {
				o.ReadyAt = &at
			}
		case StatusCompleted:
			if o.CompletedAt == nil {
				o.CompletedAt = &at
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			log.Warn().Stringer("order_id", id).Str("new_status", newStatus.String()).Msg("service: order not found, cannot update status")
		}
		return nil, err
	}

	if noop {
		log.Info().Stringer("order_id", id).Str("status", newStatus.String()).Msg("service: order status is already the same, no update needed")
		return updated, nil
	}

	if err := s.journal.RecordTransition(ctx, id, newStatus, at); err != nil {
		log.Error().Err(err).Stringer("order_id", id).Str("new_status", newStatus.String()).Msg("service: failed to journal status transition")
		return nil, fmt.Errorf("service: failed to journal status transition: %w", err)
	}

	log.Info().Stringer("order_id", id).Str("new_status", newStatus.String()).Msg("service: order status updated")
	return updated, nil
}

// UpdateItemQuantity replaces a line item's quantity and recalculates the
// order total.
func (s *Service) UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, quantity int) (*Order, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	updated, err := s.store.update(orderID, func(o *Order) error {
		for i := range o.Items {
			if o.Items[i].ID == itemID {
				o.Items[i].Quantity = quantity
				s.recalcTotal(o)
				return nil
			}
		}
		return fmt.Errorf("%w: %s in order %s", ErrItemNotFound, itemID, orderID)
	})
	if err != nil {
		return nil, err
	}

	return s.journalSnapshot(ctx, updated)
}

// RemoveItem deletes a line item and recalculates the order total. Removing
// an absent item is a no-op that still leaves the total consistent.
func (s *Service) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*Order, error) {
	updated, err := s.store.update(orderID, func(o *Order) error {
		items := o.Items[:0]
		for _, it := range o.Items {
			if it.ID != itemID {
				items = append(items, it)
			}
		}
		o.Items = items
		s.recalcTotal(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.journalSnapshot(ctx, updated)
}

// Select-time filtering. The result is a finite snapshot of the current
// state, not a live view.
func (s *Service) Filter(f Filter) []Order {
	search := strings.ToLower(f.Search)

	out := make([]Order, 0)
	for _, o := range s.store.List() {
		if search != "" &&
			!strings.Contains(strings.ToLower(o.OrderNumber), search) &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.OrderType != "" && o.OrderType != f.OrderType {
			continue
		}
		if !f.From.IsZero() && o.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && o.CreatedAt.After(f.To) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ElapsedMinutes reports whole minutes since the order was created. Display
// only; no transition depends on it.
func ElapsedMinutes(o *Order, now time.Time) int {
	return int(now.Sub(o.CreatedAt) / time.Minute)
}

func (s *Service) recalcTotal(o *Order) {
	o.Total = round2(o.Subtotal()*(1+s.taxRate) + o.DeliveryFee)
}

func (s *Service) journalSnapshot(ctx context.Context, o *Order) (*Order, error) {
	if err := s.journal.RecordSnapshot(ctx, o); err != nil {
		log.Error().Err(err).Stringer("order_id", o.ID).Msg("service: failed to journal order snapshot")
		return nil, fmt.Errorf("service: failed to journal order snapshot: %w", err)
	}
	return o, nil
}

// round2 keeps totals in whole cents so journaled and displayed values agree.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
