package order

import (
	"time"

	"github.com/gofrs/uuid"
)

func mustID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func at(t time.Time) *time.Time {
	return &t
}

// SeedDemo loads the demo order queue into the store. Timestamps are laid out
// relative to now so the queue looks live on startup.
func SeedDemo(s *Store, now time.Time) error {
	orders := []*Order{
		{
			ID:            mustID(),
			OrderNumber:   "ORD-2025-001",
			CustomerName:  "María García",
			CustomerPhone: "+34 666 123 456",
			CustomerEmail: "maria.garcia@email.com",
			Status:        StatusPending,
			OrderType:     TypeDelivery,
			PaymentMethod: PaymentCard,
			PaymentStatus: PaymentPaid,
			Priority:      PriorityNormal,
			Total:         24.50,
			DeliveryFee:   2.50,
			CreatedAt:     now.Add(-15 * time.Minute),
			Items: []LineItem{
				{
					ID:                  mustID(),
					Name:                "Paella Valenciana",
					Price:               18.00,
					Quantity:            1,
					Modifications:       []string{"Sin mariscos"},
					SpecialInstructions: "Poco hecha por favor",
				},
				{ID: mustID(), Name: "Sangría (1L)", Price: 8.00, Quantity: 1},
			},
			SpecialInstructions: "Llamar al llegar, portero automático no funciona",
		},
		{
			ID:            mustID(),
			OrderNumber:   "ORD-2025-002",
			CustomerName:  "Carlos Rodríguez",
			CustomerPhone: "+34 677 987 654",
			Status:        StatusPreparing,
			OrderType:     TypePickup,
			PaymentMethod: PaymentCash,
			PaymentStatus: PaymentPending,
			Priority:      PriorityHigh,
			Total:         32.75,
			CreatedAt:     now.Add(-25 * time.Minute),
			PreparingAt:   at(now.Add(-20 * time.Minute)),
			Items: []LineItem{
				{ID: mustID(), Name: "Jamón Ibérico (100g)", Price: 15.00, Quantity: 1},
				{ID: mustID(), Name: "Tortilla Española", Price: 8.50, Quantity: 2, Modifications: []string{"Extra cebolla"}},
				{ID: mustID(), Name: "Pan con Tomate", Price: 4.75, Quantity: 2},
			},
		},
		{
			ID:            mustID(),
			OrderNumber:   "ORD-2025-003",
			CustomerName:  "Ana Martínez",
			CustomerPhone: "+34 655 444 333",
			CustomerEmail: "ana.martinez@email.com",
			Status:        StatusReady,
			OrderType:     TypeDelivery,
			PaymentMethod: PaymentCard,
			PaymentStatus: PaymentPaid,
			Priority:      PriorityNormal,
			Total:         19.25,
			DeliveryFee:   2.50,
			CreatedAt:     now.Add(-45 * time.Minute),
			PreparingAt:   at(now.Add(-35 * time.Minute)),
			ReadyAt:       at(now.Add(-5 * time.Minute)),
			Items: []LineItem{
				{ID: mustID(), Name: "Gazpacho Andaluz", Price: 6.50, Quantity: 1},
				{ID: mustID(), Name: "Croquetas de Jamón", Price: 9.25, Quantity: 1},
			},
		},
		{
			ID:            mustID(),
			OrderNumber:   "ORD-2025-004",
			CustomerName:  "David López",
			CustomerPhone: "+34 688 555 777",
			Status:        StatusCompleted,
			OrderType:     TypePickup,
			PaymentMethod: PaymentCard,
			PaymentStatus: PaymentPaid,
			Priority:      PriorityNormal,
			Total:         15.80,
			CreatedAt:     now.Add(-90 * time.Minute),
			PreparingAt:   at(now.Add(-80 * time.Minute)),
			ReadyAt:       at(now.Add(-70 * time.Minute)),
			CompletedAt:   at(now.Add(-65 * time.Minute)),
			Items: []LineItem{
				{ID: mustID(), Name: "Bocadillo de Calamares", Price: 7.50, Quantity: 1, Modifications: []string{"Sin mayonesa"}},
				{ID: mustID(), Name: "Cerveza Estrella (33cl)", Price: 2.80, Quantity: 2},
				{ID: mustID(), Name: "Patatas Bravas", Price: 5.50, Quantity: 1, Modifications: []string{"Salsa aparte"}},
			},
		},
		{
			ID:            mustID(),
			OrderNumber:   "ORD-2025-005",
			CustomerName:  "Laura Fernández",
			CustomerPhone: "+34 699 111 222",
			Status:        StatusPending,
			OrderType:     TypeDelivery,
			PaymentMethod: PaymentCash,
			PaymentStatus: PaymentPending,
			Priority:      PriorityNormal,
			Total:         28.90,
			DeliveryFee:   2.50,
			CreatedAt:     now.Add(-8 * time.Minute),
			Items: []LineItem{
				{ID: mustID(), Name: "Pulpo a la Gallega", Price: 16.50, Quantity: 1},
				{ID: mustID(), Name: "Empanada Gallega", Price: 9.90, Quantity: 1},
			},
			SpecialInstructions: "Entregar en la puerta trasera del edificio",
		},
	}

	for _, o := range orders {
		if err := s.Add(o); err != nil {
			return err
		}
	}
	return nil
}
