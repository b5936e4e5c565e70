package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID           int
	Reference    string
	ShowtimeID   int
	SeatID       int
	CustomerName string
	Price        decimal.Decimal
	IssuedAt     time.Time
	Canceled     bool
}

// TicketRepository is the durable side of a booking. Create and Cancel also
// maintain the showtime's available-seat counter, and each commits as a
// single transaction: the ticket row and the counter never diverge.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetById(ctx context.Context, id int) (*Ticket, error)
	Cancel(ctx context.Context, id int) error
	GetActive(ctx context.Context) ([]Ticket, error)
}
