package mocks

import (
	"context"

	"github.com/karaca-dev/movie-ticket-system/internal/domain"
)

// MockTicketRepo uses function fields so tests can inject transactional
// behavior (counter bookkeeping, injected failures) and call it from many
// goroutines at once.
type MockTicketRepo struct {
	domain.TicketRepository
	CreateFunc    func(ctx context.Context, ticket *domain.Ticket) error
	GetByIdFunc   func(ctx context.Context, id int) (*domain.Ticket, error)
	CancelFunc    func(ctx context.Context, id int) error
	GetActiveFunc func(ctx context.Context) ([]domain.Ticket, error)
}

func (m *MockTicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	return m.CreateFunc(ctx, ticket)
}

func (m *MockTicketRepo) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockTicketRepo) Cancel(ctx context.Context, id int) error {
	return m.CancelFunc(ctx, id)
}

func (m *MockTicketRepo) GetActive(ctx context.Context) ([]domain.Ticket, error) {
	return m.GetActiveFunc(ctx)
}
