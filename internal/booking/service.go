package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/karaca-dev/movie-ticket-system/internal/domain"
)

// Service drives bookings and cancellations as two-phase operations: claim
// the seat in the SeatMap first, then persist, and undo the in-memory change
// if persistence fails. The SeatMap is never left holding a seat that has no
// active ticket behind it, except for the one unrecoverable case Cancel
// documents.
type Service struct {
	seatMap      *SeatMap
	logger       *slog.Logger
	showtimeRepo domain.ShowtimeRepository
	seatRepo     domain.SeatRepository
	ticketRepo   domain.TicketRepository
}

func NewService(
	seatMap *SeatMap,
	logger *slog.Logger,
	showtimeRepo domain.ShowtimeRepository,
	seatRepo domain.SeatRepository,
	ticketRepo domain.TicketRepository) *Service {

	return &Service{
		seatMap:      seatMap,
		logger:       logger,
		showtimeRepo: showtimeRepo,
		seatRepo:     seatRepo,
		ticketRepo:   ticketRepo,
	}
}

// Book claims the seat in memory, then persists a ticket and decrements the
// showtime's available-seat counter in one transaction. Any failure after the
// in-memory claim releases the seat again before the error is returned.
//
// Seat contention is resolved before any I/O happens: a losing caller gets
// ErrSeatUnavailable without touching the database.
func (s *Service) Book(ctx context.Context, showtimeID, seatID int, customerName string) (*domain.Ticket, error) {
	if !s.seatMap.Reserve(showtimeID, seatID) {
		return nil, ErrSeatUnavailable
	}

	showtime, err := s.showtimeRepo.GetById(ctx, showtimeID)
	if err != nil {
		return nil, s.abortBook(showtimeID, seatID, "showtime lookup", err)
	}

	if _, err := s.seatRepo.GetById(ctx, seatID); err != nil {
		return nil, s.abortBook(showtimeID, seatID, "seat lookup", err)
	}

	ticket := &domain.Ticket{
		Reference:    uuid.NewString(),
		ShowtimeID:   showtimeID,
		SeatID:       seatID,
		CustomerName: customerName,
		Price:        showtime.Price,
		IssuedAt:     time.Now().UTC(),
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, s.abortBook(showtimeID, seatID, "ticket create", err)
	}

	return ticket, nil
}

// abortBook releases the in-memory claim and translates the underlying
// failure. A missing record or a duplicate active ticket means the seat map
// and the database have diverged; anything else is a plain storage failure
// and is propagated wrapped.
func (s *Service) abortBook(showtimeID, seatID int, stage string, err error) error {
	if !s.seatMap.Release(showtimeID, seatID) {
		// The claim we just took is gone. This cannot happen through the
		// Service's own operations.
		s.logger.Error("seat claim vanished while rolling back a booking",
			"showtime_id", showtimeID, "seat_id", seatID, "stage", stage)
		return ErrUnrecoverableState
	}

	if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrDuplicateTicket) {
		s.logger.Error("seat map disagrees with ticket records, booking refused",
			"showtime_id", showtimeID, "seat_id", seatID, "stage", stage, "error", err)
		return ErrInconsistentState
	}

	return fmt.Errorf("%s: %w", stage, err)
}

// Cancel releases the ticket's seat in memory, then marks the ticket canceled
// and increments the available-seat counter in one transaction. If the
// transaction fails, the seat is re-claimed so the map still matches the
// active ticket. If that re-claim loses to a concurrent booking, the state
// cannot be repaired here and ErrUnrecoverableState is returned instead.
func (s *Service) Cancel(ctx context.Context, ticketID int) error {
	ticket, err := s.ticketRepo.GetById(ctx, ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return fmt.Errorf("ticket lookup: %w", err)
	}

	if ticket.Canceled {
		return ErrAlreadyCanceled
	}

	if !s.seatMap.Release(ticket.ShowtimeID, ticket.SeatID) {
		// An active ticket exists but the map says the seat is free. Mutating
		// the database now could hand the seat out twice, so refuse instead.
		s.logger.Error("active ticket's seat was not held, cancellation refused",
			"ticket_id", ticket.ID, "showtime_id", ticket.ShowtimeID, "seat_id", ticket.SeatID)
		return ErrInconsistentState
	}

	if err := s.ticketRepo.Cancel(ctx, ticket.ID); err != nil {
		if !s.seatMap.Reserve(ticket.ShowtimeID, ticket.SeatID) {
			s.logger.Error("could not re-claim seat after failed cancellation, seat may double-book",
				"ticket_id", ticket.ID, "showtime_id", ticket.ShowtimeID, "seat_id", ticket.SeatID,
				"error", err)
			return ErrUnrecoverableState
		}
		return fmt.Errorf("ticket cancel: %w", err)
	}

	return nil
}

// Reconstruct seeds the SeatMap from the database: every known seat starts
// free, then every active ticket claims its seat. It must finish before the
// service takes any traffic, and running it again without intervening
// bookings leaves the map unchanged.
func (s *Service) Reconstruct(ctx context.Context) error {
	showtimes, err := s.showtimeRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("listing showtimes: %w", err)
	}

	for _, showtime := range showtimes {
		seats, err := s.seatRepo.GetSeatsByShowtime(ctx, showtime.ID)
		if err != nil {
			return fmt.Errorf("listing seats of showtime %d: %w", showtime.ID, err)
		}
		for _, seat := range seats {
			s.seatMap.Register(showtime.ID, seat.ID)
		}
	}

	tickets, err := s.ticketRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("listing active tickets: %w", err)
	}

	for _, ticket := range tickets {
		if !s.seatMap.Reserve(ticket.ShowtimeID, ticket.SeatID) {
			// Already held: either a repeat run, or two active tickets share
			// a seat in the database. The partial unique index prevents the
			// latter, so just note it.
			s.logger.Warn("seat already held during reconstruction",
				"ticket_id", ticket.ID, "showtime_id", ticket.ShowtimeID, "seat_id", ticket.SeatID)
		}
	}

	s.logger.Info("seat map reconstructed",
		"showtimes", len(showtimes), "active_tickets", len(tickets))

	return nil
}

// SeatView combines a seat's durable attributes with its live held flag.
type SeatView struct {
	SeatID int
	Row    string
	Number int
	Held   bool
}

// SeatStatuses returns the showtime's seats with their live held flags, for
// display. The flags come from the SeatMap, not the database.
func (s *Service) SeatStatuses(ctx context.Context, showtimeID int) ([]SeatView, error) {
	seats, err := s.seatRepo.GetSeatsByShowtime(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("listing seats of showtime %d: %w", showtimeID, err)
	}

	if len(seats) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	held := make(map[int]bool)
	for _, status := range s.seatMap.Snapshot(showtimeID) {
		held[status.SeatID] = status.Held
	}

	views := make([]SeatView, 0, len(seats))
	for _, seat := range seats {
		views = append(views, SeatView{
			SeatID: seat.ID,
			Row:    seat.Row,
			Number: seat.Number,
			Held:   held[seat.ID],
		})
	}

	return views, nil
}
