package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karaca-dev/movie-ticket-system/internal/domain"
)

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

// Create inserts the ticket and decrements the showtime's available-seat
// counter in the same transaction. A second active ticket for the same seat
// trips the partial unique index and surfaces as ErrDuplicateTicket.
func (p *PostgresTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO tickets (reference, showtime_id, seat_id, customer_name, price, issued_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		err := tx.QueryRow(
			ctx,
			query,
			ticket.Reference,
			ticket.ShowtimeID,
			ticket.SeatID,
			ticket.CustomerName,
			ticket.Price,
			ticket.IssuedAt).Scan(&ticket.ID)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return domain.ErrDuplicateTicket
			}
			return err
		}

		query = `
			UPDATE showtimes
			SET available_seats = available_seats - 1
			WHERE id = $1
		`

		_, err = tx.Exec(ctx, query, ticket.ShowtimeID)

		return err
	})
}

func (p *PostgresTicketRepository) GetById(ctx context.Context, id int) (*domain.Ticket, error) {
	query := `
		SELECT id, reference, showtime_id, seat_id, customer_name, price, issued_at, canceled
		FROM tickets
		WHERE id = $1
	`

	var ticket domain.Ticket

	err := p.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.Reference,
		&ticket.ShowtimeID,
		&ticket.SeatID,
		&ticket.CustomerName,
		&ticket.Price,
		&ticket.IssuedAt,
		&ticket.Canceled,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &ticket, nil
}

// Cancel marks the ticket canceled and increments the showtime's
// available-seat counter in the same transaction. A ticket that is already
// canceled is reported as ErrEditConflict rather than counted twice.
func (p *PostgresTicketRepository) Cancel(ctx context.Context, id int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE tickets
			SET canceled = TRUE
			WHERE id = $1 AND NOT canceled
			RETURNING showtime_id
		`

		var showtimeID int

		err := tx.QueryRow(ctx, query, id).Scan(&showtimeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return p.cancelConflict(ctx, tx, id)
			}
			return err
		}

		query = `
			UPDATE showtimes
			SET available_seats = available_seats + 1
			WHERE id = $1
		`

		_, err = tx.Exec(ctx, query, showtimeID)

		return err
	})
}

// cancelConflict tells apart the two reasons the guarded update matched
// nothing: the ticket does not exist, or it is already canceled.
func (p *PostgresTicketRepository) cancelConflict(ctx context.Context, tx pgx.Tx, id int) error {
	var canceled bool

	err := tx.QueryRow(ctx, `SELECT canceled FROM tickets WHERE id = $1`, id).Scan(&canceled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}
		return err
	}

	return domain.ErrEditConflict
}

func (p *PostgresTicketRepository) GetActive(ctx context.Context) ([]domain.Ticket, error) {
	query := `
		SELECT id, reference, showtime_id, seat_id, customer_name, price, issued_at, canceled
		FROM tickets
		WHERE NOT canceled
		ORDER BY id ASC
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := []domain.Ticket{}

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(
			&ticket.ID,
			&ticket.Reference,
			&ticket.ShowtimeID,
			&ticket.SeatID,
			&ticket.CustomerName,
			&ticket.Price,
			&ticket.IssuedAt,
			&ticket.Canceled,
		)

		if err != nil {
			return nil, err
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
