package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/karaca-dev/movie-ticket-system/internal/domain"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `
		SELECT s.id, s.movie_id, s.starts_at, s.theater_number, s.total_seats, s.available_seats, m.price
		FROM showtimes s
		INNER JOIN movies m ON m.id = s.movie_id
		WHERE s.id = $1
	`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.StartsAt,
		&showtime.TheaterNumber,
		&showtime.TotalSeats,
		&showtime.AvailableSeats,
		&showtime.Price,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetByMovieId(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	query := `
		SELECT s.id, s.movie_id, s.starts_at, s.theater_number, s.total_seats, s.available_seats, m.price
		FROM showtimes s
		INNER JOIN movies m ON m.id = s.movie_id
		WHERE s.movie_id = $1
		ORDER BY s.starts_at ASC
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShowtimes(rows)
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context) ([]domain.Showtime, error) {
	query := `
		SELECT s.id, s.movie_id, s.starts_at, s.theater_number, s.total_seats, s.available_seats, m.price
		FROM showtimes s
		INNER JOIN movies m ON m.id = s.movie_id
		ORDER BY s.id ASC
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShowtimes(rows)
}

func scanShowtimes(rows pgx.Rows) ([]domain.Showtime, error) {
	showtimes := []domain.Showtime{}

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.StartsAt,
			&showtime.TheaterNumber,
			&showtime.TotalSeats,
			&showtime.AvailableSeats,
			&showtime.Price,
		)

		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, showtime)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}
