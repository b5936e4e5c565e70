package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Showtime struct {
	ID             int
	MovieID        int
	StartsAt       time.Time
	TheaterNumber  int
	TotalSeats     int
	AvailableSeats int
	Price          decimal.Decimal // the movie's ticket price, joined in
}

type ShowtimeRepository interface {
	GetById(ctx context.Context, id int) (*Showtime, error)
	GetByMovieId(ctx context.Context, movieID int) ([]Showtime, error)
	GetAll(ctx context.Context) ([]Showtime, error)
}
