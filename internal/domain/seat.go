package domain

import "context"

type Seat struct {
	ID         int
	ShowtimeID int
	Row        string
	Number     int
}

type SeatRepository interface {
	GetById(ctx context.Context, id int) (*Seat, error)
	GetSeatsByShowtime(ctx context.Context, showtimeID int) ([]Seat, error)
}
