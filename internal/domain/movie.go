package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Movie struct {
	ID              int
	Title           string
	Genre           string
	DurationMinutes int
	Price           decimal.Decimal
	CreatedAt       time.Time
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}

type MovieRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}
