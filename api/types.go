// Package api holds the request and response types of the HTTP API.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type MovieSummary struct {
	Id              int             `json:"id"`
	Title           string          `json:"title"`
	Genre           string          `json:"genre"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type Showtime struct {
	Id             int       `json:"id"`
	StartsAt       time.Time `json:"startsAt"`
	TheaterNumber  int       `json:"theaterNumber"`
	TotalSeats     int       `json:"totalSeats"`
	AvailableSeats int       `json:"availableSeats"`
}

type MovieDetailResponse struct {
	Id              int             `json:"id"`
	Title           string          `json:"title"`
	Genre           string          `json:"genre"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	Showtimes       []Showtime      `json:"showtimes"`
}

type Seat struct {
	Id        int    `json:"id"`
	Row       string `json:"row"`
	Number    int    `json:"number"`
	Available bool   `json:"available"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ShowtimeId int       `json:"showtimeId"`
	SeatRows   []SeatRow `json:"seatRows"`
}

type CreateTicketRequest struct {
	SeatId        int    `json:"seatId" validate:"required,gt=0"`
	CustomerName  string `json:"customerName" validate:"required,customer_name"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
}

type TicketResponse struct {
	Id           int             `json:"id"`
	Reference    string          `json:"reference"`
	ShowtimeId   int             `json:"showtimeId"`
	SeatId       int             `json:"seatId"`
	CustomerName string          `json:"customerName"`
	Price        decimal.Decimal `json:"price"`
	IssuedAt     time.Time       `json:"issuedAt"`
	Canceled     bool            `json:"canceled"`
}
