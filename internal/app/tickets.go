package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/karaca-dev/movie-ticket-system/api"
	"github.com/karaca-dev/movie-ticket-system/internal/booking"
	"github.com/karaca-dev/movie-ticket-system/internal/domain"
)

const (
	ErrSeatTaken          = "The selected seat is already booked for this showtime"
	ErrTicketAlreadyVoid  = "The ticket has already been canceled"
	ErrTicketMissing      = "No ticket exists with this ID"
	ticketConfirmationTpl = "ticket_confirmation.tmpl"
)

func (app *Application) CreateTicket(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req api.CreateTicketRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ticket, err := app.bookingService.Book(r.Context(), showtimeID, req.SeatId, req.CustomerName)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSeatUnavailable):
			app.conflictResponse(w, r, ErrSeatTaken)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if req.CustomerEmail != "" {
		app.sendTicketConfirmation(req.CustomerEmail, ticket)
	}

	err = app.writeJSON(w, http.StatusCreated, toTicketResponse(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTicketById(w http.ResponseWriter, r *http.Request) {
	ticketID, err := app.readIDParam(r, "ticketId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ticket, err := app.ticketRepo.GetById(r.Context(), ticketID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toTicketResponse(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := app.readIDParam(r, "ticketId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.bookingService.Cancel(r.Context(), ticketID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrTicketNotFound):
			app.errorResponse(w, r, http.StatusNotFound, ErrTicketMissing)
		case errors.Is(err, booking.ErrAlreadyCanceled):
			app.conflictResponse(w, r, ErrTicketAlreadyVoid)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// sendTicketConfirmation emails the booking details on a background goroutine.
// The booking itself already succeeded, so a mail failure is only logged.
func (app *Application) sendTicketConfirmation(recipient string, ticket *domain.Ticket) {
	app.background(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		showtime, err := app.showtimeRepo.GetById(ctx, ticket.ShowtimeID)
		if err != nil {
			app.logger.Error("failed to load showtime for confirmation email",
				"ticket_id", ticket.ID, "error", err)
			return
		}

		movie, err := app.movieRepo.GetById(ctx, showtime.MovieID)
		if err != nil {
			app.logger.Error("failed to load movie for confirmation email",
				"ticket_id", ticket.ID, "error", err)
			return
		}

		seat, err := app.seatRepo.GetById(ctx, ticket.SeatID)
		if err != nil {
			app.logger.Error("failed to load seat for confirmation email",
				"ticket_id", ticket.ID, "error", err)
			return
		}

		data := map[string]any{
			"CustomerName":  ticket.CustomerName,
			"MovieTitle":    movie.Title,
			"StartsAt":      showtime.StartsAt.Format(time.RFC1123),
			"TheaterNumber": showtime.TheaterNumber,
			"SeatRow":       seat.Row,
			"SeatNumber":    seat.Number,
			"Price":         ticket.Price.StringFixed(2),
			"Reference":     ticket.Reference,
		}

		err = app.mailer.Send(recipient, ticketConfirmationTpl, data)
		if err != nil {
			app.logger.Error("failed to send confirmation email",
				"ticket_id", ticket.ID, "error", err)
		}
	})
}

func toTicketResponse(ticket *domain.Ticket) api.TicketResponse {
	return api.TicketResponse{
		Id:           ticket.ID,
		Reference:    ticket.Reference,
		ShowtimeId:   ticket.ShowtimeID,
		SeatId:       ticket.SeatID,
		CustomerName: ticket.CustomerName,
		Price:        ticket.Price,
		IssuedAt:     ticket.IssuedAt,
		Canceled:     ticket.Canceled,
	}
}
