package app

import (
	"errors"
	"net/http"

	"github.com/karaca-dev/movie-ticket-system/api"
	"github.com/karaca-dev/movie-ticket-system/internal/booking"
	"github.com/karaca-dev/movie-ticket-system/internal/domain"
)

func (app *Application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seats, err := app.bookingService.SeatStatuses(r.Context(), showtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.contextGetLogger(r).Warn("seat map not found for showtime", "showtime_id", showtimeID)
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SeatMapResponse{
		ShowtimeId: showtimeID,
		SeatRows:   toSeatRows(seats),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatRows(seats []booking.SeatView) []api.SeatRow {
	// Seats are pre-sorted by row and number, so one pass groups them.
	var seatRows []api.SeatRow
	currentRow := api.SeatRow{Row: seats[0].Row}

	for _, v := range seats {
		if v.Row != currentRow.Row {
			seatRows = append(seatRows, currentRow)
			currentRow = api.SeatRow{Row: v.Row}
		}

		currentRow.Seats = append(currentRow.Seats, api.Seat{
			Id:        v.SeatID,
			Row:       v.Row,
			Number:    v.Number,
			Available: !v.Held,
		})
	}

	seatRows = append(seatRows, currentRow)

	return seatRows
}
