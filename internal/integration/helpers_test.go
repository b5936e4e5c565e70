package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"issuedAt":  {},
	"reference": {},
	"createdAt": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func seedCatalog(t testing.TB, app *TestApp) (showtimeID int, seatIDs []int) {
	t.Helper()

	ctx := context.Background()

	var movieID int
	err := app.DB.QueryRow(ctx, `
		INSERT INTO movies (title, genre, duration_minutes, price)
		VALUES ('Heat', 'Crime', 170, 12.50)
		RETURNING id
	`).Scan(&movieID)
	require.NoError(t, err)

	err = app.DB.QueryRow(ctx, `
		INSERT INTO showtimes (movie_id, starts_at, theater_number, total_seats, available_seats)
		VALUES ($1, NOW() + INTERVAL '1 day', 1, 4, 4)
		RETURNING id
	`, movieID).Scan(&showtimeID)
	require.NoError(t, err)

	rows := [][]any{
		{showtimeID, "A", 1},
		{showtimeID, "A", 2},
		{showtimeID, "B", 1},
		{showtimeID, "B", 2},
	}

	for _, row := range rows {
		var seatID int
		err = app.DB.QueryRow(ctx, `
			INSERT INTO seats (showtime_id, seat_row, seat_number)
			VALUES ($1, $2, $3)
			RETURNING id
		`, row...).Scan(&seatID)
		require.NoError(t, err)

		seatIDs = append(seatIDs, seatID)
	}

	require.NoError(t, app.Booking.Reconstruct(ctx))

	return showtimeID, seatIDs
}

func truncateAll(t testing.TB, app *TestApp) {
	t.Helper()

	// Sequences are deliberately not restarted: the in-process seat map keeps
	// slots from earlier tests, and reused IDs would collide with them.
	_, err := app.DB.Exec(context.Background(),
		`TRUNCATE tickets, seats, showtimes, movies CASCADE`)
	require.NoError(t, err)
}
