package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/karaca-dev/movie-ticket-system/api"
	"github.com/karaca-dev/movie-ticket-system/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	catalogCacheTTL = time.Minute
)

// The catalog is read-only reference data, so responses are cached in Redis
// for a short while. Seat availability never goes through this cache.
func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	pagination := domain.Pagination{
		Page:     app.readQueryInt(r, "page", DefaultPage),
		PageSize: app.readQueryInt(r, "pageSize", DefaultPageSize),
	}

	if pagination.Page < 1 || pagination.PageSize < 1 || pagination.PageSize > MaxPageSize {
		app.badRequestResponse(w, r, fmt.Errorf("page must be positive and pageSize between 1 and %d", MaxPageSize))
		return
	}

	cacheKey := fmt.Sprintf("movies:%d:%d", pagination.Page, pagination.PageSize)

	var resp api.MovieListResponse
	if app.cacheGet(r, cacheKey, &resp) {
		app.writeJSON(w, http.StatusOK, resp, nil)
		return
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.MovieSummary, len(movies))
	for i, movie := range movies {
		summaries[i] = api.MovieSummary{
			Id:              movie.ID,
			Title:           movie.Title,
			Genre:           movie.Genre,
			DurationMinutes: movie.DurationMinutes,
			Price:           movie.Price,
		}
	}

	resp = api.MovieListResponse{
		Movies:   summaries,
		Metadata: toApiMetadata(metadata),
	}

	app.cacheSet(r, cacheKey, resp)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cacheKey := fmt.Sprintf("movie:%d", movieID)

	var resp api.MovieDetailResponse
	if app.cacheGet(r, cacheKey, &resp) {
		app.writeJSON(w, http.StatusOK, resp, nil)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	showtimes, err := app.showtimeRepo.GetByMovieId(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp = api.MovieDetailResponse{
		Id:              movie.ID,
		Title:           movie.Title,
		Genre:           movie.Genre,
		DurationMinutes: movie.DurationMinutes,
		Price:           movie.Price,
		Showtimes:       toApiShowtimes(showtimes),
	}

	app.cacheSet(r, cacheKey, resp)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// cacheGet reports whether the key was present and decoded into dst. Cache
// failures are logged and treated as misses.
func (app *Application) cacheGet(r *http.Request, key string, dst any) bool {
	if app.redis == nil {
		return false
	}

	data, err := app.redis.Get(r.Context(), key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && !errors.Is(err, context.Canceled) {
			app.contextGetLogger(r).Warn("catalog cache read failed", "key", key, "error", err)
		}
		return false
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		app.contextGetLogger(r).Warn("catalog cache entry corrupt", "key", key, "error", err)
		return false
	}

	return true
}

func (app *Application) cacheSet(r *http.Request, key string, value any) {
	if app.redis == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		app.contextGetLogger(r).Warn("catalog cache encode failed", "key", key, "error", err)
		return
	}

	err = app.redis.Set(r.Context(), key, data, catalogCacheTTL).Err()
	if err != nil {
		app.contextGetLogger(r).Warn("catalog cache write failed", "key", key, "error", err)
	}
}

func toApiShowtimes(showtimes []domain.Showtime) []api.Showtime {
	result := make([]api.Showtime, len(showtimes))
	for i, showtime := range showtimes {
		result[i] = api.Showtime{
			Id:             showtime.ID,
			StartsAt:       showtime.StartsAt,
			TheaterNumber:  showtime.TheaterNumber,
			TotalSeats:     showtime.TotalSeats,
			AvailableSeats: showtime.AvailableSeats,
		}
	}
	return result
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
