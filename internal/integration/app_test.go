package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/karaca-dev/movie-ticket-system/internal/app"
	"github.com/karaca-dev/movie-ticket-system/internal/booking"
	"github.com/karaca-dev/movie-ticket-system/internal/mailer"
	"github.com/karaca-dev/movie-ticket-system/internal/repository"
	appvalidator "github.com/karaca-dev/movie-ticket-system/internal/validator"
)

type TestApp struct {
	App     *app.Application
	DB      *pgxpool.Pool
	Redis   *redis.Client
	SeatMap *booking.SeatMap
	Booking *booking.Service
	Mailer  *mailer.MockMailer
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mockMailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	movieRepo := repository.NewPostgresMovieRepository(db)
	showtimeRepo := repository.NewPostgresShowtimeRepository(db)
	seatRepo := repository.NewPostgresSeatRepository(db)
	ticketRepo := repository.NewPostgresTicketRepository(db)

	seatMap := booking.NewSeatMap()
	bookingService := booking.NewService(seatMap, logger, showtimeRepo, seatRepo, ticketRepo)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mockMailer,
		movieRepo,
		showtimeRepo,
		seatRepo,
		ticketRepo,
		bookingService,
	)

	return &TestApp{
		App:     application,
		DB:      db,
		Redis:   redisClient,
		SeatMap: seatMap,
		Booking: bookingService,
		Mailer:  mockMailer,
	}, nil
}
