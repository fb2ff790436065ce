package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shareit/internal/config"
	"shareit/internal/domain"
	"shareit/internal/export"

	"github.com/rs/zerolog"
)

// Server — серверный ярус: хранение и бизнес-правила за REST/JSON.
// Идентичность приходит заголовком X-Sharer-User-Id и принимается как
// аутентифицированная, вся валидация формы запроса живет на шлюзе.
type Server struct {
	cfg      config.ServerConfig
	bookings domain.BookingService
	items    domain.ItemService
	users    domain.UserService
	requests domain.RequestService
	allRepo  domain.BookingRepository
	reporter *export.Reporter
	logger   *zerolog.Logger
	server   *http.Server
}

func NewServer(
	cfg config.ServerConfig,
	bookings domain.BookingService,
	items domain.ItemService,
	users domain.UserService,
	requests domain.RequestService,
	allRepo domain.BookingRepository,
	reporter *export.Reporter,
	logger *zerolog.Logger,
) *Server {
	s := &Server{
		cfg:      cfg,
		bookings: bookings,
		items:    items,
		users:    users,
		requests: requests,
		allRepo:  allRepo,
		reporter: reporter,
		logger:   logger,
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /bookings", s.handleCreateBooking)
	mux.HandleFunc("PATCH /bookings/{id}", s.handleApproveBooking)
	mux.HandleFunc("GET /bookings/owner", s.handleOwnerBookings)
	mux.HandleFunc("GET /bookings/{id}", s.handleGetBooking)
	mux.HandleFunc("GET /bookings", s.handleBookerBookings)

	mux.HandleFunc("POST /items", s.handleCreateItem)
	mux.HandleFunc("PATCH /items/{id}", s.handleUpdateItem)
	mux.HandleFunc("GET /items/search", s.handleSearchItems)
	mux.HandleFunc("GET /items/{id}", s.handleGetItem)
	mux.HandleFunc("GET /items", s.handleOwnItems)
	mux.HandleFunc("POST /items/{id}/comment", s.handleCreateComment)

	mux.HandleFunc("POST /users", s.handleCreateUser)
	mux.HandleFunc("GET /users/{id}", s.handleGetUser)
	mux.HandleFunc("PATCH /users/{id}", s.handleUpdateUser)
	mux.HandleFunc("DELETE /users/{id}", s.handleDeleteUser)
	mux.HandleFunc("GET /users", s.handleGetAllUsers)

	mux.HandleFunc("POST /requests", s.handleCreateRequest)
	mux.HandleFunc("GET /requests/all", s.handleAllRequests)
	mux.HandleFunc("GET /requests/{id}", s.handleGetRequest)
	mux.HandleFunc("GET /requests", s.handleOwnRequests)

	mux.HandleFunc("GET /admin/bookings/export", s.handleExportBookings)

	return s.loggingMiddleware(mux)
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("server tier listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
