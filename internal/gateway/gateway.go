package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"shareit/internal/config"
	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// Gateway — внешний ярус: проверяет форму запроса, ограничивает частоту
// и пробрасывает запрос на серверный ярус, отдавая его статус и тело
// без изменений.
type Gateway struct {
	cfg     config.GatewayConfig
	client  *Client
	limiter domain.RateLimiter
	buckets *clientBuckets
	logger  *zerolog.Logger
	server  *http.Server
}

func NewGateway(cfg config.GatewayConfig, client *Client, limiter domain.RateLimiter, logger *zerolog.Logger) *Gateway {
	g := &Gateway{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
		buckets: newClientBuckets(cfg.RateLimit),
		logger:  logger,
	}

	g.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           g.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return g
}

func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /bookings", g.identified(g.handleCreateBooking))
	mux.HandleFunc("PATCH /bookings/{id}", g.identified(g.handleApproveBooking))
	mux.HandleFunc("GET /bookings/owner", g.identified(g.handleBookingList))
	mux.HandleFunc("GET /bookings/{id}", g.identified(g.forward))
	mux.HandleFunc("GET /bookings", g.identified(g.handleBookingList))

	mux.HandleFunc("POST /items", g.identified(g.handleCreateItem))
	mux.HandleFunc("PATCH /items/{id}", g.identified(g.forward))
	mux.HandleFunc("GET /items/search", g.handleSearch)
	mux.HandleFunc("GET /items/{id}", g.identified(g.forward))
	mux.HandleFunc("GET /items", g.identified(g.handlePagedList))
	mux.HandleFunc("POST /items/{id}/comment", g.identified(g.handleCreateComment))

	mux.HandleFunc("POST /users", g.handleCreateUser)
	mux.HandleFunc("GET /users/{id}", g.forward)
	mux.HandleFunc("PATCH /users/{id}", g.handleUpdateUser)
	mux.HandleFunc("DELETE /users/{id}", g.forward)
	mux.HandleFunc("GET /users", g.forward)

	mux.HandleFunc("POST /requests", g.identified(g.handleCreateRequest))
	mux.HandleFunc("GET /requests/all", g.identified(g.handlePagedList))
	mux.HandleFunc("GET /requests/{id}", g.identified(g.forward))
	mux.HandleFunc("GET /requests", g.identified(g.forward))

	return g.requestIDMiddleware(g.loggingMiddleware(mux))
}

func (g *Gateway) Start() error {
	g.logger.Info().Str("addr", g.server.Addr).Msg("gateway tier listening")
	if err := g.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (g *Gateway) Shutdown(ctx context.Context) error {
	return g.server.Shutdown(ctx)
}

// identified требует числовой заголовок идентичности и прогоняет запрос
// через оба лимитера до обработчика.
func (g *Gateway) identified(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(models.HeaderUserID)
		if raw == "" {
			writeError(w, http.StatusBadRequest, "missing "+models.HeaderUserID+" header")
			return
		}
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid "+models.HeaderUserID+" header")
			return
		}

		if !g.buckets.allow(raw) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		rl := g.cfg.RateLimit
		if g.limiter != nil && rl.Requests > 0 && rl.Window > 0 {
			allowed, err := g.limiter.CheckRateLimit(r.Context(), userID, rl.Requests, time.Duration(rl.Window)*time.Second)
			if err != nil {
				g.logger.Error().Err(err).Int64("user_id", userID).Msg("rate limit check failed")
			} else if !allowed {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
		}

		next(w, r)
	}
}

func (g *Gateway) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if err := validateBookingBody(body, time.Now()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g.forwardBody(w, r, body)
}

func (g *Gateway) handleApproveBooking(w http.ResponseWriter, r *http.Request) {
	approved := r.URL.Query().Get("approved")
	if approved != "true" && approved != "false" {
		writeError(w, http.StatusBadRequest, "approved query parameter is required")
		return
	}
	g.forward(w, r)
}

func (g *Gateway) handleBookingList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := validateState(q.Get("state")); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validatePaging(q.Get("from"), q.Get("size")); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g.forward(w, r)
}

func (g *Gateway) handlePagedList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := validatePaging(q.Get("from"), q.Get("size")); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g.forward(w, r)
}

func (g *Gateway) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if err := validatePaging(q.Get("from"), q.Get("size")); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g.forward(w, r)
}

func (g *Gateway) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	g.validatedForward(w, r, validateItemCreate)
}

func (g *Gateway) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	g.validatedForward(w, r, validateCommentBody)
}

func (g *Gateway) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	g.validatedForward(w, r, validateUserCreate)
}

func (g *Gateway) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	g.validatedForward(w, r, validateUserPatch)
}

func (g *Gateway) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	g.validatedForward(w, r, validateRequestBody)
}

func (g *Gateway) validatedForward(w http.ResponseWriter, r *http.Request, validate func([]byte) error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	if err := validate(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g.forwardBody(w, r, body)
}

func (g *Gateway) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}
	g.forwardBody(w, r, body)
}

func (g *Gateway) forwardBody(w http.ResponseWriter, r *http.Request, body []byte) {
	pathAndQuery := r.URL.Path
	if r.URL.RawQuery != "" {
		pathAndQuery += "?" + r.URL.RawQuery
	}

	resp, err := g.client.Forward(r.Context(), r.Method, pathAndQuery, r.Header.Get(models.HeaderUserID), body)
	if err != nil {
		g.logger.Error().Err(err).Str("path", r.URL.Path).Msg("forward error")
		writeError(w, http.StatusBadGateway, "server tier unavailable")
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
