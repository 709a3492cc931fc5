package http

import (
	"currency-converter/convert"
	"currency-converter/domain"
	"currency-converter/format"
	"currency-converter/input"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"net/http"
	"time"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service   convert.Service
	Formatter *format.Formatter
	Logger    log.Logger

	router chi.Router
}

// Options optional Server settings
type Options struct {
	Logger         log.Logger
	AllowedOrigins []string
}

// NewServer constructs a Server with its routes
func NewServer(s convert.Service, f *format.Formatter, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	server := &Server{
		Service:   s,
		Formatter: f,
		Logger:    logger,
		router:    chi.NewRouter(),
	}
	server.routes(origins)
	return server
}

func (s *Server) routes(origins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.logRequests)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.health())
		r.Get("/currencies", s.currencies())
		r.Post("/convert", s.convert())
	})
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// logRequests logs one line per request
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		defer func(begin time.Time) {
			level.Debug(s.Logger).Log(
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", middleware.GetReqID(r.Context()),
				"took", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients.
	// Amount is the raw text the user typed.
	type request struct {
		FromCurrency domain.Currency `json:"fromCurrency"`
		ToCurrency   domain.Currency `json:"toCurrency"`
		Amount       string          `json:"amount"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		From      domain.Currency `json:"from"`
		To        domain.Currency `json:"to"`
		Original  domain.Amount   `json:"original"`
		Amount    domain.Amount   `json:"amount"`
		Rate      domain.Rate     `json:"rate"`
		Formatted string          `json:"formatted"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			s.respondError(rw, http.StatusBadRequest, "invalid json")
			return
		}

		// same rule as the amount field of an interactive client
		if !input.Accept(request.Amount) {
			s.respondError(rw, http.StatusUnprocessableEntity, "invalid amount")
			return
		}

		result, err := s.Service.Convert(r.Context(), request.Amount, request.FromCurrency, request.ToCurrency)
		switch {
		case errors.Is(err, convert.ErrEmptyAmount):
			s.respondError(rw, http.StatusUnprocessableEntity, "empty amount")
			return
		case errors.Is(err, convert.ErrInvalidAmount):
			s.respondError(rw, http.StatusUnprocessableEntity, "invalid amount")
			return
		case errors.Is(err, convert.ErrUnknownCurrency):
			s.respondError(rw, http.StatusBadRequest, "unknown currency")
			return
		case err != nil:
			level.Error(s.Logger).Log("msg", "failed conversion", "err", err)
			s.respondError(rw, http.StatusInternalServerError, "failed conversion")
			return
		}

		s.respondJSON(rw, http.StatusOK, response{
			From:      result.From,
			To:        result.To,
			Original:  result.Original,
			Amount:    result.Amount,
			Rate:      result.Rate,
			Formatted: s.Formatter.Money(result.Amount, result.To),
		})
	}
}

// currencies produces HTTP handler listing the rate table
func (s *Server) currencies() http.HandlerFunc {
	type currency struct {
		Code domain.Currency `json:"code"`
		Rate domain.Rate     `json:"rate"`
	}

	type response struct {
		Base       domain.Currency `json:"base"`
		Currencies []currency      `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		entries := s.Service.Currencies(r.Context())
		out := response{
			Base:       s.Service.Base(r.Context()),
			Currencies: make([]currency, 0, len(entries)),
		}
		for _, e := range entries {
			out.Currencies = append(out.Currencies, currency{Code: e.Currency, Rate: e.Rate})
		}
		s.respondJSON(rw, http.StatusOK, out)
	}
}

func (s *Server) health() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		s.respondJSON(rw, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// respondJSON writes v with status. The status line is already sent when encoding fails, so the failure is only logged.
func (s *Server) respondJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		level.Error(s.Logger).Log("msg", "failed json encoding", "status", status, "err", err)
	}
}

func (s *Server) respondError(rw http.ResponseWriter, status int, msg string) {
	s.respondJSON(rw, status, map[string]string{"error": msg})
}
