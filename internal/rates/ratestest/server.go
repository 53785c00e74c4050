// Package ratestest provides an in-process stand-in for the exchange rate API.
package ratestest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const basePath = "/v4/latest"

type Payload struct {
	Base            string             `json:"base"`
	Date            string             `json:"date"`
	TimeLastUpdated int64              `json:"time_last_updated"`
	Rates           map[string]float64 `json:"rates"`
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	payloads map[string]Payload
	status   int
	rawBody  string
	delay    time.Duration
	requests []string
}

func NewServer() *Server {
	s := &Server{payloads: make(map[string]Payload)}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Route(basePath, func(r chi.Router) {
		r.Get("/{base}", s.latest)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL is the value to hand to rates.NewExchangeRateAPIClient.
func (s *Server) BaseURL() string {
	return s.URL + basePath
}

func (s *Server) SetRates(base string, rates map[string]float64, updated time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[strings.ToUpper(base)] = Payload{
		Base:            strings.ToUpper(base),
		Date:            updated.UTC().Format("2006-01-02"),
		TimeLastUpdated: updated.Unix(),
		Rates:           rates,
	}
}

// FailWith makes every request answer with status.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// RespondRaw makes every request answer 200 with body verbatim.
func (s *Server) RespondRaw(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawBody = body
}

func (s *Server) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) RequestCount() int {
	return len(s.Requests())
}

func (s *Server) latest(w http.ResponseWriter, r *http.Request) {
	base := chi.URLParam(r, "base")

	s.mu.Lock()
	s.requests = append(s.requests, base)
	status, rawBody, delay := s.status, s.rawBody, s.delay
	payload, ok := s.payloads[base]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	switch {
	case status != 0:
		w.WriteHeader(status)
	case rawBody != "":
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(rawBody))
	case !ok:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"result": "error", "error-type": "unsupported-code"})
	default:
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}
}
