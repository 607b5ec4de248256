// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Kallyan98/Hotel-Recommender-System/internal/app"
	"github.com/Kallyan98/Hotel-Recommender-System/internal/domain"
)

type Handlers struct{ R *app.RecommendationService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/recommendations", h.recommend)
	s.mux.Get("/v1/offers", h.listOffers)
	s.mux.Get("/v1/offers/{name}/fare", h.offerFare)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON body")
	}
}

type recommendRequest struct {
	Request string `json:"request"`
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected JSON with a request field")
		return
	}
	if strings.TrimSpace(req.Request) == "" {
		writeProblem(w, http.StatusBadRequest, "Empty request", "request text must not be empty")
		return
	}

	rec, err := h.R.Recommend(r.Context(), req.Request)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Recommendation failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handlers) listOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.R.Offers(r.Context())
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Catalog unavailable", err.Error())
		return
	}

	etag, body := calcETagAndBody(offers)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listOffers body")
	}
}

// offerFare exposes the fare calculator standalone:
// GET /v1/offers/{name}/fare?check_in=2025-06-06&check_out=2025-06-08&adults=2&children=1
func (h *Handlers) offerFare(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	q := r.URL.Query()

	checkIn, checkOut := q.Get("check_in"), q.Get("check_out")
	if checkIn == "" || checkOut == "" {
		writeProblem(w, http.StatusBadRequest, "Missing dates", "check_in and check_out are required")
		return
	}

	adults, children := 1, 0
	if v := q.Get("adults"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid adults", "adults must be a non-negative integer")
			return
		}
		adults = n
	}
	if v := q.Get("children"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeProblem(w, http.StatusBadRequest, "Invalid children", "children must be a non-negative integer")
			return
		}
		children = n
	}

	fare, err := h.R.Fare(r.Context(), name, checkIn, checkOut, adults, children)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "offer not found")
		return
	case errors.Is(err, domain.ErrInvalidDate):
		writeProblem(w, http.StatusBadRequest, "Invalid date", err.Error())
		return
	case err != nil:
		writeProblem(w, http.StatusInternalServerError, "Fare failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fare)
}
