package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/afterclass/courses-api/internal/courses"
	"github.com/afterclass/courses-api/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

// CourseStore is what the handlers need from the catalog repository.
type CourseStore interface {
	List(ctx context.Context) ([]courses.Course, error)
	Search(ctx context.Context, q courses.SearchQuery) ([]courses.Course, error)
}

type CoursesHandler struct {
	Store CourseStore
	Redis *redis.Client // optional read-through cache for the full listing
}

func (h *CoursesHandler) Register(r *chi.Mux) {
	r.Get("/collections/courses", h.list)
	r.Get("/collections/courses/search", h.search)
}

func (h *CoursesHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, redisx.KeyCatalog).Result(); err == nil && s != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s))
			return
		}
	}

	cs, err := h.Store.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch courses"})
		return
	}

	b, _ := json.Marshal(cs)
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, redisx.KeyCatalog, b, redisx.TTLCatalogCache).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *CoursesHandler) search(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q, err := courses.NewSearchQuery(qs.Get("search"), qs.Get("sortKey"), qs.Get("sortOrder"))
	if err != nil {
		if errors.Is(err, courses.ErrBadSort) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid query"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	cs, err := h.Store.Search(ctx, q)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch courses"})
		return
	}
	writeJSON(w, http.StatusOK, cs)
}
