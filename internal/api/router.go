package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haldor/keepintouch/internal/logservice"
)

// NewRouter creates a chi router with the service's three endpoints
// mounted under the route paths its schema defines, plus health
// checks.
func NewRouter(svc *logservice.Service) chi.Router {
	h := NewHandler(svc)
	s := svc.Schema()

	r := chi.NewRouter()

	r.Post(s.CollectPath, h.Collect)
	r.Get(s.ListPath, h.List)
	r.Get(s.AnalyzePath, h.Analyze)

	r.Get("/health/live", health)
	r.Get("/health/ready", health)

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
