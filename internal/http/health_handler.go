package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/internal/storage/db"
)

type dbStatusResponse struct {
	DB   string    `json:"db"`
	Time time.Time `json:"time"`
}

type healthHandler struct {
	healthChecker db.HealthChecker
}

func newHealthHandler(healthChecker db.HealthChecker) *healthHandler {
	return &healthHandler{
		healthChecker: healthChecker,
	}
}

func (h *healthHandler) TestDB(w http.ResponseWriter, r *http.Request) error {
	now, err := h.healthChecker.Now(r.Context())
	if err != nil {
		return fmt.Errorf("health checker now: %w", err)
	}

	return writeJSON(w, http.StatusOK, dbStatusResponse{
		DB:   "connected",
		Time: now,
	})
}
