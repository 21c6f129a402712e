package handlers

import (
	"context"
	"net/http"
	"time"
)

// RunNotificationScan triggers one scan pass over every user, outside the
// cron cadence. Used operationally and by the scheduler's health checks.
func (h *Handler) RunNotificationScan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	created, err := h.Controller.RunScan(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]int{"notificationsCreated": created}, http.StatusOK)
}
