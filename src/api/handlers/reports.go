package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

func (h *Handler) GetYearlyReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	report, err := h.Controller.GetYearlyReport(ctx, userID, queryInt(r, "year"), r.URL.Query().Get("kind"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, report, http.StatusOK)
}

func (h *Handler) GetMonthlyTrend(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	trend, err := h.Controller.GetMonthlyTrend(ctx, userID, queryInt(r, "year"), r.URL.Query().Get("kind"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, trend, http.StatusOK)
}

func (h *Handler) ExportXLSXReport(w http.ResponseWriter, r *http.Request) {
	// Exports rerun the engine over every asset; allow more headroom than the
	// JSON endpoints.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	year := queryInt(r, "year")
	content, err := h.Controller.ExportXLSXReport(ctx, userID, year, r.URL.Query().Get("kind"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respondFile(w, content,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("timevalue-report-%d.xlsx", year))
}

func (h *Handler) ExportPDFReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	year := queryInt(r, "year")
	content, err := h.Controller.ExportPDFReport(ctx, userID, year, r.URL.Query().Get("kind"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respondFile(w, content, "application/pdf", fmt.Sprintf("timevalue-report-%d.pdf", year))
}
