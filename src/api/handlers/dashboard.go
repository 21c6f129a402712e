package handlers

import (
	"context"
	"net/http"
	"time"

	"timevalue/src/schemas"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	dashboard, err := h.Controller.GetDashboard(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, dashboard, http.StatusOK)
}

func (h *Handler) GetNotificationSetting(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	setting, err := h.Controller.GetNotificationSetting(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, setting, http.StatusOK)
}

func (h *Handler) UpdateNotificationSetting(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.NotificationSettingRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.UpdateNotificationSetting(ctx, userID, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) GetPreference(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	preference, err := h.Controller.GetPreference(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, preference, http.StatusOK)
}

func (h *Handler) UpdatePreference(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.PreferenceRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.UpdatePreference(ctx, userID, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	notifications, err := h.Controller.GetNotifications(ctx, userID, queryInt(r, "limit"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, notifications, http.StatusOK)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	id, err := urlParamInt(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.MarkNotificationRead(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}
