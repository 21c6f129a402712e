package handlers

import (
	"context"
	"net/http"
	"time"

	"timevalue/src/schemas"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	token, err := h.Controller.Register(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, token, http.StatusOK)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	token, err := h.Controller.Login(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, token, http.StatusOK)
}

func (h *Handler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	info, err := h.Controller.GetUserInfo(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, info, http.StatusOK)
}
