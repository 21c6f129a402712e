package handlers

import (
	"context"
	"net/http"
	"time"

	"timevalue/src/schemas"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetWeChatAuthorizeURL(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.Controller.WeChatAuthorizeURL(r.Context()), http.StatusOK)
}

func (h *Handler) WeChatCallback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.WeChatCallbackRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	token, err := h.Controller.WeChatCallback(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, token, http.StatusOK)
}

func (h *Handler) GetJSSDKConfig(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	req := schemas.JSSDKConfigRequest{URL: r.URL.Query().Get("url")}
	config, err := h.Controller.WeChatJSSDKConfig(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, config, http.StatusOK)
}

func (h *Handler) CreateQRSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := h.Controller.CreateQRSession(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, session, http.StatusOK)
}

func (h *Handler) GetQRStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := h.Controller.GetQRStatus(ctx, chi.URLParam(r, "sceneId"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, status, http.StatusOK)
}

func (h *Handler) ScanQRSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.QRScanRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.ScanQRSession(ctx, chi.URLParam(r, "sceneId"), req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) ConfirmQRSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Controller.ConfirmQRSession(ctx, chi.URLParam(r, "sceneId")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) CancelQRSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.Controller.CancelQRSession(ctx, chi.URLParam(r, "sceneId")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}
