package handlers

import (
	"context"
	"net/http"
	"time"

	"timevalue/src/schemas"
)

func (h *Handler) GetAllVirtualAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	assets, err := h.Controller.GetAllVirtualAssets(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetVirtualAsset(w http.ResponseWriter, r *http.Request) {
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

	asset, err := h.Controller.GetVirtualAsset(ctx, userID, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreateVirtualAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.VirtualAssetRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.CreateVirtualAsset(ctx, userID, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusOK)
}

func (h *Handler) UpdateVirtualAsset(w http.ResponseWriter, r *http.Request) {
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
	var req schemas.VirtualAssetRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.UpdateVirtualAsset(ctx, userID, id, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) DeleteVirtualAsset(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Controller.DeleteVirtualAsset(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) GetExpiringAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	assets, err := h.Controller.GetExpiringAssets(ctx, userID, queryInt(r, "days"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetAllFixedAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	assets, err := h.Controller.GetAllFixedAssets(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetFixedAsset(w http.ResponseWriter, r *http.Request) {
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

	asset, err := h.Controller.GetFixedAsset(ctx, userID, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreateFixedAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.FixedAssetRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.CreateFixedAsset(ctx, userID, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusOK)
}

func (h *Handler) UpdateFixedAsset(w http.ResponseWriter, r *http.Request) {
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
	var req schemas.FixedAssetRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.UpdateFixedAsset(ctx, userID, id, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) DeleteFixedAsset(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Controller.DeleteFixedAsset(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) GetAssetExpenses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	assetID, err := urlParamInt(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	expenses, err := h.Controller.GetAssetExpenses(ctx, userID, assetID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, expenses, http.StatusOK)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	assetID, err := urlParamInt(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.ExpenseRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.CreateExpense(ctx, userID, assetID, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusOK)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	id, err := urlParamInt(r, "expenseId")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.DeleteExpense(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}
