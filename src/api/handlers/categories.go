package handlers

import (
	"context"
	"net/http"
	"time"

	"timevalue/src/schemas"
)

func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	categories, err := h.Controller.GetAllCategories(ctx, userID, r.URL.Query().Get("kind"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, categories, http.StatusOK)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.CategoryRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.CreateCategory(ctx, userID, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusOK)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
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
	var req schemas.CategoryRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.UpdateCategory(ctx, userID, id, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Controller.DeleteCategory(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	projects, err := h.Controller.GetAllProjects(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, projects, http.StatusOK)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := h.userID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	var req schemas.ProjectRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	created, err := h.Controller.CreateProject(ctx, userID, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, created, http.StatusOK)
}

func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
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
	var req schemas.ProjectRequest
	if err := decodeBody(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.Controller.UpdateProject(ctx, userID, id, req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Controller.DeleteProject(ctx, userID, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}
