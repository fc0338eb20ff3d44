package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tracking_service/internal/model"
)

type AdminHandler struct {
	s AdminService
}

func NewAdminHandler(s AdminService) *AdminHandler {
	return &AdminHandler{s: s}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/teachers", h.ListTeachers)
	r.Post("/teachers", h.CreateTeacher)
	r.Put("/teachers/{id}/activate", h.SetTeacherActive)
	r.Delete("/teachers/{id}", h.DeleteTeacher)
	r.Get("/stats", h.Stats)
}

type createTeacherRequest struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type activateTeacherRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *AdminHandler) ListTeachers(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	teachers, err := h.s.ListTeachers(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, teachers)
}

func (h *AdminHandler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req createTeacherRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	teacher, err := h.s.CreateTeacher(r.Context(), actor, &model.CreateTeacherInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, teacher)
}

func (h *AdminHandler) SetTeacherActive(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req activateTeacherRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	teacher, err := h.s.SetTeacherActive(r.Context(), actor, id, *req.IsActive)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, teacher)
}

func (h *AdminHandler) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.s.DeleteTeacher(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	stats, err := h.s.Stats(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stats)
}
