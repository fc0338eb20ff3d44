package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tracking_service/internal/model"
)

type ClassHandler struct {
	s ClassService
}

func NewClassHandler(s ClassService) *ClassHandler {
	return &ClassHandler{s: s}
}

func (h *ClassHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListClasses)
	r.Post("/", h.CreateClass)
	r.Post("/sync", h.SyncClasses)
	r.Get("/{id}", h.GetClass)
	r.Put("/{id}", h.UpdateClass)
	r.Delete("/{id}", h.DeleteClass)
	r.Get("/{id}/students", h.ListClassStudents)
	r.Post("/{id}/students", h.AddStudents)
	r.Delete("/{id}/students/{student_id}", h.RemoveStudent)
}

type createClassRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Description  *string `json:"description"`
	AcademicYear *string `json:"academic_year" validate:"omitempty,max=20"`
}

type updateClassRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description"`
	AcademicYear *string `json:"academic_year" validate:"omitempty,max=20"`
}

type addStudentsRequest struct {
	StudentIds []int64 `json:"student_ids" validate:"required,min=1,dive,gt=0"`
}

type addStudentsResponse struct {
	Added int `json:"added"`
}

func (h *ClassHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	classes, err := h.s.ListClasses(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, classes)
}

func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req createClassRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.s.CreateClass(r.Context(), actor, &model.CreateClassInput{
		Name:         req.Name,
		Description:  req.Description,
		AcademicYear: req.AcademicYear,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, class)
}

func (h *ClassHandler) GetClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.s.GetClass(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, class)
}

func (h *ClassHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateClassRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.s.UpdateClass(r.Context(), actor, id, &model.UpdateClassInput{
		Name:         req.Name,
		Description:  req.Description,
		AcademicYear: req.AcademicYear,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, class)
}

func (h *ClassHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.s.DeleteClass(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClassHandler) ListClassStudents(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	students, err := h.s.ListClassStudents(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, students)
}

func (h *ClassHandler) AddStudents(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req addStudentsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	added, err := h.s.AddStudentsToClass(r.Context(), actor, id, req.StudentIds)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, addStudentsResponse{Added: added})
}

func (h *ClassHandler) RemoveStudent(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	studentId, err := parseIDParam(r, "student_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.s.RemoveStudentFromClass(r.Context(), actor, id, studentId); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClassHandler) SyncClasses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	result, err := h.s.SyncClassesFromLegacyNames(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
