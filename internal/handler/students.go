package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tracking_service/internal/model"
)

type StudentHandler struct {
	s StudentService
}

func NewStudentHandler(s StudentService) *StudentHandler {
	return &StudentHandler{s: s}
}

func (h *StudentHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListStudents)
	r.Post("/", h.CreateStudent)
	r.Delete("/", h.PurgeStudents)
	r.Get("/{id}", h.GetStudent)
	r.Put("/{id}", h.UpdateStudent)
	r.Delete("/{id}", h.DeleteStudent)
}

type createStudentRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Email     *string `json:"email" validate:"omitempty,email"`
	ClassName *string `json:"class_name" validate:"omitempty,max=100"`
	TeacherId *int64  `json:"teacher_id" validate:"omitempty,gt=0"`
}

type updateStudentRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email     *string `json:"email" validate:"omitempty,email"`
	ClassName *string `json:"class_name" validate:"omitempty,max=100"`
	TeacherId *int64  `json:"teacher_id" validate:"omitempty,gt=0"`
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	students, err := h.s.ListStudents(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, students)
}

func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	student, err := h.s.GetStudent(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, student)
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req createStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	student, err := h.s.CreateStudent(r.Context(), actor, &model.CreateStudentInput{
		Name:      req.Name,
		Email:     req.Email,
		ClassName: req.ClassName,
		TeacherId: req.TeacherId,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, student)
}

func (h *StudentHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateStudentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	student, err := h.s.UpdateStudent(r.Context(), actor, id, &model.UpdateStudentInput{
		Name:      req.Name,
		Email:     req.Email,
		ClassName: req.ClassName,
		TeacherId: req.TeacherId,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.s.DeleteStudent(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PurgeStudents takes its scope from ?teacher_id= or ?all=true.
func (h *StudentHandler) PurgeStudents(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	teacherId, err := parseInt64Query(r, "teacher_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	all, err := parseBoolQuery(r, "all")
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.s.PurgeStudents(r.Context(), actor, model.PurgeScope{TeacherId: teacherId, All: all})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
