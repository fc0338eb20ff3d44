package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tracking_service/internal/model"
)

const dateLayout = "2006-01-02"

type DeadlineHandler struct {
	s DeadlineService
}

func NewDeadlineHandler(s DeadlineService) *DeadlineHandler {
	return &DeadlineHandler{s: s}
}

func (h *DeadlineHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListDeadlines)
	r.Post("/", h.CreateDeadline)
	r.Get("/calendar/{year}/{month}", h.Calendar)
	r.Get("/{id}", h.GetDeadline)
	r.Put("/{id}", h.UpdateDeadline)
	r.Delete("/{id}", h.DeleteDeadline)
}

type createDeadlineRequest struct {
	Title        string  `json:"title" validate:"required,max=255"`
	Description  *string `json:"description"`
	DocumentType string  `json:"document_type" validate:"required,max=100"`
	DueDate      string  `json:"due_date" validate:"required,datetime=2006-01-02"`
	ExamType     *string `json:"exam_type" validate:"omitempty,oneof=E4 E6 ALL"`
	IsMandatory  *bool   `json:"is_mandatory"`
}

type updateDeadlineRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description"`
	DocumentType *string `json:"document_type" validate:"omitempty,min=1,max=100"`
	DueDate      *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	ExamType     *string `json:"exam_type" validate:"omitempty,oneof=E4 E6 ALL"`
	IsMandatory  *bool   `json:"is_mandatory"`
}

func examTypePtr(s *string) *model.ExamType {
	if s == nil {
		return nil
	}
	examType := model.ExamType(*s)
	return &examType
}

func (h *DeadlineHandler) ListDeadlines(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	upcoming, err := parseBoolQuery(r, "upcoming_only")
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter := &model.DeadlineFilter{UpcomingOnly: upcoming}
	if v := r.URL.Query().Get("exam_type"); v != "" {
		filter.ExamType = examTypePtr(&v)
	}

	deadlines, err := h.s.ResolveVisibleDeadlines(r.Context(), actor, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, deadlines)
}

func (h *DeadlineHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid year", ErrBadRequest))
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid month", ErrBadRequest))
		return
	}

	deadlines, err := h.s.CalendarDeadlines(r.Context(), actor, year, month)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, deadlines)
}

func (h *DeadlineHandler) GetDeadline(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	deadline, err := h.s.GetDeadline(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, deadline)
}

func (h *DeadlineHandler) CreateDeadline(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req createDeadlineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: invalid due_date", ErrBadRequest))
		return
	}

	input := &model.CreateDeadlineInput{
		Title:        req.Title,
		Description:  req.Description,
		DocumentType: req.DocumentType,
		DueDate:      dueDate,
		ExamType:     examTypePtr(req.ExamType),
		IsMandatory:  true,
	}
	if req.IsMandatory != nil {
		input.IsMandatory = *req.IsMandatory
	}

	deadline, err := h.s.CreateDeadline(r.Context(), actor, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, deadline)
}

func (h *DeadlineHandler) UpdateDeadline(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateDeadlineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input := &model.UpdateDeadlineInput{
		Title:        req.Title,
		Description:  req.Description,
		DocumentType: req.DocumentType,
		ExamType:     examTypePtr(req.ExamType),
		IsMandatory:  req.IsMandatory,
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(dateLayout, *req.DueDate)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid due_date", ErrBadRequest))
			return
		}
		input.DueDate = &dueDate
	}

	deadline, err := h.s.UpdateDeadline(r.Context(), actor, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, deadline)
}

func (h *DeadlineHandler) DeleteDeadline(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.s.DeleteDeadline(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
