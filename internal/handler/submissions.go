package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tracking_service/internal/model"
)

type SubmissionHandler struct {
	s SubmissionService
}

func NewSubmissionHandler(s SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{s: s}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListSubmissions)
	r.Post("/", h.CreateSubmission)
	r.Get("/{id}", h.GetSubmission)
	r.Delete("/{id}", h.DeleteSubmission)
	r.Put("/{id}/review", h.ReviewSubmission)
	r.Post("/{id}/reopen", h.ReopenSubmission)
}

type createSubmissionRequest struct {
	DeadlineId int64   `json:"deadline_id" validate:"required,gt=0"`
	FileUrl    *string `json:"file_url" validate:"omitempty,max=2048"`
	FileName   *string `json:"file_name" validate:"omitempty,max=255"`
}

type reviewSubmissionRequest struct {
	Status   string   `json:"status" validate:"required,oneof=reviewed approved rejected"`
	Grade    *float64 `json:"grade" validate:"omitempty,gte=0,lte=20"`
	Feedback *string  `json:"feedback"`
}

func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	filter := &model.SubmissionFilter{}
	var err error
	if filter.DeadlineId, err = parseInt64Query(r, "deadline_id"); err != nil {
		writeError(w, r, err)
		return
	}
	if filter.StudentId, err = parseInt64Query(r, "student_id"); err != nil {
		writeError(w, r, err)
		return
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := model.SubmissionStatus(v)
		filter.Status = &status
	}

	submissions, err := h.s.ResolveVisibleSubmissions(r.Context(), actor, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, submissions)
}

func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.s.GetSubmission(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, submission)
}

func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}

	var req createSubmissionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.s.CreateSubmission(r.Context(), actor, req.DeadlineId, model.FileRef{
		FileUrl:  req.FileUrl,
		FileName: req.FileName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, submission)
}

func (h *SubmissionHandler) ReviewSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req reviewSubmissionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.s.ReviewSubmission(r.Context(), actor, id, &model.ReviewSubmissionInput{
		Status:   model.SubmissionStatus(req.Status),
		Grade:    req.Grade,
		Feedback: req.Feedback,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, submission)
}

func (h *SubmissionHandler) ReopenSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.s.ReopenSubmission(r.Context(), actor, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, submission)
}

func (h *SubmissionHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.s.DeleteSubmission(r.Context(), actor, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
