package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"tracking_service/internal/ctxdata"
	"tracking_service/internal/errdefs"
	"tracking_service/internal/logging"
	"tracking_service/internal/model"
)

var ErrBadRequest = errors.New("bad request")

var validate = validator.New(validator.WithRequiredStructEnabled())

func mapErr(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, errdefs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeError logs the failure and answers with its status. Only bad requests
// echo the error text back; everything else gets the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	statusCode := mapErr(err)

	if logger, ok := logging.GetFromContext(ctx); ok {
		if statusCode == http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.String("path", r.URL.Path), zap.Error(err))
		} else {
			logger.Info(ctx, "request rejected", zap.Int("status", statusCode), zap.Error(err))
		}
	}

	message := http.StatusText(statusCode)
	if statusCode == http.StatusBadRequest {
		message = err.Error()
	}
	writeErrorJSON(w, statusCode, message)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		if logger, ok := logging.GetFromContext(r.Context()); ok {
			logger.Error(r.Context(), "Failed to serialize response", zap.Error(err))
		}
		writeErrorJSON(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

// decodeJSON reads the body into dst and runs the validate tags on it.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", ErrBadRequest)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(fields, "; ")
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	val := chi.URLParam(r, key)
	if val == "" {
		return 0, fmt.Errorf("%w: missing path param: %s", ErrBadRequest, key)
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s: %q", ErrBadRequest, key, val)
	}
	return id, nil
}

func parseInt64Query(r *http.Request, key string) (*int64, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s: %q", ErrBadRequest, key, val)
	}
	return &id, nil
}

func parseBoolQuery(r *http.Request, key string) (bool, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("%w: invalid %s: %q", ErrBadRequest, key, val)
	}
	return b, nil
}

// actorFrom returns the actor stored by the actor middleware. A route mounted
// without the middleware answers 401.
func actorFrom(w http.ResponseWriter, r *http.Request) (*model.Actor, bool) {
	actor, ok := ctxdata.GetActor(r.Context())
	if !ok {
		writeErrorJSON(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return nil, false
	}
	return actor, true
}
