package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracking_service/internal/errdefs"
)

func TestMapErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"BadRequest", ErrBadRequest, http.StatusBadRequest},
		{"InvalidArgument", fmt.Errorf("%w: grade", errdefs.ErrInvalidArgument), http.StatusBadRequest},
		{"Authentication", errdefs.ErrAuthentication, http.StatusUnauthorized},
		{"PermissionDenied", fmt.Errorf("%w: not owner", errdefs.ErrPermissionDenied), http.StatusForbidden},
		{"NotFound", errdefs.ErrNotFound, http.StatusNotFound},
		{"AlreadyExists", fmt.Errorf("%w: duplicate", errdefs.ErrAlreadyExists), http.StatusConflict},
		{"UnknownError", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapErr(tc.err))
		})
	}
}

func TestWriteErrorJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeErrorJSON(w, http.StatusBadRequest, "test error")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "test error", body["error"])
}

func TestValidationMessage(t *testing.T) {
	err := validate.Struct(&reviewSubmissionRequest{Status: "done"})
	require.Error(t, err)
	assert.Contains(t, validationMessage(err), "Status failed oneof=reviewed approved rejected")
}
