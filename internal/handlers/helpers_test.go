package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/pantrychef-api/internal/apperrors"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code apperrors.Code
		want int
	}{
		{apperrors.CodeValidation, http.StatusBadRequest},
		{apperrors.CodeNotFound, http.StatusNotFound},
		{apperrors.CodeConflict, http.StatusConflict},
		{apperrors.CodeUpstreamUnavailable, http.StatusBadGateway},
		{apperrors.CodeInternal, http.StatusInternalServerError},
		{apperrors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusForCode(tt.code); got != tt.want {
			t.Errorf("statusForCode(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func serveError(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	respondError(c, err, "Something went wrong.")
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body.Error, body.Code
}

func TestRespondError_CallerErrorKeepsMessage(t *testing.T) {
	w := serveError(apperrors.New(apperrors.CodeValidation, "At least one ingredient is required."))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	msg, code := decodeError(t, w)
	if msg != "At least one ingredient is required." {
		t.Errorf("error = %q", msg)
	}
	if code != "VALIDATION" {
		t.Errorf("code = %q, want VALIDATION", code)
	}
}

func TestRespondError_UpstreamHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connection refused")
	w := serveError(apperrors.Wrap(apperrors.CodeUpstreamUnavailable, "filter.php request failed", cause))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	msg, code := decodeError(t, w)
	if msg != "Something went wrong." {
		t.Errorf("error = %q, want fallback message", msg)
	}
	if code != "UPSTREAM_UNAVAILABLE" {
		t.Errorf("code = %q, want UPSTREAM_UNAVAILABLE", code)
	}
}

func TestRespondError_PlainErrorIsInternal(t *testing.T) {
	w := serveError(errors.New("boom"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if _, code := decodeError(t, w); code != "INTERNAL" {
		t.Errorf("code = %q, want INTERNAL", code)
	}
}
