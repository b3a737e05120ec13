package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tutorlane/tutorlane-backend/internal/apperror"
)

func testContext(w *httptest.ResponseRecorder, logBuf *bytes.Buffer) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if logBuf != nil {
		log := zerolog.New(logBuf)
		c.Set(ContextKeyRequestID, "req-test")
		c.Set(ContextKeyLogger, log.With().Str("request_id", "req-test").Logger())
	}
	return c
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) Body {
	t.Helper()
	var body Body
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func TestErrorKindMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "validation maps to 400",
			err:        apperror.Validation("Class name is required"),
			wantStatus: http.StatusBadRequest,
			wantError:  "Class name is required",
		},
		{
			name:       "not found maps to 404",
			err:        apperror.NotFound("Student not found"),
			wantStatus: http.StatusNotFound,
			wantError:  "Student not found",
		},
		{
			name:       "storage maps to generic 500",
			err:        apperror.Storage("load class", errors.New("connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
		{
			name:       "unknown error maps to generic 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c := testContext(w, &bytes.Buffer{})
			Error(c, tt.err)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			body := decodeBody(t, w)
			if body.Success {
				t.Error("success = true, want false")
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
			if body.StatusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", body.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestErrorLogsStorageCause(t *testing.T) {
	var logBuf bytes.Buffer
	w := httptest.NewRecorder()
	c := testContext(w, &logBuf)

	Error(c, apperror.Storage("load class", errors.New("connection refused")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Error("response body leaked the storage cause")
	}
	logged := logBuf.String()
	if !strings.Contains(logged, "connection refused") {
		t.Errorf("log output missing storage cause: %q", logged)
	}
	if !strings.Contains(logged, "req-test") {
		t.Errorf("log output missing request id: %q", logged)
	}
}

func TestErrorWithoutLoggerStillResponds(t *testing.T) {
	w := httptest.NewRecorder()
	c := testContext(w, nil)

	Error(c, apperror.Storage("load class", errors.New("connection refused")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if body := decodeBody(t, w); body.Error != "Internal server error" {
		t.Errorf("error = %q, want generic message", body.Error)
	}
}

func TestErrorJoinedRollbackKeepsKind(t *testing.T) {
	var logBuf bytes.Buffer
	w := httptest.NewRecorder()
	c := testContext(w, &logBuf)

	err := errors.Join(apperror.Validation("No sessions left"), errors.New("rollback failed"))
	Error(c, err)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if body := decodeBody(t, w); body.Error != "No sessions left" {
		t.Errorf("error = %q, want the validation message", body.Error)
	}
}

func TestLoggerMiddlewareAttachesRequestLogger(t *testing.T) {
	var logBuf bytes.Buffer
	gin.SetMode(gin.TestMode)
	log := zerolog.New(&logBuf)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.GET("/boom", func(c *gin.Context) {
		Error(c, apperror.Storage("load class", errors.New("dial timeout")))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	logged := logBuf.String()
	if !strings.Contains(logged, "dial timeout") {
		t.Errorf("log output missing cause: %q", logged)
	}
	if !strings.Contains(logged, "request_id") {
		t.Errorf("log output missing request_id field: %q", logged)
	}
}
