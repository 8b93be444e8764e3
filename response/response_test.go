package response

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "jatomogu/errors"
	"jatomogu/utils"

	"github.com/gin-gonic/gin"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/bookings/5", nil)
	return c, w
}

func captureErrorLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := utils.ErrorLogger
	utils.ErrorLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { utils.ErrorLogger = orig })
	return &buf
}

func TestFromErrorLogsDBErrors(t *testing.T) {
	buf := captureErrorLog(t)
	c, w := newTestContext()

	FromError(c, apperrors.NewAppError(apperrors.ErrCodeDBError,
		"Cannot load booking", errors.New("pq: connection reset")))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Internal server error") {
		t.Fatalf("client response leaked details: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "connection reset") {
		t.Fatalf("underlying error not logged: %q", buf.String())
	}
}

func TestFromErrorLogsNonAppErrors(t *testing.T) {
	buf := captureErrorLog(t)
	c, w := newTestContext()

	FromError(c, errors.New("unexpected nil pointer"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(buf.String(), "unexpected nil pointer") {
		t.Fatalf("error not logged: %q", buf.String())
	}
}

func TestFromErrorTaxonomyBranchesDoNotLog(t *testing.T) {
	buf := captureErrorLog(t)
	c, w := newTestContext()

	FromError(c, apperrors.NewAppError(apperrors.ErrCodeAlreadyReviewed,
		"Booking already has a review", apperrors.ErrAlreadyReviewed))

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if buf.Len() != 0 {
		t.Fatalf("taxonomy error should not hit the error log: %q", buf.String())
	}
}
