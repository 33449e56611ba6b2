// internal/handlers/common_test.go
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/burim/garant-backend/internal/services"
)

func TestServiceErrorResponseStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", services.NotFoundError("deal.not_found", "deal not found"), http.StatusNotFound},
		{"forbidden", services.ForbiddenError("deal.not_a_seller", "not the seller"), http.StatusForbidden},
		{"conflict", services.ConflictError("deal.blocked", "deal blocked"), http.StatusConflict},
		{"payment required", services.PaymentRequiredError("deal.not_paid", "not paid"), http.StatusPaymentRequired},
		{"validation", services.ValidationError("validation.invalid", "bad input", nil), http.StatusBadRequest},
		{"internal", services.InternalError(errors.New("boom")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			serviceErrorResponse(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}
