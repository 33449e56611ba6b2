// internal/handlers/common.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/burim/garant-backend/internal/i18n"
	"github.com/burim/garant-backend/internal/models"
	"github.com/burim/garant-backend/internal/services"
	"github.com/burim/garant-backend/internal/utils"
)

// serviceErrorResponse translates a typed service error into the wire
// response, localizing the message by its code.
func serviceErrorResponse(c *gin.Context, err error) {
	serviceErr, ok := services.AsError(err)
	if !ok {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	lang := utils.GetLangFromContext(c)
	message := i18n.T(lang, serviceErr.Code)
	if message == serviceErr.Code {
		message = serviceErr.Message
	}

	var status int
	switch serviceErr.Kind {
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindForbidden:
		status = http.StatusForbidden
	case services.KindConflict:
		status = http.StatusConflict
	case services.KindPaymentRequired:
		status = http.StatusPaymentRequired
	case services.KindValidation:
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	utils.ErrorResponse(c, status, serviceErr.Code, message, serviceErr.Details)
}

func identityFromContext(c *gin.Context) (services.Identity, bool) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		return services.Identity{}, false
	}

	role, _ := utils.GetUserRoleFromContext(c)
	return services.Identity{
		ID:   userID,
		Role: models.UserRole(role),
	}, true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name, nil)
		return 0, false
	}
	return uint(id), true
}
