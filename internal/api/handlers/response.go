package handlers

import (
	"errors"
	"net/http"

	apperrors "client-portal-backend/internal/errors"
	"client-portal-backend/internal/logger"
	"client-portal-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse is the envelope of every successful JSON response
type SuccessResponse struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// ErrorResponse is the envelope of every failed request
type ErrorResponse struct {
	Status  string                       `json:"status" example:"error"`
	Message string                       `json:"message" example:"project not found"`
	Code    string                       `json:"code,omitempty" example:"ACCESS_DENIED"`
	Errors  []*apperrors.ValidationError `json:"errors,omitempty"`
}

func respond(c *gin.Context, operation string, status int, data interface{}) {
	metrics.IncrementPortalOperation(operation, "success")
	c.JSON(status, SuccessResponse{Status: "success", Data: data})
}

// respondError translates err to its status code and envelope. Anything that is
// not a known domain error is logged and reported without detail.
func respondError(c *gin.Context, operation string, err error) {
	status, body, outcome := translate(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).
			WithField("operation", operation).
			WithError(err).
			Error("request failed")
	}
	metrics.IncrementPortalOperation(operation, outcome)
	c.AbortWithStatusJSON(status, body)
}

func translate(err error) (int, ErrorResponse, string) {
	body := ErrorResponse{Status: "error"}

	var notFound *apperrors.NotFoundError
	var authn *apperrors.AuthenticationError
	var authz *apperrors.AuthorizationError

	switch {
	case errors.As(err, &notFound):
		body.Message = notFound.Error()
		return http.StatusNotFound, body, "not_found"
	case apperrors.IsValidation(err):
		body.Message = "validation failed"
		body.Errors = apperrors.FieldErrors(err)
		return http.StatusBadRequest, body, "invalid"
	case errors.As(err, &authn):
		body.Message = authn.Message
		return http.StatusUnauthorized, body, "denied"
	case errors.As(err, &authz):
		body.Message = authz.Message
		body.Code = authz.Code
		return http.StatusForbidden, body, "denied"
	case errors.Is(err, apperrors.ErrSlugExists):
		body.Message = apperrors.ErrSlugExists.Error()
		return http.StatusConflict, body, "invalid"
	default:
		body.Message = "internal server error"
		return http.StatusInternalServerError, body, "error"
	}
}

// parseID reads a uuid path parameter; a malformed id cannot name any record
func parseID(c *gin.Context, param, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, apperrors.NewNotFoundError(entity)
	}
	return id, nil
}

// bindJSON decodes the body; a malformed body is a validation failure
func bindJSON(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return apperrors.NewValidationError("", "invalid request body: "+err.Error())
	}
	return nil
}
