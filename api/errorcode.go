package api

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/exchange-api/schema"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "token expired",

		1006: "invalid value of client version",
		1007: "API for this client version has been discontinued",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1020: "permission denied",
		1030: "invalid state",
		1031: "this has already been handled",
		1040: "not found",
		1050: "conflict",

		1100: "the email has been registered",
		1101: "account not found",
		1102: "wrong email or password",
		1103: "invalid refresh token",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorTokenExpired               = errorJSON(1004)
	errorInvalidClientVersion       = errorJSON(1006)
	errorUnsupportedClientVersion   = errorJSON(1007)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorPermissionDenied = errorJSON(1020)
	errorInvalidState     = errorJSON(1030)
	errorAlreadyHandled   = errorJSON(1031)
	errorNotFound         = errorJSON(1040)
	errorConflict         = errorJSON(1050)

	errorAccountTaken        = errorJSON(1100)
	errorAccountNotFound     = errorJSON(1101)
	errorWrongCredential     = errorJSON(1102)
	errorInvalidRefreshToken = errorJSON(1103)
)

// ErrorResponse is the envelope of a failed call
type ErrorResponse struct {
	IsSuccess bool   `json:"isSuccess"`
	Code      int64  `json:"code"`
	Message   string `json:"message"`
}

// Response is the envelope of a successful call
type Response struct {
	IsSuccess bool        `json:"isSuccess"`
	Code      int64       `json:"code"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withDetail keeps the code of a standardized error and carries the reason
// of a specific failure
func (e ErrorResponse) withDetail(err error) ErrorResponse {
	e.Message = err.Error()
	return e
}

func responseOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		IsSuccess: true,
		Code:      0,
		Data:      data,
		Message:   "OK",
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

// abortWithError maps an error of the exchange taxonomy to its status and code.
// Anything outside the taxonomy is an internal error.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schema.ErrValidation):
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters.withDetail(err), err)
	case errors.Is(err, schema.ErrPermission):
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied.withDetail(err), err)
	case errors.Is(err, schema.ErrInvalidState):
		abortWithEncoding(c, http.StatusConflict, errorInvalidState.withDetail(err), err)
	case errors.Is(err, schema.ErrNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorNotFound.withDetail(err), err)
	case errors.Is(err, schema.ErrConflict):
		abortWithEncoding(c, http.StatusConflict, errorConflict.withDetail(err), err)
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("internal server error")
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
