package api

import (
	"net/http"

	"github.com/labstack/echo/v5"
)

// ResponseError is the body of every non-2xx JSON response, wrapped as
// {"error": {...}}.
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param,omitempty"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error ResponseError `json:"error"`
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg, "", "")
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, "not_found_error", msg, "", "")
}

func writeError(c *echo.Context, status int, errType, msg, param, code string) error {
	return writeJSON(c, status, errorEnvelope{Error: ResponseError{
		Message: msg,
		Type:    errType,
		Param:   param,
		Code:    code,
	}})
}
