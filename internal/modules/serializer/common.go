package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitegenie/sitegenie/internal/pkg/apperr"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger sets the logger used to report internal errors.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response
type Response struct {
	Code      int         `json:"code"`
	Data      interface{} `json:"data,omitempty"`
	Msg       string      `json:"message"`
	ErrorCode string      `json:"error_code,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code:      errCode,
		Msg:       msg,
		ErrorCode: codeFor(errCode),
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}

// NotFoundErr
func NotFoundErr(msg string) Response {
	if msg == "" {
		msg = "not found"
	}
	return Err(http.StatusNotFound, msg, nil)
}

// FromError translates a service error into a status code and body.
// Usage: c.JSON(serializer.FromError(err))
func FromError(err error) (int, Response) {
	e := apperr.As(err)
	status := e.Status()
	if status >= http.StatusInternalServerError && e.Kind != apperr.KindUpstream {
		log.Sugar().Errorw("request failed", "err", err)
	}
	res := Response{
		Code:      status,
		Msg:       e.Msg,
		ErrorCode: e.Kind.Code(),
	}
	if e.Err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", e.Err)
	}
	return status, res
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return apperr.KindValidation.Code()
	case http.StatusUnauthorized:
		return apperr.KindAuth.Code()
	case http.StatusForbidden:
		return apperr.KindForbidden.Code()
	case http.StatusNotFound:
		return apperr.KindNotFound.Code()
	case http.StatusConflict:
		return apperr.KindConflict.Code()
	case http.StatusBadGateway:
		return apperr.KindUpstream.Code()
	}
	return apperr.KindInternal.Code()
}
