package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
)

const msgRouteNotFound = "接口不存在"

// envelope wraps every JSON response of the API.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Success bool   `json:"success"`
	Data    any    `json:"data"`
}

func ok(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, envelope{
		Code:    http.StatusOK,
		Message: message,
		Success: true,
		Data:    data,
	})
}

// httpStatus maps a service status code to the HTTP status it is served as.
func httpStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Canceled:
		return http.StatusRequestTimeout
	}
	return http.StatusInternalServerError
}

// describeError picks the HTTP status and message served for err.
func describeError(c echo.Context, err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if he.Code == http.StatusNotFound {
			msg = msgRouteNotFound
		} else if m, isStr := he.Message.(string); isStr && m != "" {
			msg = m
		}
		return he.Code, msg
	}
	if st, isStatus := status.FromError(err); isStatus {
		return httpStatus(st.Code()), st.Message()
	}
	common.LoggerFromContext(c.Request().Context(), nil).Error("http.unhandled_error", "error", err)
	return http.StatusInternalServerError, "服务器内部错误"
}

// HTTPErrorHandler writes err as an envelope with success=false.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code, msg := describeError(c, err)

	body := envelope{Code: code, Message: msg, Data: nil}
	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, body)
	}
	if werr != nil {
		common.LoggerFromContext(c.Request().Context(), nil).Error("http.write_error", "error", fmt.Errorf("write error response: %w", werr))
	}
}
