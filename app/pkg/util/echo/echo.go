package echoutil

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"backend/gestion-platform/app/api/client/exception"
	"backend/gestion-platform/app/api/client/response"
	"backend/gestion-platform/app/internal/runtime"
	"backend/gestion-platform/app/pkg/util/validator"
)

var defaultAllowedHeaders = []string{
	echo.HeaderAuthorization,
	echo.HeaderOrigin,
	echo.HeaderContentType,
	echo.HeaderAccept,
	"Accept-Language",
	echo.HeaderCookie,
	echo.HeaderXRequestID,
}

// SetupCORSMiddleware echoes allowed origins back with credentials enabled
// and answers every OPTIONS request with 200 before routing.
func SetupCORSMiddleware(res runtime.Resource) echo.MiddlewareFunc {
	origins := splitList(res.Config.RouterConfig.AllowedOrigins)
	headers := append(append([]string{}, defaultAllowedHeaders...), splitList(res.Config.RouterConfig.AllowedHeaders)...)

	cors := middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return validator.IsOriginAllowed(origin, origins), nil
		},
		AllowHeaders:     headers,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		ExposeHeaders:    []string{echo.HeaderXRequestID, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           600,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		handler := cors(next)
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodOptions {
				return handler(c)
			}

			// echo ends preflight with 204, clients of this API expect 200.
			resp := c.Response()
			writer := resp.Writer
			resp.Writer = preflightWriter{ResponseWriter: writer}
			defer func() { resp.Writer = writer }()

			err := handler(c)
			if resp.Status == http.StatusNoContent {
				resp.Status = http.StatusOK
			}
			return err
		}
	}
}

type preflightWriter struct {
	http.ResponseWriter
}

func (w preflightWriter) WriteHeader(code int) {
	if code == http.StatusNoContent {
		code = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w preflightWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func SetupLoggerMiddleware(res runtime.Resource) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		HandleError:  true,
		LogLatency:   true,
		LogProtocol:  true,
		LogRemoteIP:  true,
		LogHost:      true,
		LogMethod:    true,
		LogURI:       true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogRequestID: true,
		LogReferer:   true,
		LogUserAgent: true,
		LogStatus:    true,
		LogError:     true,
		Skipper: func(c echo.Context) bool {
			return strings.EqualFold(c.Request().URL.Path, "/health") || strings.EqualFold(c.Request().URL.Path, "/favicon.ico")
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				// Request context
				zap.String("request_id", v.RequestID),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("host", v.Host),

				// Request details
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.String("route", v.RoutePath),
				zap.String("user_agent", v.UserAgent),
				zap.String("protocol", v.Protocol),

				// Response details
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				res.Logger.Error("request failed", append(fields, zap.Error(v.Error))...)
			case v.Error != nil:
				res.Logger.Warn("request rejected", append(fields, zap.Error(v.Error))...)
			default:
				res.Logger.Info("request", fields...)
			}

			return nil
		},
	})
}

// NewHTTPErrorHandler writes every error in the response envelope. Internal
// causes are logged and never sent to the client.
func NewHTTPErrorHandler(res runtime.Resource) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if !errors.As(err, &httpErr) {
			httpErr = exception.NewError(err, http.StatusInternalServerError, int(exception.ErrorCodeInternalServer), "Internal server error")
		}

		var body any
		switch msg := httpErr.Message.(type) {
		case *exception.ErrorModel:
			body = msg
		case string:
			body = errorBody(httpErr.Code, msg)
		default:
			body = errorBody(httpErr.Code, http.StatusText(httpErr.Code))
		}

		if httpErr.Code >= http.StatusInternalServerError {
			cause := httpErr.Internal
			if cause == nil {
				cause = err
			}
			res.Logger.Error("Unhandled error",
				zap.String("path", c.Request().URL.Path),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(cause),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(httpErr.Code)
		} else {
			err = c.JSON(httpErr.Code, body)
		}
		if err != nil {
			res.Logger.Error("Failed to write error response", zap.Error(err))
		}
	}
}

func errorBody(code int, message string) response.GeneralResponse[any] {
	body := response.ToErrorResponse(code, message)
	if code == http.StatusNotFound {
		body.Error = exception.ErrRouteNotFound.Error()
	}
	return body
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
