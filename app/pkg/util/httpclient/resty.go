package httpClientUtil

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const userAgent = "gestion-platform/1.0"

// NewRestyClient returns a client that retries transport errors and 5xx
// answers three times. A zero requestTimeout leaves the timeout unset.
func NewRestyClient(requestTimeout time.Duration, log *zap.Logger) *resty.Client {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(3).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		OnError(func(req *resty.Request, err error) {
			log.Warn("outbound request failed",
				zap.String("method", req.Method),
				zap.String("url", req.URL),
				zap.Error(err),
			)
		})

	if requestTimeout > 0 {
		client.SetTimeout(requestTimeout)
	}

	return client
}
