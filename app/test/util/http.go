package httputil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
)

// Request serves one request through e and returns the raw body and status.
func Request(e *echo.Echo, method string, target string, token *string, bodyBytes []byte, headers ...http.Header) ([]byte, int) {
	var body io.Reader
	if len(bodyBytes) > 0 {
		body = bytes.NewBuffer(bodyBytes)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Add(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != nil {
		req.Header.Add(echo.HeaderAuthorization, fmt.Sprintf("Bearer %s", *token))
	}
	for _, h := range headers {
		for k, values := range h {
			for _, v := range values {
				req.Header.Add(k, v)
			}
		}
	}
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, req)

	return recorder.Body.Bytes(), recorder.Code
}

// RequestHTTP marshals body (nil sends no body) and decodes the response into T.
func RequestHTTP[T any](e *echo.Echo, method string, target string, token *string, body any, headers ...http.Header) (T, int, error) {
	var res T
	var bodyBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return res, 0, err
		}
		bodyBytes = b
	}
	resBytes, code := Request(e, method, target, token, bodyBytes, headers...)
	if len(resBytes) == 0 {
		return res, code, nil
	}
	err := json.Unmarshal(resBytes, &res)

	return res, code, err
}

// Recorder serves the request and returns the recorder so tests can inspect headers and cookies.
func Recorder(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
