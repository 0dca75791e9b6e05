package common

import (
	"net/http"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-moviesearch/app"
)

// HandlerFuncWithCTX - type is an adapter to use handlerfunc with ctx
type HandlerFuncWithCTX func(*app.Context, http.ResponseWriter, *http.Request) error

// StatusCodeRecorder remembers the status code written to the response
type StatusCodeRecorder struct {
	http.ResponseWriter
	http.Hijacker
	StatusCode int
}

func (r *StatusCodeRecorder) WriteHeader(statusCode int) {
	if r.StatusCode == 0 {
		r.StatusCode = statusCode
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

// Status is the recorded code, 200 when the handler never wrote one
func (r *StatusCodeRecorder) Status() int {
	if r.StatusCode == 0 {
		return http.StatusOK
	}
	return r.StatusCode
}
