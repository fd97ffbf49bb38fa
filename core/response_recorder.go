package core

import (
	"net/http"
)

// ResponseRecorder wraps a ResponseWriter to capture the status code and
// bytes written, for middleware that reports on the response after the
// handler ran.
type ResponseRecorder struct {
	http.ResponseWriter
	Status       int
	WroteHeader  bool
	BytesWritten int64
}

// NewResponseRecorder wraps w. The status defaults to 200 until a handler
// writes an explicit one.
func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	return &ResponseRecorder{ResponseWriter: w, Status: http.StatusOK}
}

// WriteHeader captures the status code and marks headers as written.
func (r *ResponseRecorder) WriteHeader(status int) {
	if !r.WroteHeader {
		r.Status = status
		r.WroteHeader = true
		r.ResponseWriter.WriteHeader(status)
	}
}

// Write captures bytes written and ensures headers are written first.
func (r *ResponseRecorder) Write(b []byte) (int, error) {
	if !r.WroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.BytesWritten += int64(n)
	return n, err
}
