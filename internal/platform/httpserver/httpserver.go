package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server for the presentation facade. Write timeout is
// generous because a submission may upload several documents in one request.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
	}
}
