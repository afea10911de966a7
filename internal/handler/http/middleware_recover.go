// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
)

// withRecover turns a handler panic into a JSON 500 and logs the stack with
// the request-scoped logger. http.ErrAbortHandler is re-raised so net/http
// can abort the connection.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			// too late for an error body once the response has started
			if rw.wroteHeader {
				return
			}
			writeError(rw, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(rw, r)
	})
}
