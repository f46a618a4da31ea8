package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/persona-api/internal/api/shared"
	"github.com/phrazzld/persona-api/internal/platform/logger"
	"github.com/phrazzld/persona-api/internal/redact"
)

// Recover turns a panic in a downstream handler into a 500
// {"error":"Unexpected error"} response so one request cannot take the
// process down. http.ErrAbortHandler is re-panicked, as net/http expects.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("recovered from panic",
				"panic", redact.String(fmt.Sprint(rec)),
				"path", r.URL.Path,
				"method", r.Method)

			shared.RespondWithJSON(w, r, http.StatusInternalServerError,
				shared.ErrorResponse{Error: "Unexpected error"})
		}()

		next.ServeHTTP(w, r)
	})
}
