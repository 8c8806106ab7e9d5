package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets browser tooling on any origin fetch dumps. The service is read
// only, so nothing beyond GET and HEAD is allowed.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
