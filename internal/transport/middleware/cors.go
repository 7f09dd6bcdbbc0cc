package middleware

import (
	"strings"

	"github.com/rs/cors"

	"github.com/kelimeci/kelimeci-backend/internal/config"
)

// CORS builds the CORS middleware from config. Origins, methods, and headers
// are comma-separated in the config value.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.New(cors.Options{
		AllowedOrigins:   splitCSV(cfg.AllowedOrigins),
		AllowedMethods:   splitCSV(cfg.AllowedMethods),
		AllowedHeaders:   splitCSV(cfg.AllowedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}).Handler
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
