package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks cross-field invariants that tags cannot express.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, "database.max_conns must be >= database.min_conns")
	}
	if err := validateURL("services.analyzer_url", c.Services.AnalyzerURL); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateURL("services.semantic_url", c.Services.SemanticURL); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Services.AnalyzerModel == "" {
		errs = append(errs, "services.analyzer_model is required")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not one of debug/info/warn/error", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s %q is not an absolute URL", field, raw)
	}
	return nil
}
