package openapi

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// SpecLoader loads the upstream OpenAPI specification document from disk.
type SpecLoader struct {
	logger *slog.Logger
}

// NewSpecLoader creates a new SpecLoader.
func NewSpecLoader(logger *slog.Logger) *SpecLoader {
	return &SpecLoader{logger: logger.With("component", "openapi_loader")}
}

// Load reads and parses the specification document at the given path.
// A missing or unparseable document is not fatal to the process; callers
// should treat a nil document as "discovery degraded".
func (l *SpecLoader) Load(ctx context.Context, path string) (*openapi3.T, error) {
	log := l.logger.With(slog.String("path", path))

	if _, err := os.Stat(path); err != nil {
		log.Warn("OpenAPI specification file not found")
		return nil, fmt.Errorf("specification file %s: %w", path, err)
	}

	loader := &openapi3.Loader{Context: ctx, IsExternalRefsAllowed: true}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		log.Error("Failed to parse OpenAPI specification", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse specification %s: %w", path, err)
	}

	// Validation problems are worth knowing about but do not block startup.
	if err := doc.Validate(ctx); err != nil {
		log.Warn("OpenAPI specification validation failed", slog.Any("validation_error", err))
	}

	log.Info("OpenAPI specification loaded successfully")
	return doc, nil
}
