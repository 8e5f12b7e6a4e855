package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrTemplateNotFound is returned when no template exists for the given id
var ErrTemplateNotFound = errors.New("template not found")

// Template is a pre-built example diagram used to seed or guide conversion
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DiagramType string `json:"diagram_type"`
	TikZCode    string `json:"tikz_code"`
}

// Store is the read-only template catalog. The backing templates.json is
// seeded with the default catalog on first start and immutable after load.
type Store struct {
	templates []Template
	byID      map[string]int
}

// NewStore ensures the catalog file exists, validates it and loads it
func NewStore(templateDir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(templateDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create template directory: %w", err)
	}

	catalogPath := filepath.Join(templateDir, "templates.json")
	if _, err := os.Stat(catalogPath); errors.Is(err, os.ErrNotExist) {
		if err := seedDefaults(catalogPath); err != nil {
			return nil, err
		}
		logger.Info("Seeded default template catalog",
			slog.String("path", catalogPath),
			slog.Int("count", len(defaultTemplates)),
		)
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template catalog: %w", err)
	}

	if err := validateCatalog(data); err != nil {
		return nil, fmt.Errorf("invalid template catalog %s: %w", catalogPath, err)
	}

	var templates []Template
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse template catalog: %w", err)
	}

	byID := make(map[string]int, len(templates))
	for i, tpl := range templates {
		if _, dup := byID[tpl.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q in catalog", tpl.ID)
		}
		byID[tpl.ID] = i
	}

	logger.Info("Template catalog loaded",
		slog.String("path", catalogPath),
		slog.Int("count", len(templates)),
	)

	return &Store{
		templates: templates,
		byID:      byID,
	}, nil
}

func seedDefaults(catalogPath string) error {
	data, err := json.MarshalIndent(defaultTemplates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode default templates: %w", err)
	}

	if err := os.WriteFile(catalogPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write template catalog: %w", err)
	}

	return nil
}

// All returns every template in the catalog
func (s *Store) All() []Template {
	out := make([]Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// ByCategory returns the templates for one diagram category
func (s *Store) ByCategory(category string) []Template {
	var out []Template
	for _, tpl := range s.templates {
		if tpl.DiagramType == category {
			out = append(out, tpl)
		}
	}
	return out
}

// ByID returns the template with the given id
func (s *Store) ByID(id string) (*Template, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}

	tpl := s.templates[i]
	return &tpl, nil
}

// Code returns the example code for a template id. It backs the conversion
// worker's template lookup.
func (s *Store) Code(id string) (string, bool) {
	i, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return s.templates[i].TikZCode, true
}
