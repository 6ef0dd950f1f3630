package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"maturity-assessment-service/internal/domain"
)

// StaticLoader serves a fixed catalog (built-in default or a parsed file).
type StaticLoader struct {
	catalog domain.Catalog
}

func NewStaticLoader(c domain.Catalog) *StaticLoader {
	return &StaticLoader{catalog: c}
}

func (l *StaticLoader) LoadCatalog(_ context.Context) (domain.Catalog, error) {
	if len(l.catalog.Categories) == 0 {
		return domain.Catalog{}, domain.ErrCatalogNotFound
	}
	return l.catalog, nil
}

// LoadFile reads a YAML catalog definition and validates it.
func LoadFile(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return domain.Catalog{}, err
	}
	slog.Info("catalog loaded", "path", path, "version", c.Version, "categories", len(c.Categories))
	return c, nil
}

// Parse decodes a YAML catalog, applies defaults and validates it.
func Parse(data []byte) (domain.Catalog, error) {
	var c domain.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return domain.Catalog{}, fmt.Errorf("parse catalog yaml: %w", err)
	}
	for i := range c.Categories {
		for j := range c.Categories[i].Questions {
			q := &c.Categories[i].Questions[j]
			if q.Weight == 0 {
				q.Weight = 1.0
			}
		}
	}
	if len(c.MaturityLevels) == 0 {
		c.MaturityLevels = Default().MaturityLevels
	}
	if err := Validate(c); err != nil {
		return domain.Catalog{}, err
	}
	return c, nil
}

// Validate checks that ids and category names are unique, every question has a known
// type and every history table column maps back to exactly one score or question.
func Validate(c domain.Catalog) error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: no categories", domain.ErrInvalidCatalog)
	}
	categoryIDs := make(map[string]struct{}, len(c.Categories))
	categoryNames := make(map[string]struct{}, len(c.Categories))
	questionIDs := make(map[string]struct{})
	for _, category := range c.Categories {
		if category.ID == "" || category.Name == "" {
			return fmt.Errorf("%w: category id and name are required", domain.ErrInvalidCatalog)
		}
		if _, dup := categoryIDs[category.ID]; dup {
			return fmt.Errorf("%w: duplicate category %q", domain.ErrInvalidCatalog, category.ID)
		}
		categoryIDs[category.ID] = struct{}{}
		if _, dup := categoryNames[category.Name]; dup {
			return fmt.Errorf("%w: duplicate category name %q", domain.ErrInvalidCatalog, category.Name)
		}
		categoryNames[category.Name] = struct{}{}

		for _, q := range category.Questions {
			if q.ID == "" || q.Text == "" {
				return fmt.Errorf("%w: question in %q is missing id or text", domain.ErrInvalidCatalog, category.ID)
			}
			if _, dup := questionIDs[q.ID]; dup {
				return fmt.Errorf("%w: duplicate question %q", domain.ErrInvalidCatalog, q.ID)
			}
			questionIDs[q.ID] = struct{}{}
			if q.Type != domain.QuestionLikert && q.Type != domain.QuestionBinary {
				return fmt.Errorf("%w: question %q has unknown type %q", domain.ErrInvalidCatalog, q.ID, q.Type)
			}
		}
	}
	columns := make(map[string]struct{})
	for _, column := range c.HistoryHeader() {
		if _, dup := columns[column]; dup {
			return fmt.Errorf("%w: history column %q is ambiguous", domain.ErrInvalidCatalog, column)
		}
		columns[column] = struct{}{}
	}
	for level := range c.MaturityLevels {
		if level < 0 || level > 5 {
			return fmt.Errorf("%w: maturity level %d out of range", domain.ErrInvalidCatalog, level)
		}
	}
	return nil
}
