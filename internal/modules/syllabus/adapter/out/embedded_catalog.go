package out

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"gateprep/internal/modules/syllabus/domain"
	syllabusout "gateprep/internal/modules/syllabus/port/out"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Modes []catalogEntry `yaml:"modes"`
}

type catalogEntry struct {
	Mode      string           `yaml:"mode"`
	Label     string           `yaml:"label"`
	Overview  string           `yaml:"overview"`
	Subjects  []subjectEntry   `yaml:"subjects"`
	Weightage []weightageEntry `yaml:"weightage"`
}

type subjectEntry struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	Important []int    `yaml:"important"`
	Topics    []string `yaml:"topics"`
}

type weightageEntry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Marks      int    `yaml:"marks"`
	Difficulty int    `yaml:"difficulty"`
	Note       string `yaml:"note"`
}

// YAMLCatalogSource decodes a catalog document once and serves it from memory.
type YAMLCatalogSource struct {
	raw      []byte
	once     sync.Once
	catalogs []domain.Catalog
	err      error
}

// NewEmbeddedCatalogSource serves the catalog compiled into the binary.
func NewEmbeddedCatalogSource() syllabusout.CatalogSource {
	return &YAMLCatalogSource{raw: embeddedCatalog}
}

func NewYAMLCatalogSource(raw []byte) syllabusout.CatalogSource {
	return &YAMLCatalogSource{raw: raw}
}

func (s *YAMLCatalogSource) Catalogs(_ context.Context) ([]domain.Catalog, error) {
	s.once.Do(func() {
		s.catalogs, s.err = decodeCatalogs(s.raw)
	})
	return s.catalogs, s.err
}

func decodeCatalogs(raw []byte) ([]domain.Catalog, error) {
	file := catalogFile{}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(file.Modes) == 0 {
		return nil, fmt.Errorf("decode catalog: no modes defined")
	}
	seen := map[domain.Mode]bool{}
	out := make([]domain.Catalog, 0, len(file.Modes))
	for _, entry := range file.Modes {
		c := toDomain(entry)
		if seen[c.Mode] {
			return nil, fmt.Errorf("decode catalog: duplicate mode %s", c.Mode)
		}
		seen[c.Mode] = true
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

func toDomain(entry catalogEntry) domain.Catalog {
	c := domain.Catalog{
		Mode:      domain.Mode(entry.Mode),
		Label:     entry.Label,
		Overview:  entry.Overview,
		Subjects:  make([]domain.Subject, 0, len(entry.Subjects)),
		Weightage: make([]domain.Weightage, 0, len(entry.Weightage)),
	}
	for _, s := range entry.Subjects {
		c.Subjects = append(c.Subjects, domain.Subject{
			ID:        s.ID,
			Name:      s.Name,
			Topics:    s.Topics,
			Important: s.Important,
		})
	}
	for _, w := range entry.Weightage {
		c.Weightage = append(c.Weightage, domain.Weightage{
			ID:         w.ID,
			Name:       w.Name,
			Marks:      w.Marks,
			Difficulty: w.Difficulty,
			Note:       w.Note,
		})
	}
	return c
}
