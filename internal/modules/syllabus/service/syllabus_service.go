package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	hclog "github.com/hashicorp/go-hclog"

	"gateprep/internal/modules/syllabus/domain"
	syllabusout "gateprep/internal/modules/syllabus/port/out"
	apperrors "gateprep/internal/platform/errors"
)

type SyllabusService struct {
	catalogs    syllabusout.CatalogSource
	modes       syllabusout.ModeStore
	defaultMode domain.Mode
	log         hclog.Logger
}

func NewSyllabusService(catalogs syllabusout.CatalogSource, modes syllabusout.ModeStore, defaultMode domain.Mode, log hclog.Logger) *SyllabusService {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &SyllabusService{catalogs: catalogs, modes: modes, defaultMode: defaultMode, log: log}
}

func (s *SyllabusService) Catalogs(ctx context.Context) ([]domain.Catalog, error) {
	return s.catalogs.Catalogs(ctx)
}

func (s *SyllabusService) Catalog(ctx context.Context, mode domain.Mode) (domain.Catalog, error) {
	catalogs, err := s.catalogs.Catalogs(ctx)
	if err != nil {
		return domain.Catalog{}, err
	}
	for _, c := range catalogs {
		if c.Mode == mode {
			return c, nil
		}
	}
	return domain.Catalog{}, fmt.Errorf("unknown mode %q: %w", mode, apperrors.ErrInvalidInput)
}

// ActiveMode never fails on storage problems: an absent, unknown or
// unreadable value resolves to the default mode.
func (s *SyllabusService) ActiveMode(ctx context.Context) (domain.Catalog, error) {
	mode, err := s.modes.LoadMode(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.log.Warn("mode load failed, using default", "default", s.defaultMode, "error", err)
		}
		mode = s.defaultMode
	}
	c, err := s.Catalog(ctx, mode)
	if err == nil {
		return c, nil
	}
	if mode != s.defaultMode {
		s.log.Warn("persisted mode unknown, using default", "mode", mode, "default", s.defaultMode)
		return s.Catalog(ctx, s.defaultMode)
	}
	return domain.Catalog{}, err
}

func (s *SyllabusService) SetMode(ctx context.Context, raw string) (domain.Catalog, error) {
	mode := domain.Mode(strings.ToLower(strings.TrimSpace(raw)))
	c, err := s.Catalog(ctx, mode)
	if err != nil {
		return domain.Catalog{}, err
	}
	if err := s.modes.SaveMode(ctx, mode); err != nil {
		s.log.Warn("mode save failed", "mode", mode, "error", err)
	}
	return c, nil
}
