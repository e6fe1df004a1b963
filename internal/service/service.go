package service

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"trailers/inventory/internal/assets"
	"trailers/inventory/internal/codec"
	"trailers/inventory/internal/domain"
	"trailers/inventory/internal/validate"
)

type Service struct {
	roots   []domain.Container
	checker assets.Checker
	strict  bool
}

func NewService(roots []domain.Container, checker assets.Checker, strict bool) *Service {
	return &Service{
		roots:   roots,
		checker: checker,
		strict:  strict,
	}
}

// Validate runs the path checks over the tree. In non-strict mode findings are
// only logged.
func (s *Service) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := validate.Tree(s.roots)
	if err == nil {
		log.Info("✅ Inventory paths are unique and nested")
		return nil
	}

	// Strict findings travel in the returned error and are reported by the caller.
	if s.strict {
		return err
	}

	for _, finding := range validate.Errors(err) {
		log.Warnf("⚠️ %v", finding)
	}
	log.Infof("Validation found %d issues (non-strict, ignoring)", len(validate.Errors(err)))
	return nil
}

// CheckAssets verifies every image referenced by the tree is served
func (s *Service) CheckAssets(ctx context.Context) (*assets.Report, error) {
	if s.checker == nil {
		return nil, fmt.Errorf("asset checker is not configured")
	}

	images := domain.Images(s.roots)
	log.Infof("🔄 Checking %d images", len(images))

	report, err := s.checker.Check(ctx, images)
	if err != nil {
		return nil, fmt.Errorf("failed to check assets: %w", err)
	}

	if report.OK() {
		log.Infof("✅ All %d images found", report.Checked)
	} else {
		log.Warnf("🚫 %d of %d images missing", len(report.Missing), report.Checked)
	}
	return report, nil
}

// Export writes the tree in its canonical form
func (s *Service) Export(w io.Writer, format codec.Format) error {
	if err := codec.Encode(w, s.roots, format); err != nil {
		return fmt.Errorf("failed to export inventory: %w", err)
	}
	log.Debugf("Exported %d root containers as %s", len(s.roots), format)
	return nil
}
