package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/akshay/schoolms/internal/pkg/report"
)

// ReportService triggers generation of the static project report document
type ReportService struct {
	storagePath string
	logger      zerolog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(storagePath string, logger zerolog.Logger) *ReportService {
	return &ReportService{
		storagePath: storagePath,
		logger:      logger,
	}
}

// Generate writes the report under the storage path and returns the file name
func (s *ReportService) Generate() (string, error) {
	if err := os.MkdirAll(s.storagePath, 0o755); err != nil {
		return "", fmt.Errorf("error creating storage directory: %w", err)
	}

	path, err := report.Generate(s.storagePath)
	if err != nil {
		return "", fmt.Errorf("error generating report: %w", err)
	}

	s.logger.Info().Str("path", path).Msg("Project report generated")
	return report.FileName, nil
}

// FilePath returns the on-disk location of the generated report.
func (s *ReportService) FilePath() string {
	return filepath.Join(s.storagePath, report.FileName)
}
