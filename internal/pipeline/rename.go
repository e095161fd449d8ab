package pipeline

import (
	"os"

	"github.com/paperdesk/papername/internal/logger"
	"github.com/paperdesk/papername/models"
)

// RenameFunc performs the actual move. Injectable for tests; os.Rename in
// production.
type RenameFunc func(oldpath, newpath string) error

// Apply executes the proposed renames. Rows whose proposal equals the
// original are skipped, and a failure on one file is reported and counted
// without stopping the rest of the batch. In dry-run mode nothing is
// touched and every row counts as skipped.
func Apply(rows []models.ReviewRow, dryRun bool, rename RenameFunc, log logger.Logger) models.RenameStats {
	var stats models.RenameStats
	for _, row := range rows {
		if dryRun {
			stats.Skipped++
			continue
		}
		if row.OriginalPath == row.ProposedPath {
			stats.Skipped++
			continue
		}
		if err := rename(row.OriginalPath, row.ProposedPath); err != nil {
			log.Error("Error renombrando %s: %v", row.OriginalName, err)
			stats.Errors++
			continue
		}
		stats.Changed++
	}
	return stats
}

// ApplyFS is Apply wired to the real filesystem.
func ApplyFS(rows []models.ReviewRow, dryRun bool, log logger.Logger) models.RenameStats {
	return Apply(rows, dryRun, os.Rename, log)
}
