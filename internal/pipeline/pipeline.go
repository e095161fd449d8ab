// Package pipeline orchestrates a batch run: discover PDFs in a folder,
// analyze each one, compose a collision-free proposal per file, and
// optionally execute the renames. A failure on one file never prevents
// proposals for the others.
package pipeline

import (
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/paperdesk/papername/internal/extract"
	"github.com/paperdesk/papername/internal/logger"
	"github.com/paperdesk/papername/internal/naming"
	"github.com/paperdesk/papername/models"
)

// warnThreshold flags rows whose confidence falls below it.
const warnThreshold = 0.80

// Process analyzes every PDF in req.FolderPath and returns one review row
// per file, sorted by ascending confidence then name so the doubtful cases
// surface first. Proposals are collision-free against both the filesystem
// and the other proposals of this run.
func Process(req models.Request, open extract.Opener, log logger.Logger) ([]models.ReviewRow, error) {
	paths, err := Discover(req.FolderPath)
	if err != nil {
		return nil, err
	}
	log.Info("Encontrados %d PDFs en %s", len(paths), req.FolderPath)

	// Names proposed earlier in this run count as taken, so two files
	// never receive the same proposal before any rename happens.
	claimed := make(map[string]bool)
	exists := func(p string) bool {
		return claimed[p] || naming.FileExists(p)
	}

	rows := make([]models.ReviewRow, 0, len(paths))
	for _, path := range paths {
		row := processOne(path, req, open, exists)
		claimed[row.ProposedPath] = true
		log.Debug("%s -> %s (confianza %.2f, %s)",
			row.OriginalName, row.ProposedName, row.Confidence, row.FallbackReason)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Confidence != rows[j].Confidence {
			return rows[i].Confidence < rows[j].Confidence
		}
		return rows[i].OriginalName < rows[j].OriginalName
	})
	return rows, nil
}

// processOne builds the review row for a single file.
func processOne(path string, req models.Request, open extract.Opener, exists naming.ExistsFunc) models.ReviewRow {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	info := extract.PaperInfo(path, open)
	result := naming.BuildNewName(info, req.FallbackYear, stem)

	proposed := filepath.Join(filepath.Dir(path), result.NewStem+ext)
	if proposed != path {
		proposed = naming.AvoidCollision(proposed, exists)
	}

	row := models.ReviewRow{
		OriginalName:   base,
		ProposedName:   filepath.Base(proposed),
		Confidence:     math.Round(info.Confidence*100) / 100,
		Notes:          info.Notes,
		FallbackReason: result.Reason,
		OriginalPath:   path,
		ProposedPath:   proposed,
		Status:         models.StatusOK,
	}
	if row.Confidence < warnThreshold || row.FallbackReason != "OK" {
		row.Status = models.StatusWarning
	}
	return row
}
