// Command papername proposes standardized filenames for academic PDFs
// (Surname et al. (Year). Title.pdf) based on first-page heuristics, and
// applies them on request.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/paperdesk/papername/internal/display"
	"github.com/paperdesk/papername/internal/logger"
	"github.com/paperdesk/papername/internal/pdfdoc"
	"github.com/paperdesk/papername/internal/pipeline"
	"github.com/paperdesk/papername/models"
)

func usage() {
	fmt.Fprint(os.Stderr, `usage: papername [flags] <folder>

Papername analyzes the PDFs in a folder, proposes names in the form
"Apellido et al. (Año). Título.pdf" with a per-file confidence score, and
renames them when -apply is set. Without -apply it only prints the review
table (dry run).

Flags:
`)
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	fallbackYear := flag.Int("fallback-year", time.Now().Year(), "year used when none is detected")
	apply := flag.Bool("apply", false, "perform the renames (default is review only)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "optional log file (in addition to stderr)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}
	folder := flag.Arg(0)

	log, err := logger.NewLogger(logger.LogConfig{Level: *logLevel, FilePath: *logFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "papername: %v\n", err)
		os.Exit(1)
	}

	req := models.Request{
		FolderPath:   folder,
		FallbackYear: *fallbackYear,
		DryRun:       !*apply,
	}
	if err := validate(req); err != nil {
		log.Fatal("%v", err)
	}

	rows, err := pipeline.Process(req, pdfdoc.Open, log)
	if err != nil {
		log.Fatal("No se pudo procesar la carpeta: %v", err)
	}
	if len(rows) == 0 {
		log.Warn("No encontré PDFs en %s", folder)
		return
	}

	display.RenderTable(os.Stdout, rows)
	fmt.Println()

	stats := pipeline.ApplyFS(rows, req.DryRun, log)
	display.RenderSummary(os.Stdout, stats, req.DryRun)
	if stats.Errors > 0 {
		os.Exit(1)
	}
}

// validate checks the request before any filesystem work.
func validate(req models.Request) error {
	if req.FolderPath == "" {
		return fmt.Errorf("falta la ruta de la carpeta")
	}
	info, err := os.Stat(req.FolderPath)
	if err != nil {
		return fmt.Errorf("la ruta no existe: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("la ruta no es una carpeta: %s", req.FolderPath)
	}
	if req.FallbackYear < 1900 || req.FallbackYear > 2099 {
		return fmt.Errorf("año fallback fuera de rango (1900-2099): %d", req.FallbackYear)
	}
	return nil
}
