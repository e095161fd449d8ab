package models

// PageLine is one visually distinct line of text on a PDF's first page,
// paired with the maximum font size among its spans. Lines are produced in
// approximate reading order and never mutated after creation.
type PageLine struct {
	Text     string
	FontSize float64
}

// PaperInfo is the result of analyzing one document. All extraction fields
// are optional: empty string or zero year means the field could not be
// detected and a fallback will be used when composing the filename.
type PaperInfo struct {
	Title         string
	AuthorSurname string
	Year          int     // 4-digit year in 1900-2099, 0 when not detected
	Confidence    float64 // heuristic score in [0, 0.99]
	Notes         string  // diagnostic notes, "OK" when nothing noteworthy
}

// NamingResult is the proposed filename stem for one document, derived
// deterministically from a PaperInfo plus the caller's fallback year and the
// original filename stem.
type NamingResult struct {
	NewStem string // sanitized, without extension
	Reason  string // comma-joined fallback fields, or "OK"
}

// RowStatus flags a review row for the user.
type RowStatus string

const (
	StatusOK      RowStatus = "ok"
	StatusWarning RowStatus = "warning"
)

// ReviewRow is the per-file output surface consumed by the review display
// and the rename executor.
type ReviewRow struct {
	OriginalName   string
	ProposedName   string
	Confidence     float64 // rounded to 2 decimals
	Notes          string
	FallbackReason string
	OriginalPath   string
	ProposedPath   string
	Status         RowStatus
}

// Request describes one batch-processing run over a folder of PDFs.
type Request struct {
	FolderPath   string
	FallbackYear int
	DryRun       bool
}

// RenameStats aggregates the outcome of a rename execution pass.
type RenameStats struct {
	Changed int
	Skipped int
	Errors  int
}
