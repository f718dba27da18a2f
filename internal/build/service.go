package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/uwiki/internal/config"
)

// Service executes conversion runs. The CLI and tests both go through it.
type Service interface {
	Run(ctx context.Context, req Request) (*Result, error)
}

// Request contains all inputs required for a run.
type Request struct {
	// Config is the loaded configuration.
	Config *config.Config

	// Directory is the root of the tree to scan. Relative paths are resolved
	// against the working directory.
	Directory string

	// Title is the document title. Defaults to the base name of Directory.
	Title string

	// OutputDir receives the generated files. Defaults to the working directory.
	OutputDir string

	// WorkDir is where local asset copies are looked up. Defaults to ".".
	WorkDir string
}

// Result contains the outcome of a run.
type Result struct {
	Status    Status
	Title     string
	Root      string
	Folders   int
	Pages     int
	Revision  string
	Outputs   []string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Status represents the outcome of a run.
type Status string

const (
	StatusSuccess   Status = "success"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// IsSuccess reports whether the run completed.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// Stage names, used for metrics and log context.
const (
	StageScan           = "scan"
	StageRenderHTML     = "render_html"
	StageRenderMarkdown = "render_markdown"
	StageAssemble       = "assemble"
	StageWrite          = "write"
)
