package build

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/uwiki/internal/config"
	"git.home.luguber.info/inful/uwiki/internal/convert"
	"git.home.luguber.info/inful/uwiki/internal/doctree"
	"git.home.luguber.info/inful/uwiki/internal/foundation/errors"
	"git.home.luguber.info/inful/uwiki/internal/git"
	"git.home.luguber.info/inful/uwiki/internal/logfields"
	"git.home.luguber.info/inful/uwiki/internal/markdown"
	"git.home.luguber.info/inful/uwiki/internal/metrics"
	"git.home.luguber.info/inful/uwiki/internal/observability"
	"git.home.luguber.info/inful/uwiki/internal/render"
	"git.home.luguber.info/inful/uwiki/internal/shell"
	"git.home.luguber.info/inful/uwiki/internal/source"
	"git.home.luguber.info/inful/uwiki/internal/toc"
)

// RevisionFunc returns the revision of the repository containing a directory.
type RevisionFunc func(dir string) (string, error)

// Pipeline is the standard Service implementation.
type Pipeline struct {
	recorder metrics.Recorder
	logger   *slog.Logger
	revision RevisionFunc
	now      func() time.Time
}

// NewPipeline creates a Pipeline with a no-op recorder and the default logger.
func NewPipeline() *Pipeline {
	return &Pipeline{
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		revision: git.Revision,
		now:      time.Now,
	}
}

// WithRecorder sets the metrics recorder.
func (p *Pipeline) WithRecorder(r metrics.Recorder) *Pipeline {
	if r != nil {
		p.recorder = r
	}
	return p
}

// WithLogger sets the logger used for run and scan logging.
func (p *Pipeline) WithLogger(l *slog.Logger) *Pipeline {
	if l != nil {
		p.logger = l
	}
	return p
}

// WithRevisionFunc replaces the git revision lookup.
func (p *Pipeline) WithRevisionFunc(fn RevisionFunc) *Pipeline {
	if fn != nil {
		p.revision = fn
	}
	return p
}

// Run executes the complete pipeline.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	startTime := p.now()
	result := &Result{StartTime: startTime}

	ctx = observability.WithLogger(ctx, p.logger)
	ctx = observability.WithRunID(ctx, startTime.Format("20060102-150405"))

	finish := func(status Status) {
		result.Status = status
		result.EndTime = p.now()
		result.Duration = result.EndTime.Sub(startTime)
		p.recorder.ObserveBuildDuration(result.Duration)
		if status == StatusSuccess {
			p.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
		} else {
			p.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		}
	}
	fail := func(stage string, err error) (*Result, error) {
		if stage != "" {
			p.recorder.IncStageResult(stage, metrics.ResultFailed)
		}
		if ctx.Err() != nil {
			finish(StatusCancelled)
			return result, err
		}
		observability.ErrorContext(ctx, "Run failed",
			slog.String("category", string(errors.GetCategory(err))), logfields.Error(err))
		finish(StatusFailed)
		return result, err
	}

	plan, err := newPlan(req)
	if err != nil {
		return fail("", err)
	}
	cfg := plan.cfg
	result.Title = plan.title
	result.Root = plan.root
	ctx = observability.WithSource(ctx, plan.root)

	// Stage: scan
	stageStart := p.now()
	ctx = observability.WithStage(ctx, StageScan)
	observability.InfoContext(ctx, "Scanning source tree", logfields.Title(plan.title))
	scanOpts := []doctree.Option{
		doctree.WithDuplicatePolicy(cfg.Duplicates),
		doctree.WithLogger(p.logger),
	}
	if plan.outputDir == plan.root {
		scanOpts = append(scanOpts, doctree.WithRootExcludes(plan.outputNames()...))
	}
	scanner := doctree.NewScanner(scanOpts...)
	tree, err := scanner.Scan(plan.root, plan.title)
	if err != nil {
		return fail(StageScan, err)
	}
	result.Folders, result.Pages = tree.Stats()
	p.recorder.SetTreeSize(result.Folders, result.Pages)
	p.stageDone(ctx, StageScan, stageStart)

	conv := convert.New(
		source.Reader{StripFrontmatter: cfg.StripFrontmatter},
		markdown.Renderer{},
		convert.WithAnchors(cfg.Anchors),
		convert.WithExtensions(cfg.Extensions),
	)
	renderer := render.NewTreeRenderer(conv, p.logger)

	// Stage: render_html
	var htmlBody string
	if cfg.Outputs.HTML {
		if err := ctx.Err(); err != nil {
			return fail(StageRenderHTML, err)
		}
		stageStart = p.now()
		ctx = observability.WithStage(ctx, StageRenderHTML)
		htmlBody, err = renderer.HTML(tree)
		if err != nil {
			return fail(StageRenderHTML, err)
		}
		p.stageDone(ctx, StageRenderHTML, stageStart)
	}

	// Stage: render_markdown
	var markdownBody string
	if cfg.Outputs.Markdown {
		if err := ctx.Err(); err != nil {
			return fail(StageRenderMarkdown, err)
		}
		stageStart = p.now()
		ctx = observability.WithStage(ctx, StageRenderMarkdown)
		markdownBody, err = renderer.Markdown(tree)
		if err != nil {
			return fail(StageRenderMarkdown, err)
		}
		p.stageDone(ctx, StageRenderMarkdown, stageStart)
	}

	// Stage: assemble
	if err := ctx.Err(); err != nil {
		return fail(StageAssemble, err)
	}
	stageStart = p.now()
	ctx = observability.WithStage(ctx, StageAssemble)
	var outputs []shell.Output
	if cfg.Outputs.HTML {
		page, err := p.assembleHTML(ctx, plan, htmlBody)
		if err != nil {
			return fail(StageAssemble, err)
		}
		result.Revision = page.Revision
		outputs = append(outputs, shell.Output{Name: plan.htmlName(), Content: page.html})
	}
	if cfg.Outputs.Markdown {
		outputs = append(outputs, shell.Output{Name: plan.markdownName(), Content: markdownBody})
	}
	for _, out := range outputs {
		p.recorder.SetOutputBytes(filepath.Ext(out.Name)[1:], len(out.Content))
	}
	p.stageDone(ctx, StageAssemble, stageStart)

	// Stage: write
	if err := ctx.Err(); err != nil {
		return fail(StageWrite, err)
	}
	stageStart = p.now()
	ctx = observability.WithStage(ctx, StageWrite)
	written, err := shell.WriteAll(plan.outputDir, outputs)
	result.Outputs = written
	if err != nil {
		return fail(StageWrite, err)
	}
	for i, path := range written {
		observability.InfoContext(ctx, "Wrote output", logfields.File(path), logfields.Bytes(len(outputs[i].Content)))
	}
	p.stageDone(ctx, StageWrite, stageStart)

	finish(StatusSuccess)
	observability.InfoContext(ctx, "Run completed",
		logfields.Count(result.Pages),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))
	return result, nil
}

func (p *Pipeline) stageDone(ctx context.Context, stage string, start time.Time) {
	d := p.now().Sub(start)
	p.recorder.ObserveStageDuration(stage, d)
	p.recorder.IncStageResult(stage, metrics.ResultSuccess)
	observability.DebugContext(ctx, "Stage complete", logfields.DurationMS(float64(d.Milliseconds())))
}

type assembledPage struct {
	shell.Page
	html string
}

func (p *Pipeline) assembleHTML(ctx context.Context, plan *runPlan, body string) (*assembledPage, error) {
	bundle, err := shell.LoadBundle(plan.cfg.TemplateDir)
	if err != nil {
		return nil, err
	}

	contents, err := toc.Build(body)
	if err != nil {
		return nil, errors.RenderError("cannot build table of contents").WithCause(err).Build()
	}

	revision, err := p.revision(plan.root)
	if err != nil {
		observability.WarnContext(ctx, "Cannot determine source revision", logfields.Error(err))
		revision = ""
	}

	assets := shell.Assets{BaseURL: plan.cfg.AssetBaseURL, WorkDir: plan.workDir}
	page := shell.Page{
		Title:     plan.title,
		Content:   body,
		TOC:       contents,
		Revision:  revision,
		StyleURL:  assets.URL(shell.StyleAsset),
		ScriptURL: assets.URL(shell.ScriptAsset),
	}
	return &assembledPage{Page: page, html: bundle.Render(page)}, nil
}

// runPlan is a Request with every default resolved.
type runPlan struct {
	cfg       *config.Config
	root      string
	title     string
	outputDir string
	workDir   string
}

func newPlan(req Request) (*runPlan, error) {
	if req.Directory == "" {
		return nil, errors.UsageError("directory required").Build()
	}
	cfg := req.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if !cfg.Outputs.HTML && !cfg.Outputs.Markdown {
		return nil, errors.ConfigError("no outputs enabled").Build()
	}

	root, err := filepath.Abs(req.Directory)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot resolve directory").
			WithPath(req.Directory).Build()
	}

	title := req.Title
	if title == "" {
		title = filepath.Base(root)
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if outputDir == "" {
		if outputDir, err = os.Getwd(); err != nil {
			return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot determine working directory").Build()
		}
	}

	if outputDir, err = filepath.Abs(outputDir); err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "cannot resolve output directory").
			WithPath(req.OutputDir).Build()
	}

	workDir := req.WorkDir
	if workDir == "" {
		workDir = "."
	}

	return &runPlan{cfg: cfg, root: root, title: title, outputDir: outputDir, workDir: workDir}, nil
}

func (p *runPlan) htmlName() string     { return p.title + ".html" }
func (p *runPlan) markdownName() string { return p.title + ".md" }

// outputNames lists every file a run may leave in the output directory,
// staging files included, whether or not the output is enabled this time.
func (p *runPlan) outputNames() []string {
	html, md := p.htmlName(), p.markdownName()
	return []string{html, md, html + shell.StagingSuffix, md + shell.StagingSuffix}
}
