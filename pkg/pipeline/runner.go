package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/cardsheets/pkg/buildinfo"
	"github.com/matzehuels/cardsheets/pkg/cache"
	"github.com/matzehuels/cardsheets/pkg/card"
	"github.com/matzehuels/cardsheets/pkg/compose"
	"github.com/matzehuels/cardsheets/pkg/config"
	"github.com/matzehuels/cardsheets/pkg/errors"
	"github.com/matzehuels/cardsheets/pkg/ingest"
	"github.com/matzehuels/cardsheets/pkg/layout"
	"github.com/matzehuels/cardsheets/pkg/observability"
	"github.com/matzehuels/cardsheets/pkg/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different jobs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete ingest → plan → compose → render pipeline.
func (r *Runner) Execute(ctx context.Context, job config.Job) (*Result, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Job:       job,
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("job", job.Name, "run", result.RunID[:8])
	hooks := observability.Pipeline()

	// Stage 1: Ingest
	ingestStart := time.Now()
	hooks.OnIngestStart(ctx, job.Name, job.Dir)
	fronts, backs, err := r.ingest(ctx, job, logger)
	result.Stats.IngestTime = time.Since(ingestStart)
	hooks.OnIngestComplete(ctx, job.Name, len(fronts), len(backs), result.Stats.IngestTime, err)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	result.Stats.FrontCount = len(fronts)
	result.Stats.BackCount = len(backs)

	logger.Info("loaded cards",
		"fronts", len(fronts),
		"backs", len(backs),
		"duration", result.Stats.IngestTime)

	switch {
	case len(fronts) == 0:
		result.warn(logger, "no front images found; skipping the front sheet")
	case len(backs) == 0:
		result.warn(logger, "no back images found; skipping the back sheet")
	case len(fronts) != len(backs):
		result.warn(logger, fmt.Sprintf("%d fronts but %d backs; sheets will not pair up", len(fronts), len(backs)))
	}

	// Stage 2: Plan
	plan := layout.NewPlan(job.LayoutConfig())
	result.Plan = plan
	hooks.OnPlan(ctx, job.Name, plan.Columns, plan.Rows)
	logger.Debug("planned sheet",
		"columns", plan.Columns,
		"rows", plan.Rows,
		"per_page", plan.CardsPerPage,
		"origin", fmt.Sprintf("%.2f,%.2f", plan.GridOrigin.X, plan.GridOrigin.Y))

	// Stage 3: Compose
	composeStart := time.Now()
	if len(fronts) > 0 {
		if result.Fronts, err = r.compose(ctx, job, card.Front, fronts, plan, job.FrontOptions()); err != nil {
			return nil, err
		}
		result.Stats.FrontPages = result.Fronts.Len()
	}
	if len(backs) > 0 {
		if result.Backs, err = r.compose(ctx, job, card.Back, backs, plan, job.BackOptions()); err != nil {
			return nil, err
		}
		result.Stats.BackPages = result.Backs.Len()
	}
	result.Stats.ComposeTime = time.Since(composeStart)

	logger.Info("composed sheets",
		"per_page", plan.CardsPerPage,
		"front_pages", result.Stats.FrontPages,
		"back_pages", result.Stats.BackPages)

	// Stage 4: Render
	renderStart := time.Now()
	if result.Fronts != nil {
		if result.CacheInfo.FrontHit, err = r.render(ctx, job, card.Front, result.Fronts, result.Artifacts, logger); err != nil {
			return nil, err
		}
	}
	if result.Backs != nil {
		if result.CacheInfo.BackHit, err = r.render(ctx, job, card.Back, result.Backs, result.Artifacts, logger); err != nil {
			return nil, err
		}
	}
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered sheets",
		"formats", Formats(job),
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) ingest(ctx context.Context, job config.Job, logger *log.Logger) (fronts, backs []card.Card, err error) {
	listing, err := ingest.Scan(job.Dir, job.BackMarker)
	if err != nil {
		return nil, nil, err
	}
	if len(listing.Fronts) == 0 && len(listing.Backs) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "no card images in %s", job.Dir)
	}

	opts := ingest.Options{
		CardSize: job.LayoutConfig().CardSize,
		MaxDPI:   job.MaxDPI,
		Logger:   logger,
	}
	if fronts, err = ingest.Load(ctx, listing.Fronts, card.Front, opts); err != nil {
		return nil, nil, err
	}
	if backs, err = ingest.Load(ctx, listing.Backs, card.Back, opts); err != nil {
		return nil, nil, err
	}
	return fronts, backs, nil
}

func (r *Runner) compose(ctx context.Context, job config.Job, side card.Side, cards []card.Card, plan layout.Plan, opts compose.Options) (*compose.Sheet, error) {
	sheet, err := compose.Compose(cards, plan, opts)
	pages := 0
	if sheet != nil {
		pages = sheet.Len()
	}
	observability.Pipeline().OnCompose(ctx, job.Name, side.String(), pages, err)
	if err != nil {
		return nil, fmt.Errorf("compose %ss: %w", side, err)
	}
	return sheet, nil
}

// render fills artifacts with every format of one sheet. It reports whether
// all of them came from the cache.
func (r *Runner) render(ctx context.Context, job config.Job, side card.Side, sheet *compose.Sheet, artifacts map[string][]byte, logger *log.Logger) (bool, error) {
	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()

	contentHash, err := contentHash(sheet)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "hash %s sheet", side)
	}

	allCached := true
	for _, format := range Formats(job) {
		name := ArtifactName(side, format)
		key := r.Keyer.ArtifactKey(contentHash, cache.ArtifactKeyOpts{Side: side.String(), Format: format})

		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			logger.Debug("cache read failed", "artifact", name, "error", err)
		}
		if err == nil && hit {
			cacheHooks.OnCacheHit(ctx, "artifact")
			logger.Debug("cache hit", "artifact", name)
			artifacts[name] = data
			continue
		}
		cacheHooks.OnCacheMiss(ctx, "artifact")
		allCached = false

		start := time.Now()
		hooks.OnRenderStart(ctx, job.Name, side.String())
		data, err = renderFormat(job, side, sheet, format)
		hooks.OnRenderComplete(ctx, job.Name, side.String(), len(data), time.Since(start), err)
		if err != nil {
			return false, fmt.Errorf("render %s: %w", name, err)
		}
		artifacts[name] = data

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			logger.Debug("cache write failed", "artifact", name, "error", err)
		} else {
			cacheHooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return allCached, nil
}

func renderFormat(job config.Job, side card.Side, sheet *compose.Sheet, format string) ([]byte, error) {
	title := fmt.Sprintf("%s %ss", job.Name, side)
	switch format {
	case FormatPDF:
		return sink.RenderPDF(sheet, sink.WithTitle(title))
	case FormatJSON:
		return sink.RenderJSON(sheet, sink.WithJSONName(title))
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
	}
}

// contentHash covers everything a rendered sheet depends on: the plan, the
// sheet options, each card's source and bytes in order, and the tool version.
func contentHash(sheet *compose.Sheet) (string, error) {
	type cardKey struct {
		Source string `json:"source"`
		Format string `json:"format"`
		Hash   string `json:"hash"`
	}
	key := struct {
		Version string          `json:"version"`
		Plan    layout.Plan     `json:"plan"`
		Options compose.Options `json:"options"`
		Cards   []cardKey       `json:"cards"`
	}{
		Version: buildinfo.Version,
		Plan:    sheet.Plan(),
		Options: sheet.Options(),
	}
	for page := range sheet.Pages() {
		for _, pc := range page.Cards {
			key.Cards = append(key.Cards, cardKey{
				Source: pc.Card.Source,
				Format: string(pc.Card.Format),
				Hash:   cache.Hash(pc.Card.Data),
			})
		}
	}
	return cache.HashJSON(key)
}

// Write saves every artifact of result to the job's output paths and returns
// the paths written, fronts first.
func (r *Runner) Write(result *Result) ([]string, error) {
	var written []string
	for _, side := range []card.Side{card.Front, card.Back} {
		for _, format := range Formats(result.Job) {
			data, ok := result.Artifacts[ArtifactName(side, format)]
			if !ok {
				continue
			}
			path := OutputPath(result.Job, side, format)
			if err := writeFile(path, data); err != nil {
				return written, err
			}
			r.Logger.Debug("wrote artifact", "path", path, "bytes", len(data))
			written = append(written, path)
		}
	}
	return written, nil
}

func writeFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (res *Result) warn(logger *log.Logger, msg string) {
	res.Warnings = append(res.Warnings, msg)
	logger.Warn(msg)
}
