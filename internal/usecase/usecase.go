package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/thuralin/hardsub/internal/domain/styles"
	"github.com/thuralin/hardsub/internal/domain/subtitles"
	"github.com/thuralin/hardsub/internal/ports"
	"github.com/thuralin/hardsub/internal/types"
)

type Deps struct {
	Source ports.MediaSource
	Store  ports.ObjectStore
	Video  ports.VideoTool
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

// Budgets caps each external call. Exceeding one fails the job; the core
// never retries on its own.
type Budgets struct {
	Fetch   time.Duration
	Convert time.Duration
	Burn    time.Duration
	Storage time.Duration
}

type Input struct {
	Job      types.JobRequest
	WorkDir  string
	FontName string
	FontSize int
	Logf     func(format string, args ...any)
	Budgets  Budgets
}

// Run drives one job through its linear stage sequence. Every failure is
// converted into a structured error result here; nothing escapes as an
// unstructured crash, and a partially rendered file never reaches publish.
func (u Usecase) Run(ctx context.Context, in Input) types.JobResult {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	job := in.Job.WithDefaults()
	reqID := job.ResolveRequestID()

	// Validation gate: reject before any external collaborator is invoked.
	if job.VideoID == "" {
		return errResult(reqID, &types.ValidationError{Field: "video_id"})
	}
	rec, err := styles.Resolve(job.SubtitleStyle)
	if err != nil {
		return errResult(reqID, err)
	}
	if job.StorageBucket == "" {
		return errResult(reqID, &types.ValidationError{Field: "storage_bucket"})
	}

	videoPath := ""
	err = callWithBudget(ctx, in.Budgets.Fetch, "media acquisition", func(c context.Context) error {
		var ferr error
		videoPath, ferr = u.d.Source.Fetch(c, job.VideoID, in.WorkDir)
		return ferr
	})
	if err != nil {
		return failResult(logf, reqID, types.StageAcquireMedia, err)
	}
	logf("acquired media: %s", videoPath)

	vttPath := filepath.Join(in.WorkDir, job.VideoID+".my.vtt")
	err = callWithBudget(ctx, in.Budgets.Storage, "subtitle download", func(c context.Context) error {
		return u.d.Store.Download(c, job.StorageBucket, job.SubtitleKey(), vttPath)
	})
	if err != nil {
		return failResult(logf, reqID, types.StageFetchSubtitles, err)
	}

	assPath := filepath.Join(in.WorkDir, job.VideoID+".ass")
	err = callWithBudget(ctx, in.Budgets.Convert, "subtitle conversion", func(c context.Context) error {
		return u.d.Video.ConvertToASS(c, vttPath, assPath)
	})
	if err != nil {
		return failResult(logf, reqID, types.StageConvert, err)
	}

	if err := restyleDocument(assPath, in.FontName, in.FontSize, rec, logf); err != nil {
		return failResult(logf, reqID, types.StageStyle, err)
	}

	outPath := filepath.Join(in.WorkDir, job.VideoID+".hardsub.mp4")
	err = callWithBudget(ctx, in.Budgets.Burn, "subtitle burn", func(c context.Context) error {
		return u.d.Video.BurnSubtitles(c, videoPath, assPath, outPath)
	})
	if err != nil {
		return failResult(logf, reqID, types.StageRender, err)
	}

	outputKey := job.OutputKey()
	err = callWithBudget(ctx, in.Budgets.Storage, "media publish", func(c context.Context) error {
		return u.d.Store.Upload(c, outPath, job.StorageBucket, outputKey)
	})
	if err != nil {
		return failResult(logf, reqID, types.StagePublish, err)
	}

	return types.JobResult{
		Status:        types.StatusDone,
		RequestID:     reqID,
		VideoID:       job.VideoID,
		OutputKey:     outputKey,
		OutputPath:    "s3://" + job.StorageBucket + "/" + outputKey,
		Bucket:        job.StorageBucket,
		SubtitleStyle: job.SubtitleStyle,
	}
}

// restyleDocument rewrites the converted ASS in place with the Burmese font
// and the chosen presentation policy. A document without style lines is a
// valid degenerate case, not an error.
func restyleDocument(assPath, fontName string, fontSize int, rec styles.Record, logf func(string, ...any)) error {
	b, err := os.ReadFile(assPath)
	if err != nil {
		return err
	}
	doc := subtitles.ApplyStyle(subtitles.Parse(string(b)), fontName, fontSize, rec)
	logf("styled %d style line(s) with font %q size %d", doc.StyleLineCount(), fontName, fontSize)
	return os.WriteFile(assPath, []byte(doc.String()), 0o644)
}

// callWithBudget runs one external call under its time budget and converts a
// deadline hit into a TimeoutError. A zero budget means uncapped.
func callWithBudget(ctx context.Context, budget time.Duration, op string, fn func(context.Context) error) error {
	if budget <= 0 {
		return fn(ctx)
	}
	cctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()
	err := fn(cctx)
	if err != nil && errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return &types.TimeoutError{Op: op, Budget: budget}
	}
	return err
}

func errResult(reqID string, err error) types.JobResult {
	return types.JobResult{Status: types.StatusError, RequestID: reqID, Error: err.Error()}
}

func failResult(logf func(string, ...any), reqID string, stage types.Stage, err error) types.JobResult {
	serr := &types.StageError{Stage: stage, Err: err}
	logf("job failed: %v", serr)
	return errResult(reqID, serr)
}
