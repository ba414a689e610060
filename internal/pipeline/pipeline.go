package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/thuralin/hardsub/internal/ports"
	"github.com/thuralin/hardsub/internal/ports/adapters/ffmpeg"
	"github.com/thuralin/hardsub/internal/ports/adapters/s3"
	"github.com/thuralin/hardsub/internal/ports/adapters/ytdlp"
	"github.com/thuralin/hardsub/internal/types"
	"github.com/thuralin/hardsub/internal/usecase"
)

// Environment fallbacks for storage configuration a dispatcher may omit from
// the job input.
const (
	envBucket    = "HARDSUB_S3_BUCKET"
	envEndpoint  = "HARDSUB_S3_ENDPOINT_URL"
	envAccessKey = "AWS_ACCESS_KEY_ID"
	envSecretKey = "AWS_SECRET_ACCESS_KEY"
)

type Config struct {
	Job types.JobRequest

	// Font policy for the burned subtitles. Job configuration rather than
	// process globals so colocated invocations cannot interfere.
	FontName string
	FontSize int

	MaxHeight int

	FFmpegPath string
	YtDlpPath  string

	FetchTimeout   time.Duration
	ConvertTimeout time.Duration
	BurnTimeout    time.Duration
	StorageTimeout time.Duration

	Logf func(format string, args ...any)
}

func (c Config) Validate() error {
	if c.FontName == "" {
		return errors.New("font name is empty")
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be > 0")
	}
	if c.MaxHeight <= 0 {
		return fmt.Errorf("max height must be > 0")
	}
	_, _, err := s3.ParseEndpointURL(c.Job.StorageEndpointURL)
	return err
}

// Run executes one hardsub job in an isolated scratch workspace, removed on
// every exit path. The returned result is the job's sole observable outcome.
func Run(ctx context.Context, cfg Config) types.JobResult {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	job := withEnvFallbacks(cfg.Job)
	reqID := job.ResolveRequestID()

	store, err := s3.New(s3.Options{
		EndpointURL: job.StorageEndpointURL,
		AccessKey:   job.AccessKey,
		SecretKey:   job.SecretKey,
		Logf:        logf,
	})
	if err != nil {
		return types.JobResult{Status: types.StatusError, RequestID: reqID, Error: err.Error()}
	}

	workDir, err := os.MkdirTemp("", workDirPattern(job.VideoID))
	if err != nil {
		return types.JobResult{Status: types.StatusError, RequestID: reqID, Error: fmt.Sprintf("create workspace: %v", err)}
	}
	defer os.RemoveAll(workDir)
	logf("workspace: %s", workDir)

	uc := usecase.New(usecase.Deps{
		Source: ytdlp.New(cfg.YtDlpPath, cfg.MaxHeight, logf),
		Store:  store,
		Video:  ffmpeg.New(cfg.FFmpegPath, logf),
	})

	return uc.Run(ctx, usecase.Input{
		Job:      job,
		WorkDir:  workDir,
		FontName: cfg.FontName,
		FontSize: cfg.FontSize,
		Logf:     logf,
		Budgets: usecase.Budgets{
			Fetch:   cfg.FetchTimeout,
			Convert: cfg.ConvertTimeout,
			Burn:    cfg.BurnTimeout,
			Storage: cfg.StorageTimeout,
		},
	})
}

func withEnvFallbacks(job types.JobRequest) types.JobRequest {
	if job.StorageBucket == "" {
		job.StorageBucket = os.Getenv(envBucket)
	}
	if job.StorageEndpointURL == "" {
		job.StorageEndpointURL = os.Getenv(envEndpoint)
	}
	if job.AccessKey == "" {
		job.AccessKey = os.Getenv(envAccessKey)
	}
	if job.SecretKey == "" {
		job.SecretKey = os.Getenv(envSecretKey)
	}
	return job
}

func workDirPattern(videoID string) string {
	name := normalizePathSegment(videoID)
	if name == "" {
		name = "job"
	}
	return "hardsub-" + name + "-"
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// ensure adapters implement ports
var _ ports.MediaSource = (*ytdlp.Adapter)(nil)
var _ ports.ObjectStore = (*s3.Adapter)(nil)
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
