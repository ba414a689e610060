package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/thuralin/hardsub/internal/pipeline"
	"github.com/thuralin/hardsub/internal/types"
)

// Per-call budgets match the dispatcher's expectations: downloads are slow,
// conversion is quick, burning re-encodes the whole video.
const (
	fetchTimeout   = 15 * time.Minute
	convertTimeout = 5 * time.Minute
	burnTimeout    = 30 * time.Minute
	storageTimeout = 5 * time.Minute
)

func run(cmd *cobra.Command, args []string) error {
	jobPath, _ := cmd.Flags().GetString("job")

	var job types.JobRequest
	switch {
	case jobPath != "":
		j, err := readJob(cmd, jobPath)
		if err != nil {
			return err
		}
		job = j
	case len(args) == 1:
		job.VideoID = args[0]
		job.SubtitleStyle, _ = cmd.Flags().GetString("style")
		job.StorageBucket, _ = cmd.Flags().GetString("bucket")
		job.StorageEndpointURL, _ = cmd.Flags().GetString("endpoint")
		job.PolishedPrefix, _ = cmd.Flags().GetString("polished-prefix")
		job.HardsubPrefix, _ = cmd.Flags().GetString("hardsub-prefix")
	default:
		return errors.New("a video_id argument or --job is required")
	}

	fontName, _ := cmd.Flags().GetString("font")
	fontSize, _ := cmd.Flags().GetInt("font-size")
	maxHeight, _ := cmd.Flags().GetInt("max-height")

	cfg := pipeline.Config{
		Job: job,

		FontName:  fontName,
		FontSize:  fontSize,
		MaxHeight: maxHeight,

		FFmpegPath: "ffmpeg",
		YtDlpPath:  "yt-dlp",

		FetchTimeout:   fetchTimeout,
		ConvertTimeout: convertTimeout,
		BurnTimeout:    burnTimeout,
		StorageTimeout: storageTimeout,

		Logf: func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		},
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	res := pipeline.Run(ctx, cfg)

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	if res.Status != types.StatusDone {
		return errors.New(res.Error)
	}
	return nil
}

// readJob decodes a job request, accepting both the bare request shape and
// the serverless event envelope {"input": {...}}.
func readJob(cmd *cobra.Command, path string) (types.JobRequest, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return types.JobRequest{}, fmt.Errorf("read job: %w", err)
		}
		defer f.Close()
		r = f
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return types.JobRequest{}, fmt.Errorf("read job: %w", err)
	}

	var envelope struct {
		Input *types.JobRequest `json:"input"`
	}
	if err := json.Unmarshal(b, &envelope); err == nil && envelope.Input != nil {
		return *envelope.Input, nil
	}

	var job types.JobRequest
	if err := json.Unmarshal(b, &job); err != nil {
		return types.JobRequest{}, fmt.Errorf("parse job: %w", err)
	}
	return job, nil
}
