package types

import (
	"fmt"
	"strings"
	"time"
)

// Stage names the step of the job at which a failure happened.
type Stage string

const (
	StageAcquireMedia   Stage = "acquire media"
	StageFetchSubtitles Stage = "fetch subtitles"
	StageConvert        Stage = "convert subtitles"
	StageStyle          Stage = "style subtitles"
	StageRender         Stage = "render"
	StagePublish        Stage = "publish"
)

// StageError wraps the underlying cause of a failed stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// ValidationError rejects bad or missing job input before any external call.
// When Valid is empty the field was required and absent; otherwise Value was
// not one of the allowed options.
type ValidationError struct {
	Field string
	Value string
	Valid []string
}

func (e *ValidationError) Error() string {
	if len(e.Valid) == 0 {
		return "Missing required input: " + e.Field
	}
	return fmt.Sprintf("Invalid %s %q. Valid options: %s", e.Field, e.Value, strings.Join(e.Valid, ", "))
}

// Attempt records one failed acquisition strategy.
type Attempt struct {
	Strategy string
	Err      error
}

// AcquisitionError aggregates the failures of every acquisition strategy.
type AcquisitionError struct {
	VideoID  string
	Attempts []Attempt
}

func (e *AcquisitionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "all download strategies failed for %s", e.VideoID)
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, "; %s: %v", a.Strategy, a.Err)
	}
	return b.String()
}

// StorageError wraps an object-storage get or put failure.
type StorageError struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s s3://%s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// RenderError carries the diagnostic output of a failed renderer invocation.
type RenderError struct {
	Output string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("renderer failed: %v", e.Err)
	}
	return fmt.Sprintf("renderer failed: %v\n%s", e.Err, e.Output)
}

func (e *RenderError) Unwrap() error { return e.Err }

// TimeoutError marks an external call that exceeded its time budget. It is
// fatal for the job; the core never retries.
type TimeoutError struct {
	Op     string
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s exceeded its %s budget", e.Op, e.Budget)
}
