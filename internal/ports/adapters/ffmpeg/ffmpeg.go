package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/thuralin/hardsub/internal/types"
)

type Adapter struct {
	ffmpeg string
	logf   func(format string, args ...any)
}

func New(ffmpegPath string, logf func(format string, args ...any)) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Adapter{ffmpeg: ffmpegPath, logf: logf}
}

// ConvertToASS converts a WebVTT (or any subtitle format ffmpeg reads) into a
// base ASS document. Styling happens afterwards; this is format conversion
// only.
func (a *Adapter) ConvertToASS(ctx context.Context, subPath, assPath string) error {
	a.logf("converting subtitles: %s -> %s", subPath, assPath)
	cmd := exec.CommandContext(ctx, a.ffmpeg, "-y", "-i", subPath, assPath)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg convert subtitles: %w\n%s", err, string(b))
	}
	return nil
}

// BurnSubtitles burns the styled ASS document into the video. A non-zero
// renderer exit is a RenderError with the captured output; burning is never
// retried since a failure almost always means a bad input.
func (a *Adapter) BurnSubtitles(ctx context.Context, inMP4, assPath, outMP4 string) error {
	a.logf("burning subtitles: %s -> %s", assPath, outMP4)
	cmd := exec.CommandContext(ctx, a.ffmpeg, BurnArgs(inMP4, assPath, outMP4)...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return &types.RenderError{Output: string(b), Err: fmt.Errorf("ffmpeg burn subtitles: %w", err)}
	}
	return nil
}

// BurnArgs builds the renderer invocation. The ass filter goes through libass
// with HarfBuzz shaping; the plain subtitles filter does not shape Burmese
// clusters and produces disconnected glyphs while still looking fine for
// Latin text. Burning requires a full re-encode, so a stream copy is not an
// option.
func BurnArgs(inMP4, assPath, outMP4 string) []string {
	return []string{
		"-y",
		"-i", inMP4,
		"-vf", "ass=" + escapeFilterPath(assPath),
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "23",
		"-c:a", "aac",
		"-b:a", "128k",
		outMP4,
	}
}

func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	return p
}
