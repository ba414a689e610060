// Package ytdlp fetches YouTube videos through the yt-dlp binary. Acquisition
// runs an ordered list of strategies; the first success wins and every
// failure is kept for the aggregated error.
package ytdlp

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/thuralin/hardsub/internal/types"
)

type Adapter struct {
	bin       string
	maxHeight int
	logf      func(format string, args ...any)
}

func New(binPath string, maxHeight int, logf func(format string, args ...any)) *Adapter {
	if binPath == "" {
		binPath = "yt-dlp"
	}
	if maxHeight <= 0 {
		maxHeight = 1080
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Adapter{bin: binPath, maxHeight: maxHeight, logf: logf}
}

type strategy struct {
	name   string
	format string
}

func (a *Adapter) strategies() []strategy {
	return []strategy{
		// Separate best video + best audio, merged by yt-dlp. Best quality,
		// but the merge step can fail on throttled or fragmented streams.
		{
			name:   "merge",
			format: fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", a.maxHeight, a.maxHeight),
		},
		// Single progressive file. Lower ceiling, far fewer moving parts.
		{
			name:   "progressive",
			format: fmt.Sprintf("best[ext=mp4][height<=%d]/best", a.maxHeight),
		},
	}
}

func (a *Adapter) Fetch(ctx context.Context, videoID, destDir string) (string, error) {
	url := watchURL(videoID)
	var attempts []types.Attempt
	for _, st := range a.strategies() {
		a.logf("download strategy %q: %s", st.name, url)
		path, err := a.fetchOnce(ctx, st, videoID, destDir, url)
		if err == nil {
			a.logf("download strategy %q succeeded: %s", st.name, path)
			return path, nil
		}
		a.logf("download strategy %q failed: %v", st.name, err)
		attempts = append(attempts, types.Attempt{Strategy: st.name, Err: err})
		if ctx.Err() != nil {
			break
		}
	}
	return "", &types.AcquisitionError{VideoID: videoID, Attempts: attempts}
}

func (a *Adapter) fetchOnce(ctx context.Context, st strategy, videoID, destDir, url string) (string, error) {
	cmd := exec.CommandContext(ctx, a.bin,
		"-f", st.format,
		"-o", filepath.Join(destDir, videoID+".%(ext)s"),
		url,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("yt-dlp: %w\n%s", err, string(b))
	}
	return pickOutput(destDir, videoID)
}

// pickOutput locates the downloaded container. yt-dlp merges into whatever
// container fits the streams, so prefer .mp4 and fall back to the first match.
func pickOutput(destDir, videoID string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(destDir, videoID+".*"))
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no video file found after download of %s", videoID)
	}
	for _, m := range matches {
		if strings.EqualFold(filepath.Ext(m), ".mp4") {
			return m, nil
		}
	}
	return matches[0], nil
}

func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
