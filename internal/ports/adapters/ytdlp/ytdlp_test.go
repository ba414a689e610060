package ytdlp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStrategies_OrderAndHeightCap(t *testing.T) {
	a := New("yt-dlp", 1080, nil)
	sts := a.strategies()
	if len(sts) != 2 {
		t.Fatalf("expected 2 strategies, got %d", len(sts))
	}
	if sts[0].name != "merge" || sts[1].name != "progressive" {
		t.Fatalf("unexpected strategy order: %s, %s", sts[0].name, sts[1].name)
	}
	if !strings.Contains(sts[0].format, "height<=1080") {
		t.Fatalf("merge format misses height cap: %s", sts[0].format)
	}
	if !strings.Contains(sts[1].format, "ext=mp4") {
		t.Fatalf("progressive format should prefer mp4 containers: %s", sts[1].format)
	}
}

func TestPickOutput_PrefersMP4(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"abc123.webm", "abc123.mp4"} {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	got, err := pickOutput(tmp, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "abc123.mp4" {
		t.Fatalf("pickOutput = %s, want abc123.mp4", got)
	}
}

func TestPickOutput_FallsBackToFirstMatch(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "abc123.webm"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := pickOutput(tmp, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != "abc123.webm" {
		t.Fatalf("pickOutput = %s, want abc123.webm", got)
	}
}

func TestPickOutput_NoFiles(t *testing.T) {
	if _, err := pickOutput(t.TempDir(), "abc123"); err == nil {
		t.Fatal("expected error when no downloaded file exists")
	}
}

func TestWatchURL(t *testing.T) {
	if got := watchURL("dQw4w9WgXcQ"); got != "https://www.youtube.com/watch?v=dQw4w9WgXcQ" {
		t.Fatalf("unexpected watch URL: %s", got)
	}
}
