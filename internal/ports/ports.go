package ports

import "context"

// MediaSource fetches the source video for a video ID into destDir and
// returns the local file path.
type MediaSource interface {
	Fetch(ctx context.Context, videoID, destDir string) (string, error)
}

// ObjectStore moves files between local disk and bucket+key addressed
// object storage.
type ObjectStore interface {
	Download(ctx context.Context, bucket, key, destPath string) error
	Upload(ctx context.Context, srcPath, bucket, key string) error
}

// VideoTool wraps the external converter/renderer as opaque one-shot
// transformations.
type VideoTool interface {
	ConvertToASS(ctx context.Context, subPath, assPath string) error
	BurnSubtitles(ctx context.Context, inMP4, assPath, outMP4 string) error
}
