package types

const (
	StatusDone  = "done"
	StatusError = "error"
)

const (
	DefaultPolishedPrefix = "storage/polished"
	DefaultHardsubPrefix  = "storage/hard-subbed"
	DefaultSubtitleStyle  = "opaque_black"
)

// JobRequest is the structured input of one hardsub job, as dispatched by the
// serverless queue or assembled from CLI flags.
type JobRequest struct {
	VideoID            string `json:"video_id"`
	RequestID          string `json:"request_id,omitempty"`
	StorageBucket      string `json:"storage_bucket,omitempty"`
	StorageEndpointURL string `json:"storage_endpoint_url,omitempty"`
	PolishedPrefix     string `json:"polished_prefix,omitempty"`
	HardsubPrefix      string `json:"hardsub_prefix,omitempty"`
	AccessKey          string `json:"access_key,omitempty"`
	SecretKey          string `json:"secret_key,omitempty"`
	SubtitleStyle      string `json:"subtitle_style,omitempty"`
}

// WithDefaults fills the optional fields a dispatcher is allowed to omit.
func (r JobRequest) WithDefaults() JobRequest {
	if r.PolishedPrefix == "" {
		r.PolishedPrefix = DefaultPolishedPrefix
	}
	if r.HardsubPrefix == "" {
		r.HardsubPrefix = DefaultHardsubPrefix
	}
	if r.SubtitleStyle == "" {
		r.SubtitleStyle = DefaultSubtitleStyle
	}
	return r
}

// ResolveRequestID mirrors the dispatcher convention: an explicit request_id
// wins, then the video_id, then "unknown" for unidentifiable jobs.
func (r JobRequest) ResolveRequestID() string {
	if r.RequestID != "" {
		return r.RequestID
	}
	if r.VideoID != "" {
		return r.VideoID
	}
	return "unknown"
}

// SubtitleKey is the object-storage key of the polished Burmese WebVTT.
func (r JobRequest) SubtitleKey() string {
	return r.PolishedPrefix + "/" + r.VideoID + ".my.vtt"
}

// OutputKey is the object-storage key of the hardsubbed MP4.
func (r JobRequest) OutputKey() string {
	return r.HardsubPrefix + "/" + r.VideoID + ".mp4"
}

// JobResult is the sole observable outcome of a job.
type JobResult struct {
	Status        string `json:"status"`
	RequestID     string `json:"request_id"`
	VideoID       string `json:"video_id,omitempty"`
	OutputKey     string `json:"output_key,omitempty"`
	OutputPath    string `json:"output_path,omitempty"`
	Bucket        string `json:"bucket,omitempty"`
	SubtitleStyle string `json:"subtitle_style,omitempty"`
	Error         string `json:"error,omitempty"`
}
