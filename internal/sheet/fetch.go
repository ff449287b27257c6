package sheet

// FetchStatus is the terminal state of a content fetch.
type FetchStatus string

const (
	StatusSuccess  FetchStatus = "success"
	StatusFallback FetchStatus = "fallback"
	StatusFailed   FetchStatus = "failed"
)

// FallbackReason explains where fallback content came from.
type FallbackReason string

const (
	ReasonNone         FallbackReason = ""
	ReasonOfflineCache FallbackReason = "offline-cache"
	ReasonSampleData   FallbackReason = "sample-data"
	ReasonPlaceholder  FallbackReason = "placeholder"
)

// Message is the user-facing explanation for a fallback.
func (r FallbackReason) Message() string {
	switch r {
	case ReasonOfflineCache:
		return "Using cached copy"
	case ReasonSampleData:
		return "Using sample data"
	case ReasonPlaceholder:
		return "Content not available"
	default:
		return ""
	}
}
