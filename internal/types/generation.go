//nolint:revive // types is a standard Go package name pattern
package types

// GenerationStatus is the lifecycle state of an advert generation
type GenerationStatus string

// Generation lifecycle states
const (
	StatusIdle    GenerationStatus = "idle"
	StatusPending GenerationStatus = "pending"
	StatusSuccess GenerationStatus = "success"
	StatusFailed  GenerationStatus = "failed"
)

// GenerationResult is what the display surface renders.
// Content is set only on success and ErrorMessage only on failure.
type GenerationResult struct {
	ID           string           `json:"id,omitempty"`
	Status       GenerationStatus `json:"status"`
	Content      string           `json:"content,omitempty"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

// IdleResult is the result before anything was submitted.
func IdleResult() GenerationResult {
	return GenerationResult{Status: StatusIdle}
}

// PendingResult marks a submission that is waiting on the provider.
func PendingResult(id string) GenerationResult {
	return GenerationResult{ID: id, Status: StatusPending}
}

// SucceededResult carries the generated advert markdown.
func SucceededResult(id, content string) GenerationResult {
	return GenerationResult{ID: id, Status: StatusSuccess, Content: content}
}

// FailedResult carries a user-facing error message.
func FailedResult(id, message string) GenerationResult {
	return GenerationResult{ID: id, Status: StatusFailed, ErrorMessage: message}
}

// IsPending reports whether a generation is in flight.
func (r GenerationResult) IsPending() bool {
	return r.Status == StatusPending
}
