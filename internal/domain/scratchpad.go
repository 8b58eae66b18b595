package domain

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the title given to newly created scratch pads.
const DefaultTitle = "New Scratch Pad"

// PadID identifies a scratch pad independently of its position in the list.
type PadID string

// NewPadID returns a fresh random identifier.
func NewPadID() PadID {
	return PadID(uuid.NewString())
}

// Header is a single name/value pair. Header lists are ordered and may
// contain duplicate names.
type Header struct {
	Name  string
	Value string
}

// ScratchPad is a saved, editable HTTP request definition plus the last
// response received for it.
type ScratchPad struct {
	ID    PadID
	Title string

	Method         Method
	URL            string
	Body           string
	RequestHeaders []Header

	// Response fields stay at their defaults until a request is executed.
	ResponseBody    string
	ResponseHeaders []Header
	ResponseStatus  int
	ResponseTime    time.Duration
	ResponseSize    int
}

// NewScratchPad creates a pad with default values.
func NewScratchPad(id PadID) *ScratchPad {
	return &ScratchPad{
		ID:             id,
		Title:          DefaultTitle,
		Method:         MethodGet,
		ResponseStatus: http.StatusOK,
	}
}

// ResponseSummary formats the response status, time and size for display,
// e.g. "200 OK · 0s · 0 B".
func (p *ScratchPad) ResponseSummary() string {
	status := fmt.Sprintf("%d", p.ResponseStatus)
	if text := http.StatusText(p.ResponseStatus); text != "" {
		status += " " + text
	}
	return fmt.Sprintf("%s · %v · %s", status, p.ResponseTime.Round(time.Millisecond), FormatSize(p.ResponseSize))
}

// FormatSize renders a byte count as "512 B", "1.2 KB", "3.4 MB".
func FormatSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := unit, 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
