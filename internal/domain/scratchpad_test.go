package domain

import (
	"net/http"
	"testing"
	"time"

	apperrors "github.com/shhac/scratch/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScratchPad_Defaults(t *testing.T) {
	id := NewPadID()
	pad := NewScratchPad(id)

	assert.Equal(t, id, pad.ID)
	assert.Equal(t, "New Scratch Pad", pad.Title)
	assert.Equal(t, MethodGet, pad.Method)
	assert.Empty(t, pad.URL)
	assert.Empty(t, pad.Body)
	assert.Empty(t, pad.RequestHeaders)
	assert.Empty(t, pad.ResponseBody)
	assert.Empty(t, pad.ResponseHeaders)
	assert.Equal(t, http.StatusOK, pad.ResponseStatus)
	assert.Zero(t, pad.ResponseTime)
	assert.Zero(t, pad.ResponseSize)
}

func TestNewPadID_Unique(t *testing.T) {
	seen := make(map[PadID]bool)
	for i := 0; i < 100; i++ {
		id := NewPadID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestScratchPad_ResponseSummary(t *testing.T) {
	pad := NewScratchPad(NewPadID())
	assert.Equal(t, "200 OK · 0s · 0 B", pad.ResponseSummary())

	pad.ResponseStatus = http.StatusNotFound
	pad.ResponseTime = 1234 * time.Microsecond
	pad.ResponseSize = 2048
	assert.Equal(t, "404 Not Found · 1ms · 2.0 KB", pad.ResponseSummary())

	pad.ResponseStatus = 799
	assert.Equal(t, "799 · 1ms · 2.0 KB", pad.ResponseSummary())
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSize(tt.n))
	}
}

func TestMethods_Order(t *testing.T) {
	assert.Equal(t,
		[]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		MethodNames(),
	)
	assert.Len(t, Methods(), 7)
}

func TestMethods_ReturnsCopy(t *testing.T) {
	m := Methods()
	m[0] = "BREW"
	assert.Equal(t, MethodGet, Methods()[0])
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
		assert.True(t, got.Valid())
	}

	for _, bad := range []string{"", "get", "CONNECT", "TRACE"} {
		_, err := ParseMethod(bad)
		var verr apperrors.ValidationError
		assert.ErrorAs(t, err, &verr, "ParseMethod(%q)", bad)
		assert.False(t, Method(bad).Valid())
	}
}
