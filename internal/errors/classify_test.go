package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		title    string
		severity ErrorSeverity
	}{
		{"pad not found", ErrPadNotFound, "Scratch Pad Not Found", SeverityWarning},
		{"wrapped pad not found", fmt.Errorf("rename: %w", ErrPadNotFound), "Scratch Pad Not Found", SeverityWarning},
		{"no selection", ErrNoSelection, "Nothing Selected", SeverityInfo},
		{"validation", ValidationError{Field: "title", Message: "must not be blank"}, "Validation Error", SeverityError},
		{"unknown", errors.New("boom"), "Unexpected Error", SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uiErr := ClassifyError(tt.err)
			require.NotNil(t, uiErr)
			assert.Equal(t, tt.title, uiErr.Title)
			assert.Equal(t, tt.severity, uiErr.Severity)
			assert.ErrorIs(t, uiErr, tt.err)
		})
	}
}

func TestClassifyError_ValidationMessage(t *testing.T) {
	err := fmt.Errorf("rename pad: %w", ValidationError{Field: "title", Message: "must not be blank"})

	uiErr := ClassifyError(err)
	require.NotNil(t, uiErr)
	assert.Equal(t, "must not be blank", uiErr.Message)
	assert.Equal(t, "title: must not be blank", uiErr.Details)
}

func TestClassifyError_PassesThroughUIError(t *testing.T) {
	original := &UIError{Title: "Custom", Severity: SeverityWarning}

	uiErr := ClassifyError(fmt.Errorf("wrapped: %w", original))
	assert.Same(t, original, uiErr)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "url: bad", ValidationError{Field: "url", Message: "bad"}.Error())
	assert.Equal(t, "bad", ValidationError{Message: "bad"}.Error())
}
