package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/shhac/scratch/internal/logging"
	"github.com/shhac/scratch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Debug)
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"unset", "", false},
		{"true", "true", true},
		{"one", "1", true},
		{"false", "false", false},
		{"garbage is ignored", "yes please", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SCRATCH_DEBUG", tt.value)
			assert.Equal(t, tt.want, ConfigFromEnv().Debug)
		})
	}
}

func TestNewWithLogger(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()

	cfg := DefaultConfig()
	a := NewWithLogger(fyneApp, cfg, logging.NewNopLogger())

	require.NotNil(t, a.State())
	assert.Same(t, cfg, a.Config())
	assert.Equal(t, fyneApp, a.FyneApp())
	assert.NotNil(t, a.Logger())
	assert.Equal(t, 0, a.State().Shell.Len())

	status, _ := a.State().Status.State.Get()
	assert.Equal(t, model.StatusIdle, status)
	msg, _ := a.State().Status.Message.Get()
	assert.Equal(t, "No scratch pads", msg)
}
