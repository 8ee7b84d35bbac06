package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slicer/internal/adapters/detector"
	"go.trai.ch/slicer/internal/core/domain"
)

func env(tty bool, vars map[string]string) detector.Env {
	return detector.Env{
		IsTerminal: func() bool { return tty },
		Getenv:     func(k string) string { return vars[k] },
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tty      bool
		ci       string
		expected detector.OutputMode
	}{
		{name: "terminal without CI", tty: true, expected: detector.ModeTUI},
		{name: "CI=true forces linear", tty: true, ci: "true", expected: detector.ModeLinear},
		{name: "CI=1 forces linear", tty: true, ci: "1", expected: detector.ModeLinear},
		{name: "CI=false keeps terminal", tty: true, ci: "false", expected: detector.ModeTUI},
		{name: "pipe is linear", tty: false, expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := detector.Detect(env(tt.tty, map[string]string{"CI": tt.ci}))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag     string
		expected detector.OutputMode
	}{
		{flag: "", expected: detector.ModeAuto},
		{flag: "auto", expected: detector.ModeAuto},
		{flag: "tui", expected: detector.ModeTUI},
		{flag: "linear", expected: detector.ModeLinear},
		{flag: "ci", expected: detector.ModeLinear},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			t.Parallel()
			got, err := detector.ParseMode(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := detector.ParseMode("fancy")

	require.ErrorContains(t, err, domain.ErrInvalidOutputMode.Error())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	pipe := env(false, nil)

	assert.Equal(t, detector.ModeTUI, detector.Resolve(detector.ModeTUI, pipe))
	assert.Equal(t, detector.ModeLinear, detector.Resolve(detector.ModeAuto, pipe))
	assert.Equal(t, detector.ModeTUI, detector.Resolve(detector.ModeAuto, env(true, nil)))
}

func TestOutputMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
