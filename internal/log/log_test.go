package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })
	return &buf
}

func TestLog_FormatsFields(t *testing.T) {
	buf := capture(t)

	Info(CatForm, "submit started", "fields", 8, "state", "submitting")

	line := buf.String()
	require.Contains(t, line, "[INFO] [form] submit started fields=8 state=submitting")
	require.True(t, strings.HasSuffix(line, "\n"))
}

func TestLog_OddFieldCount(t *testing.T) {
	buf := capture(t)

	Warn(CatUI, "orphan", "key")

	require.Contains(t, buf.String(), "key=<missing>")
}

func TestLog_ErrorErr(t *testing.T) {
	buf := capture(t)

	ErrorErr(CatAccount, "create failed", errors.New("boom"), "email", "a@b.co")
	ErrorErr(CatAccount, "nil error", nil)

	out := buf.String()
	require.Contains(t, out, "[ERROR] [account] create failed email=a@b.co error=boom")
	require.Contains(t, out, "error=<nil>")
}

func TestLog_MinLevel(t *testing.T) {
	buf := capture(t)
	SetMinLevel(LevelWarn)

	Debug(CatForm, "hidden")
	Info(CatForm, "hidden")
	Error(CatForm, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLog_Disabled(t *testing.T) {
	buf := capture(t)
	SetEnabled(false)

	Error(CatForm, "nothing")

	require.Empty(t, buf.String())
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	SetOutput(nil)
	require.NotPanics(t, func() {
		Info(CatConfig, "dropped")
		SetEnabled(true)
		SetMinLevel(LevelDebug)
	})
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatConfig, "loaded", "path", "config.yaml")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded path=config.yaml")
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
