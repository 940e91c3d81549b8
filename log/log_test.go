package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/op/go-logging.v1"

	"github.com/tuneinsight/polyring/config"
)

func TestBackend(t *testing.T) {

	t.Run("Stdout", func(t *testing.T) {
		buf := new(bytes.Buffer)
		b, err := NewFromConfig(&config.Logging{Level: "NOTICE"}, buf)
		require.NoError(t, err)

		l := b.GetLogger("test")
		l.Notice("sampled %d polynomials", 3)
		l.Debug("hidden")

		require.Contains(t, buf.String(), "NOTI test: sampled 3 polynomials")
		require.NotContains(t, buf.String(), "hidden")
		require.True(t, b.IsEnabledFor(logging.ERROR, "test"))
		require.False(t, b.IsEnabledFor(logging.DEBUG, "test"))
	})

	t.Run("File", func(t *testing.T) {
		f := filepath.Join(t.TempDir(), "polyring.log")
		b, err := New(f, "debug", false)
		require.NoError(t, err)

		b.GetLogger("file").Debug("first")
		require.NoError(t, b.Rotate())
		b.GetLogger("file").Info("second")
		require.NoError(t, b.Close())

		data, err := os.ReadFile(f)
		require.NoError(t, err)
		require.Contains(t, string(data), "DEBU file: first")
		require.Contains(t, string(data), "INFO file: second")
	})

	t.Run("Disabled", func(t *testing.T) {
		buf := new(bytes.Buffer)
		b, err := NewFromConfig(&config.Logging{Level: "DEBUG", Disable: true}, buf)
		require.NoError(t, err)
		b.GetLogger("test").Error("dropped")
		require.Zero(t, buf.Len())
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		_, err := New("", "TRACE", false)
		require.Error(t, err)
	})
}
