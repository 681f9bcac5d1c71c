package debug

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "VLIST_DEBUG"

// NewLogger returns a debug-level logger appending to path. An empty path
// falls back to $VLIST_DEBUG; if that is empty too, the logger is a no-op.
// The returned close function flushes and closes the file.
func NewLogger(path string) (*zap.Logger, func() error, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	l := zap.New(core)

	closeFn := func() error {
		_ = l.Sync()
		return f.Close()
	}
	return l, closeFn, nil
}
