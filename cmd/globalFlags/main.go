package globalFlags

import (
	"io"
	"log/slog"
	"os"
)

const (
	ConfigPathEnv     = "JOBCONF_CONFIG"
	DefaultConfigPath = "config.json"
)

// GlobalFlags are shared by every command.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
}

// ConfigPathDefault prefers $JOBCONF_CONFIG, which may come from .env.
func ConfigPathDefault() string {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path
	}
	return DefaultConfigPath
}

func (g *GlobalFlags) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if g.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
