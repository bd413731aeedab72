package pidscan

import (
	"io"
	"time"
)

// Config holds user options for an extraction run
type Config struct {
	LogWarnings bool             // Whether to print geometry warnings
	Logger      io.Writer        // Custom logger for warnings (nil = stdout)
	Now         func() time.Time // Clock for the extraction timestamp (nil = time.Now)
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		LogWarnings: true,
		Logger:      nil, // stdout
		Now:         nil, // time.Now
	}
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
