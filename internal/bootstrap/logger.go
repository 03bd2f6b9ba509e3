package bootstrap

import (
	"layover-os/config"
	"layover-os/pkg/log"
)

func NewLogger(cfg config.LoggerConfig) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Level,
		Mode:         cfg.Mode,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
		FilePath:     cfg.FilePath,
	})
}
