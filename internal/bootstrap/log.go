package bootstrap

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"

	"github.com/trackwell/trackwell/internal/conf"
	"github.com/trackwell/trackwell/pkg/utils"
)

// InitLog configures the shared logger from config: level, and rotated file
// output alongside stderr when a log file is set.
func InitLog(cfg conf.Log) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	utils.Log.SetLevel(level)
	utils.Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		utils.Log.SetOutput(io.MultiWriter(os.Stderr, rotated))
	}
}
