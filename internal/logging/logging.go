// Package logging routes the standard logger and gin's writers to stdout and,
// when configured, a size-rotated file.
package logging

import (
	"io"
	"log"
	"os"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the log writers. Closing the returned value closes the
// rotated file, if any.
func Setup(cfg *config.Config) io.Closer {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if cfg.LogFile == "" {
		log.SetOutput(os.Stdout)
		gin.DefaultWriter = os.Stdout
		gin.DefaultErrorWriter = os.Stderr
		return nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}

	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	gin.DefaultWriter = io.MultiWriter(os.Stdout, rotator)
	gin.DefaultErrorWriter = io.MultiWriter(os.Stderr, rotator)
	return rotator
}
