// Package log configures the process-wide logrus logger.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

const (
	HttpXRequestId = "X-Request-Id"
	CtxRequestId   = "request_id"
)

type ctxKey struct{}

// Init sets level, output and format of the standard logger. Unknown levels
// fall back to info. Logs go to stderr so command output on stdout stays clean.
func Init(logLevel string) {
	InitWithOutput(logLevel, os.Stderr)
}

// InitWithOutput is Init with an explicit destination.
func InitWithOutput(logLevel string, out io.Writer) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Errorf("failed to parse log level: %v, err: %v", logLevel, err)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(true)
	logrus.SetOutput(out)
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		DisableColors:   true,
		DisableQuote:    true,
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
	})
}

// WithRequestId stores a request id in ctx for GetLogger.
func WithRequestId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// GetLogger returns an entry on base carrying the request id stored in ctx, if any.
// A nil base means the standard logger.
func GetLogger(ctx context.Context, base *logrus.Entry) *logrus.Entry {
	if base == nil {
		base = NewLogger()
	}

	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return base.WithField(CtxRequestId, v)
	}

	return base
}

// NewLogger returns an entry on the standard logger.
func NewLogger() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}
