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
	CtxRequestId   = "requestId"
)

// InitLog configures the standard logger. format is "text" (default) or
// "json".
func InitLog(logLevel, format string) {
	initLog(os.Stdout, logLevel, format)
}

func initLog(out io.Writer, logLevel, format string) {
	logrus.SetOutput(out)
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Errorf("failed to parse log level: %v, err: %v", logLevel, err)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(true)

	prettyfier := func(frame *runtime.Frame) (string, string) {
		return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
	}
	if format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat:  "2006-01-02T15:04:05.000Z07:00",
			CallerPrettyfier: prettyfier,
		})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat:  "2006-01-02 15:04:05",
		FullTimestamp:    true,
		DisableColors:    true,
		DisableQuote:     true,
		CallerPrettyfier: prettyfier,
	})
}

// WithRequestId stores id in ctx so GetLogger tags entries with it.
func WithRequestId(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxRequestId, id)
}

func GetLogger(c context.Context) *logrus.Entry {
	v := c.Value(CtxRequestId)
	if v != nil {
		return logrus.WithFields(logrus.Fields{
			CtxRequestId: v,
		})
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func NewLogger() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}
