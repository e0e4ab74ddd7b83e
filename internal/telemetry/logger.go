package telemetry

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

var (
	logger     *logrus.Logger
	loggerOnce sync.Once
	fileHook   *FileHook
)

// FileHook copies log entries to a JSON lines file.
type FileHook struct {
	mu      sync.Mutex
	file    *os.File
	encoder *json.Encoder
}

// InitLogger sets up the process logger: JSON output with @timestamp,
// level and message keys plus the service fields on every entry.
func InitLogger(cfg *Config) error {
	var err error
	loggerOnce.Do(func() {
		l := logrus.New()

		level, parseErr := logrus.ParseLevel(cfg.LogLevel)
		if parseErr != nil {
			level = logrus.InfoLevel
		}
		l.SetLevel(level)

		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "@timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
		l.AddHook(&serviceHook{fields: logrus.Fields{
			"service.name":    cfg.ServiceName,
			"service.version": cfg.ServiceVersion,
			"environment":     cfg.Environment,
		}})

		if cfg.LogsFilePath != "" {
			fileHook, err = NewFileHook(cfg.LogsFilePath)
			if err != nil {
				l.WithError(err).Error("Failed to open log file")
			} else {
				l.AddHook(fileHook)
			}
		}
		logger = l
	})
	return err
}

// serviceHook stamps the service identity on every entry.
type serviceHook struct {
	fields logrus.Fields
}

func (h *serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *serviceHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}

// NewFileHook opens path for appending, creating its directory.
func NewFileHook(path string) (*FileHook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileHook{file: file, encoder: json.NewEncoder(file)}, nil
}

// Levels returns the log levels this hook is interested in
func (f *FileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire writes one entry.
func (f *FileHook) Fire(entry *logrus.Entry) error {
	data := make(map[string]interface{}, len(entry.Data)+3)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data[k] = v
	}
	data["@timestamp"] = entry.Time.Format(timestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.encoder.Encode(data)
}

// Close closes the log file
func (f *FileHook) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file.Close()
}

// L returns the process logger, or the logrus standard logger before
// InitLogger has run.
func L() *logrus.Logger {
	if logger == nil {
		return logrus.StandardLogger()
	}
	return logger
}

// WithContext adds trace information to the logger
func WithContext(ctx context.Context) *logrus.Entry {
	entry := L().WithContext(ctx)

	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.IsValid() {
		entry = entry.WithFields(logrus.Fields{
			"trace.id": sc.TraceID().String(),
			"span.id":  sc.SpanID().String(),
		})
	}
	return entry
}

// CloseLogger closes any open resources
func CloseLogger() error {
	if fileHook != nil {
		return fileHook.Close()
	}
	return nil
}
