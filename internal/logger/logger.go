package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with request context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// FromGinContext creates a logger carrying the request's user and request ID
func FromGinContext(c *gin.Context) *Logger {
	logger := New()

	if email := c.GetString("email"); email != "" {
		logger.Entry = logger.Entry.WithField("user", email)
	} else if keyName := c.GetString("api_key_name"); keyName != "" {
		logger.Entry = logger.Entry.WithField("api_key", keyName)
	}
	if requestID := c.GetString("request_id"); requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
