package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func sqlFn() (string, int64) { return "SELECT * FROM assets", 3 }

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		elapsed time.Duration
		err     error
		wantMsg string
	}{
		{"error logged", gormlogger.Warn, 0, errors.New("deadlock"), "SQL error"},
		{"record not found ignored", gormlogger.Warn, 0, gorm.ErrRecordNotFound, ""},
		{"slow query warned", gormlogger.Warn, time.Second, nil, "Slow SQL"},
		{"fast query silent at warn", gormlogger.Warn, 0, nil, ""},
		{"fast query at info", gormlogger.Info, 0, nil, "SQL query"},
		{"silent drops errors", gormlogger.Silent, 0, errors.New("x"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			l := NewGormLogger(zap.New(core), tt.level, WithSlowThreshold(100*time.Millisecond))

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.wantMsg == "" {
				assert.Zero(t, logs.Len())
				return
			}
			if assert.Equal(t, 1, logs.Len()) {
				entry := logs.All()[0]
				assert.Equal(t, tt.wantMsg, entry.Message)
				assert.Equal(t, "SELECT * FROM assets", entry.ContextMap()["sql"])
			}
		})
	}
}

func TestGormLogger_InheritsRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core)
	ctx, _ := WithRequestID(context.Background(), base, "req-7")

	NewGormLogger(base, gormlogger.Error).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Equal(t, "req-7", logs.All()[0].ContextMap()["request_id"])
}

func TestGormLogger_LogModeClones(t *testing.T) {
	l := NewGormLogger(zap.NewNop(), gormlogger.Warn)
	info := l.LogMode(gormlogger.Info).(*GormLogger)

	assert.Equal(t, gormlogger.Info, info.level)
	assert.Equal(t, gormlogger.Warn, l.level)
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel(""))
}
