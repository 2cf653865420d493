package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"audiotour/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}

	return lines
}

func selectRoute() (string, int64) {
	return `SELECT * FROM "routes" WHERE id = 'route-1'`, 1
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	base, buf := captureLogger()
	gormLogger := newGormSlogLogger(base, &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), selectRoute, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsFailedQuery(t *testing.T) {
	base, buf := captureLogger()
	gormLogger := newGormSlogLogger(base, &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), selectRoute, errors.New("connection reset"))

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.Equal(t, "Catalog query failed", lines[0]["msg"])
	assert.Equal(t, "route_catalog", lines[0]["component"])
	assert.Equal(t, "connection reset", lines[0]["error"])
}

func TestGormSlogLogger_WarnsOnSlowQuery(t *testing.T) {
	base, buf := captureLogger()
	gormLogger := newGormSlogLogger(base, &config.Config{})

	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), selectRoute, nil)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "Slow catalog query", lines[0]["msg"])
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	base, buf := captureLogger()
	quiet := newGormSlogLogger(base, &config.Config{})
	quiet.Trace(context.Background(), time.Now(), selectRoute, nil)
	assert.Empty(t, buf.String())

	cfg := &config.Config{}
	cfg.Env.Debug = true
	verbose := newGormSlogLogger(base, cfg)
	verbose.Trace(context.Background(), time.Now(), selectRoute, nil)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "Catalog query", lines[0]["msg"])
	assert.EqualValues(t, 1, lines[0]["rows"])
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	base, buf := captureLogger()
	gormLogger := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)

	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), selectRoute, errors.New("boom"))
	gormLogger.Warn(context.Background(), "table %s", "routes")

	assert.Empty(t, buf.String())
}

func TestLogCatalogPoolWait(t *testing.T) {
	base, buf := captureLogger()

	logCatalogPoolWait(context.Background(), base, sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.Empty(t, buf.String())

	logCatalogPoolWait(context.Background(), base,
		sql.DBStats{WaitCount: 3, WaitDuration: time.Millisecond},
		sql.DBStats{WaitCount: 5, WaitDuration: 201 * time.Millisecond, InUse: 4},
	)

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.EqualValues(t, 2, lines[0]["waits"])
	assert.EqualValues(t, 4, lines[0]["in_use_conns"])
}
