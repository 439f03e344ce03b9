package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datakit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("fold", slog.Int("k", 5), slog.String("col", "id"))
	require.Equal(t, "fold", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "k", g[0].Key)
	assert.Equal(t, "col", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"component", logger.Component("groups"), "component", "groups"},
		{"rows", logger.Rows(12), "rows", int64(12)},
		{"columns", logger.Columns(3), "columns", int64(3)},
		{"groups", logger.Groups(4), "groups", int64(4)},
		{"method", logger.Method("n_dist"), "method", "n_dist"},
		{"path", logger.Path("/tmp/x.csv"), "path", "/tmp/x.csv"},
		{"step", logger.Step("load"), "step", "load"},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	t.Run("empty path is dropped", func(t *testing.T) {
		assert.True(t, logger.Path("").Equal(slog.Attr{}))
	})
}
