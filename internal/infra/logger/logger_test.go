package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	prod, err := New("production", "")
	require.NoError(t, err)
	assert.True(t, prod.Core().Enabled(zap.InfoLevel))
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))

	dev, err := New("development", "warn")
	require.NoError(t, err)
	assert.False(t, dev.Core().Enabled(zap.InfoLevel))
	assert.True(t, dev.Core().Enabled(zap.WarnLevel))

	_, err = New("production", "barulhento")
	assert.Error(t, err)
}
