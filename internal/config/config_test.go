package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rebate-reconciliation/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg := config.Load(filepath.Join(t.TempDir(), "nope.env"))

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
		assert.Equal(t, 3, cfg.OpenAI.MaxRetries)
		assert.Equal(t, 60*time.Second, cfg.OpenAI.Timeout)
		assert.Equal(t, "docs/rebates/mapping.xlsx", cfg.Reference.MappingPath)
		assert.Equal(t, "docs/events/tipps.xlsx", cfg.Reference.TippsPath)
		assert.Equal(t, 4, cfg.Batch.Concurrency)
	})

	t.Run("env file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte(
			"OPENAI_API_KEY=sk-test\n"+
				"OPENAI_MODEL=gpt-4o-mini\n"+
				"BATCH_CONCURRENCY=8\n",
		), 0o644))

		cfg := config.Load(path)
		assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
		assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
		assert.Equal(t, 8, cfg.Batch.Concurrency)
	})
}
