package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"yuletide/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "yuletide", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "migrate", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestMigrateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yuletide.db")
	t.Setenv("DB_PATH", path)
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDIS_ADDR", "")

	run := func() string {
		var out bytes.Buffer
		cmd := NewRootCommand()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"migrate"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
		return out.String()
	}

	assert.Contains(t, run(), "22 seed rows inserted")
	assert.Contains(t, run(), "0 seed rows inserted")

	store, err := repo.NewSQLiteGiftRepo(path)
	require.NoError(t, err)
	defer store.Close()
	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(repo.SeedGifts), count)
}

func TestVersionCommand(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "1.2.3\n", out.String())
}
