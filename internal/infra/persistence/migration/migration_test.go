package migration

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS_PairsUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected file in migrations: %s", name)
		}
	}

	assert.Equal(t, ups, downs)
}

func TestMigrationsFS_AddressesCascadeWithContact(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "migrations/000003_create_addresses.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "REFERENCES contacts (id) ON DELETE CASCADE")
}

func TestDown_RejectsNonPositiveSteps(t *testing.T) {
	err := Down(context.Background(), nil, nil, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be positive")
}

func TestSlogMigrateLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	adapter := &slogMigrateLogger{logger: logger}

	adapter.Printf("applied %d", 3)

	assert.Contains(t, buf.String(), "migrate: applied 3")
	assert.False(t, adapter.Verbose())
}
