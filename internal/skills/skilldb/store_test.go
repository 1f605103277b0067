package skilldb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/skills"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s, err := Open(ctx, filepath.Join(t.TempDir(), "skills.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSeedAndLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.SeedIfEmpty(ctx, skills.Builtin(skills.DefaultPercent)))

	table, err := s.Table(ctx, 70)
	require.NoError(t, err)
	require.Equal(t, skills.Builtin(skills.DefaultPercent).Len(), table.Len())
	require.Equal(t, 90, table.Percent("Python"))
	require.Equal(t, 70, table.Percent("Unknown-Skill-XYZ"))
}

func TestSeedSkipsPopulatedTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.Upsert(ctx, []skills.Entry{{Label: "Go", Percent: 85}}))
	require.NoError(t, s.SeedIfEmpty(ctx, skills.Builtin(skills.DefaultPercent)))

	table, err := s.Table(ctx, skills.DefaultPercent)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
}

func TestUpsertOverwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.Upsert(ctx, []skills.Entry{{Label: "Go", Percent: 60}}))
	require.NoError(t, s.Upsert(ctx, []skills.Entry{{Label: "Go", Percent: 90}}))

	table, err := s.Table(ctx, skills.DefaultPercent)
	require.NoError(t, err)
	require.Equal(t, 90, table.Percent("Go"))
}

func TestUpsertRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	err := openStore(t).Upsert(context.Background(), []skills.Entry{{Label: "Go", Percent: 150}})
	require.Error(t, err)
}
