package preview

import (
	"context"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/config"
	"github.com/Zachkp/portfolio-widgets/internal/skills"
	"github.com/Zachkp/portfolio-widgets/internal/skills/skilldb"
)

// LoadTable picks the skill table source configured in cfg: the SQLite
// database, then a table file, then the built-in table.
func LoadTable(ctx context.Context, cfg config.SkillsConfig, logger *zap.Logger) (*skills.Table, error) {
	switch {
	case cfg.DBPath != "":
		store, err := skilldb.Open(ctx, cfg.DBPath, logger)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		if err := store.SeedIfEmpty(ctx, skills.Builtin(cfg.DefaultPercent)); err != nil {
			return nil, err
		}
		logger.Info("Skill table loaded from database", zap.String("path", cfg.DBPath))
		return store.Table(ctx, cfg.DefaultPercent)

	case cfg.TablePath != "":
		logger.Info("Skill table loaded from file", zap.String("path", cfg.TablePath))
		return skills.LoadFile(cfg.TablePath, cfg.DefaultPercent)

	default:
		return skills.Builtin(cfg.DefaultPercent), nil
	}
}
