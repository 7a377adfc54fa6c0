package generator

import (
	"context"
	"fmt"

	"blocks-generator/core/database"
	"blocks-generator/core/world"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row is one persisted generator.
type Row struct {
	World string `gorm:"column:world;primaryKey;size:191" json:"world"`
	X     int    `gorm:"column:x;primaryKey;autoIncrement:false" json:"x"`
	Y     int    `gorm:"column:y;primaryKey;autoIncrement:false" json:"y"`
	Z     int    `gorm:"column:z;primaryKey;autoIncrement:false" json:"z"`
	Type  string `gorm:"column:type;not null;size:191" json:"type"`
}

// TableName overrides the table name.
func (Row) TableName() string {
	return "generators"
}

// Coord returns the coordinate the row refers to.
func (r Row) Coord() world.Coord {
	return world.Coord{World: r.World, X: r.X, Y: r.Y, Z: r.Z}
}

func rowFor(c world.Coord, typ string) Row {
	return Row{World: c.World, X: c.X, Y: c.Y, Z: c.Z, Type: typ}
}

const sqliteSchema = `CREATE TABLE IF NOT EXISTS generators (
	world TEXT NOT NULL,
	x INTEGER NOT NULL,
	y INTEGER NOT NULL,
	z INTEGER NOT NULL,
	type TEXT NOT NULL,
	PRIMARY KEY (world, x, y, z)
)`

// Store is the durable record of placed generators.
//
// Failures are logged and returned, but never fatal: the in-memory index stays
// authoritative for the rest of the process and nothing is retried.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore wraps db without touching the schema. Use OpenStore at startup.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// OpenStore creates the generators table if needed and returns the store.
func OpenStore(db *gorm.DB, logger *zap.Logger) (*Store, error) {
	s := NewStore(db, logger)
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	if s.db.Dialector.Name() == database.DriverSQLite {
		if err := s.db.Exec(sqliteSchema).Error; err != nil {
			return fmt.Errorf("failed to create generators table: %w", err)
		}
	} else if err := s.db.AutoMigrate(&Row{}); err != nil {
		return fmt.Errorf("failed to migrate generators table: %w", err)
	}

	missing, err := database.MissingColumns(s.db, Row{}.TableName(), "world", "x", "y", "z", "type")
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("generators table is missing columns %v", missing)
	}
	return nil
}

// Upsert inserts or replaces the row for c.
func (s *Store) Upsert(ctx context.Context, c world.Coord, typ string) error {
	row := rowFor(c, typ)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		s.logger.Error("Failed to save generator",
			zap.Stringer("coord", c),
			zap.String("type", typ),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save generator: %w", err)
	}
	return nil
}

// Delete removes the row for c. Deleting an absent row is not an error.
func (s *Store) Delete(ctx context.Context, c world.Coord) error {
	err := s.db.WithContext(ctx).
		Where("world = ? AND x = ? AND y = ? AND z = ?", c.World, c.X, c.Y, c.Z).
		Delete(&Row{}).Error
	if err != nil {
		s.logger.Error("Failed to remove generator", zap.Stringer("coord", c), zap.Error(err))
		return fmt.Errorf("failed to remove generator: %w", err)
	}
	return nil
}

// ScanAll returns every persisted row.
func (s *Store) ScanAll(ctx context.Context) ([]Row, error) {
	var rows []Row
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		s.logger.Error("Failed to load generators", zap.Error(err))
		return nil, fmt.Errorf("failed to load generators: %w", err)
	}
	return rows, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if err := database.Close(s.db); err != nil {
		s.logger.Error("Failed to close database", zap.Error(err))
		return err
	}
	return nil
}

// Unresolvable returns the rows whose type is not in registry. Restore drops
// them but leaves them stored.
func Unresolvable(rows []Row, registry *Registry) []Row {
	var out []Row
	for _, r := range rows {
		if !registry.Has(r.Type) {
			out = append(out, r)
		}
	}
	return out
}
