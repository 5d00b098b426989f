package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/retroenv/n64coderegions/internal/region"
)

// Store records scan results in a SQLite database.
type Store struct {
	db *bun.DB
}

// Open opens (or creates) the SQLite database at path and ensures its
// schema exists. Pass "" to get a shared-cache in-memory database, useful for
// tests and one-off runs that don't need persistence across processes; every
// Store opened with "" in the same process sees the same in-memory data.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	s := &Store{db: bun.NewDB(sqldb, sqlitedialect.New())}
	if err := s.migrate(ctx); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().Model((*Scan)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("creating scans table: %w", err)
	}
	if _, err := s.db.NewCreateTable().Model((*Region)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("creating regions table: %w", err)
	}
	return nil
}

// RecordScan saves the outcome of one analysis run and returns its ID.
func (s *Store) RecordScan(ctx context.Context, romPath string, romSize int, regions []region.CodeRegion) (string, error) {
	scan := &Scan{
		ID:      uuid.NewString(),
		RomPath: romPath,
		RomSize: romSize,
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(scan).Exec(ctx); err != nil {
			return fmt.Errorf("inserting scan: %w", err)
		}

		rows := make([]*Region, len(regions))
		for i, r := range regions {
			rows[i] = &Region{
				ScanID:   scan.ID,
				RomStart: r.RomStart,
				RomEnd:   r.RomEnd,
				HasRSP:   r.HasRSP,
			}
		}
		if len(rows) > 0 {
			if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
				return fmt.Errorf("inserting regions: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return scan.ID, nil
}

// Regions returns the regions recorded for a scan, ordered by ROM offset.
func (s *Store) Regions(ctx context.Context, scanID string) ([]Region, error) {
	var rows []Region
	err := s.db.NewSelect().
		Model(&rows).
		Where("scan_id = ?", scanID).
		OrderExpr("rom_start ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying regions for scan %s: %w", scanID, err)
	}
	return rows, nil
}
