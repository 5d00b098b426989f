// Package store persists scan results in a SQLite database via bun.
package store

import (
	"time"

	"github.com/uptrace/bun"
)

// Scan represents a single analysis run over one ROM image.
type Scan struct {
	bun.BaseModel `bun:"table:scans"`

	ID        string `bun:",pk"`
	RomPath   string
	RomSize   int
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Regions []Region `bun:"rel:has-many,join:id=scan_id"`
}

// Region is a single discovered code region, tied back to the scan that
// found it.
type Region struct {
	bun.BaseModel `bun:"table:regions"`

	ID       int64  `bun:",pk,autoincrement"`
	ScanID   string `bun:",notnull"`
	RomStart int    `bun:",notnull"`
	RomEnd   int    `bun:",notnull"`
	HasRSP   bool
}
