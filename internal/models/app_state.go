package models

import "time"

// AppStateRow is the single row of the app_state table. Document holds the
// JSON encoded aggregate.
type AppStateRow struct {
	ID        int16     `db:"id"`
	Document  []byte    `db:"document"`
	UpdatedAt time.Time `db:"updated_at"`
}
