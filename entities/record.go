package entities

import "time"

// StoredRecord is one row of the record server: a backend record of any
// table, with its fields kept as JSON. RecordID is the identity exposed over
// the protocol and is unique per table.
type StoredRecord struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	Table     string         `gorm:"column:tbl;uniqueIndex:idx_tbl_record;not null" json:"table"`
	RecordID  int            `gorm:"uniqueIndex:idx_tbl_record;not null" json:"Id"`
	Fields    map[string]any `gorm:"serializer:json" json:"fields"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// RecordSequence is the high-water mark of issued record ids for one table.
// It only grows, so a deleted id is never handed out again.
type RecordSequence struct {
	Table string `gorm:"column:tbl;primaryKey"`
	Last  int    `gorm:"not null"`
}
