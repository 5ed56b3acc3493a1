// Package storage implements the JSON-array file store backing each
// service's record log.
package storage

import "github.com/haldor/keepintouch/internal/models"

// Store is the interface for one service's record log.
type Store interface {
	// Load returns all records in insertion order.
	Load() ([]models.Record, error)
	// Append adds one record and returns the new state.
	Append(rec models.Record) ([]models.Record, error)
	// Replace overwrites the log with recs.
	Replace(recs []models.Record) error
}
