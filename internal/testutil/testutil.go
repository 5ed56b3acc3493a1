// Package testutil provides shared test helpers for setting up
// temporary record stores.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/haldor/keepintouch/internal/storage"
)

// TestStore creates a file store in a temporary directory that is
// automatically cleaned up.
func TestStore(t *testing.T) *storage.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	return store
}
