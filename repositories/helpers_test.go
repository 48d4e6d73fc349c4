package repositories_test

import (
	"log/slog"
	"lost-found/domain"
	"lost-found/remote"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const testDeadline = 2 * time.Second

func newDiskStore(t *testing.T) *remote.DiskStore {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	store := remote.NewDiskStore(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	t.Cleanup(func() {
		store.Close()
		_ = db.Close()
	})
	return store
}

// tickingIDs hands out ids one millisecond apart, so natural key order
// follows creation order.
func tickingIDs() *domain.IDGenerator {
	var mu sync.Mutex
	current := time.UnixMilli(1_700_000_000_000)
	return domain.NewIDGeneratorWithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Millisecond)
		return current
	})
}
