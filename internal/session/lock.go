package session

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// AcquireLock takes an exclusive flock on the data dir so two gateway
// processes never share one session database.
func AcquireLock(dataDir string) (*flock.Flock, error) {
	fl := flock.New(filepath.Join(dataDir, "gateway.lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another gateway instance is already using %s", dataDir)
	}
	return fl, nil
}
