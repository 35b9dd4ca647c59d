package repositories

import (
	"RadiologyCenter/database"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const (
	lockTTL       = 10 * time.Second
	lockRetries   = 3
	lockRetryWait = 2 * time.Second
)

// acquireLock takes a Redis write lock for the given key and returns a
// release function. Acquisition is retried a few times before giving up.
func acquireLock(ctx context.Context, key string) (func(), error) {
	value := uuid.New().String()

	var locked bool
	var err error
	for i := 0; i < lockRetries; i++ {
		locked, err = database.NewLock(ctx, key, value, lockTTL)
		if err == nil && locked {
			break
		}
		if i < lockRetries-1 {
			time.Sleep(lockRetryWait)
		}
	}
	if !locked {
		return nil, fmt.Errorf("failed to acquire lock %q after retries: %w", key, err)
	}

	release := func() {
		if err := database.ReleaseLock(ctx, key, value); err != nil {
			log.Printf("Failed to release lock %q: %v", key, err)
		}
	}
	return release, nil
}
