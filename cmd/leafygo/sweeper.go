package main

import (
	"context"
	"log"
	"time"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/services"
)

const sweepInterval = time.Minute

// startCursorSweeper periodically purges expired cursor positions. Reads
// already filter them out, so this only reclaims storage.
func startCursorSweeper(ctx context.Context, svc *services.CursorService) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()

		run := func() {
			swept, err := svc.Sweep()
			if err != nil {
				log.Printf("[sweeper] failed to purge expired cursor positions: %v", err)
				return
			}
			if swept > 0 {
				log.Printf("[sweeper] purged %d expired cursor positions", swept)
			}
		}

		run()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				run()
			}
		}
	}()
}
