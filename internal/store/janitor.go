package store

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunJanitor sweeps sessions idle longer than ttl every interval until ctx
// is cancelled. A non-positive ttl disables eviction.
func RunJanitor(ctx context.Context, st Store, ttl, interval time.Duration) {
	if ttl <= 0 {
		return
	}
	if interval <= 0 {
		interval = ttl / 2
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := st.Sweep(ctx, now.Add(-ttl)); n > 0 {
				log.Debug().Int("evicted", n).Int("live", st.Len()).Msg("swept idle games")
			}
		}
	}
}
