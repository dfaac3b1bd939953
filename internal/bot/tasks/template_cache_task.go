package tasks

import (
	"context"
	"fmt"
	"time"
)

// newTemplateCachePurgeTask drops compiled templates so that edits to the
// catalog are picked up and memory from one-off templates is released.
func newTemplateCachePurgeTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "template_cache_purge")

	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("template cache purge cancelled: %w", err)
		}
		if deps.Registry == nil {
			return fmt.Errorf("template cache purge: no registry configured")
		}

		startTime := time.Now()
		cleaned := deps.Registry.CleanCaches()
		log.InfoContext(ctx, "Template caches purged", "environments", cleaned, "duration", time.Since(startTime))
		return nil
	}
}
