package tasks

import (
	"context"

	"github.com/edgard/jinjadialog/internal/config"
)

// ScheduledTaskFunc is the signature of every scheduled task. Tasks should
// respect ctx cancellation.
type ScheduledTaskFunc func(ctx context.Context) error

// RegisterAllTasks returns every task keyed by its scheduler config name.
func RegisterAllTasks(deps TaskDeps) map[string]ScheduledTaskFunc {
	tasks := map[string]ScheduledTaskFunc{
		config.TemplateCachePurgeTask: newTemplateCachePurgeTask(deps),
	}

	deps.Logger.Info("Initialized scheduled tasks", "count", len(tasks))
	return tasks
}
