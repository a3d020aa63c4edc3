package scheduler

import (
	"context"
	"time"

	"github.com/chambagt/chamba-payments/pkg/models"
)

// CompletionScheduler defines the interface for a component that schedules a
// project completion event for later delivery. The simulated gateway uses it
// to advance fully escrowed test projects to ready_to_release after a delay.
type CompletionScheduler interface {
	// ScheduleCompletion enqueues a completion event to be delivered after the
	// given delay.
	ScheduleCompletion(ctx context.Context, event *models.CompletionEvent, delay time.Duration) error
}
