package usecase

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/examprep/internal/entity"
)

// Notifier receives user-facing messages. Rendering and dismissal belong to the implementation.
type Notifier interface {
	Notify(ctx context.Context, n entity.Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n entity.Notification)

func (f NotifierFunc) Notify(ctx context.Context, n entity.Notification) { f(ctx, n) }

// LogNotifier writes notifications to a logrus logger.
type LogNotifier struct {
	Logger logrus.FieldLogger
}

func (l LogNotifier) Notify(_ context.Context, n entity.Notification) {
	entry := l.Logger.WithFields(logrus.Fields{"title": n.Title, "severity": n.Severity})
	if n.Severity == entity.SeverityError {
		entry.Warn(n.Description)
		return
	}
	entry.Info(n.Description)
}

// NotificationRecorder keeps every notification it receives, in order.
type NotificationRecorder struct {
	mu    sync.Mutex
	items []entity.Notification
}

func (r *NotificationRecorder) Notify(_ context.Context, n entity.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Notifications returns a copy of what has been recorded so far.
func (r *NotificationRecorder) Notifications() []entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Notification(nil), r.items...)
}

// MultiNotifier fans a notification out to every non-nil notifier.
func MultiNotifier(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(ctx context.Context, n entity.Notification) {
		for _, target := range notifiers {
			if target != nil {
				target.Notify(ctx, n)
			}
		}
	})
}

func discardNotifier() Notifier {
	return NotifierFunc(func(context.Context, entity.Notification) {})
}
