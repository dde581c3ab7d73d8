package source

import (
	"go.uber.org/zap"

	"github.com/heritagecraft/sousuo/internal/models"
)

// Notifier receives content lifecycle events so an external durable index can
// stay consistent. The in-process scoring path never reads that index; these
// hooks exist purely for the out-of-scope retrieval tier.
type Notifier interface {
	// Indexed is called after a record is added.
	Indexed(record *models.Record)
	// Removed is called after a record is deleted.
	Removed(recordID string)
	// Reindexed is called after a record is updated in place.
	Reindexed(record *models.Record)
}

// NopNotifier discards all lifecycle events.
type NopNotifier struct{}

// Indexed implements Notifier.
func (NopNotifier) Indexed(*models.Record) {}

// Removed implements Notifier.
func (NopNotifier) Removed(string) {}

// Reindexed implements Notifier.
func (NopNotifier) Reindexed(*models.Record) {}

// LogNotifier logs lifecycle events. It stands in for a real index
// synchronization client during development and tests.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Indexed implements Notifier.
func (n *LogNotifier) Indexed(record *models.Record) {
	n.logger.Debug("record indexed",
		zap.String("id", record.ID),
		zap.String("kind", record.Kind.String()),
	)
}

// Removed implements Notifier.
func (n *LogNotifier) Removed(recordID string) {
	n.logger.Debug("record removed", zap.String("id", recordID))
}

// Reindexed implements Notifier.
func (n *LogNotifier) Reindexed(record *models.Record) {
	n.logger.Debug("record reindexed",
		zap.String("id", record.ID),
		zap.String("kind", record.Kind.String()),
	)
}
