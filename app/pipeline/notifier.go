package pipeline

import (
	"log/slog"

	"github.com/tfrwatch/tfrwatch/app/advisory"
)

var _ Notifier = (*LogNotifier)(nil)

// LogNotifier is the default downstream consumer: it announces each
// new match on the log. Real delivery (desktop notifications, bots)
// hangs off the same interface in separate programs.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(matches []advisory.Parsed) {
	for _, m := range matches {
		slog.Info("New advisory match",
			"notam_id", m.NOTAMID,
			"location", m.Location,
			"issued", m.IssueDate,
			"begin", m.Begin,
			"end", m.End,
			"reason", m.Reason)
	}
}
