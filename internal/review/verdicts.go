// internal/review/verdicts.go

// Package review turns raw status-service payloads into operator-facing
// messages: shape validation, record parsing, verdict rendering.
package review

import "sort"

// Review statuses the service is documented to emit. The set is closed;
// anything else is rejected rather than passed through.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

// verdicts maps each known status to its display text. The texts come
// from the service itself and are intentionally not translated.
var verdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the display text for a known status.
func Verdict(status string) (string, bool) {
	v, ok := verdicts[status]
	return v, ok
}

// KnownStatuses returns the accepted statuses in stable order, for
// error messages.
func KnownStatuses() []string {
	out := make([]string, 0, len(verdicts))
	for s := range verdicts {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
