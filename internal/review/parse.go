// internal/review/parse.go
package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tamzrod/homewatch/internal/apperr"
)

// Homework is a single work-item record. Pointers distinguish an absent
// field from an empty one; both name and status are required.
type Homework struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// ParseStatus extracts one homework record and renders the notification
// sentence for its verdict.
func ParseStatus(raw json.RawMessage) (string, error) {
	var hw Homework
	if err := json.Unmarshal(raw, &hw); err != nil {
		return "", fmt.Errorf("%w: homework entry is not an object", apperr.ErrSchema)
	}

	if hw.Name == nil {
		return "", fmt.Errorf("%w: %q", apperr.ErrMissingField, "homework_name")
	}
	if hw.Status == nil {
		return "", fmt.Errorf("%w: %q", apperr.ErrMissingField, "status")
	}

	verdict, ok := Verdict(*hw.Status)
	if !ok {
		return "", fmt.Errorf("%w: %q (known: %s)",
			apperr.ErrUnknownStatus, *hw.Status, strings.Join(KnownStatuses(), ", "))
	}

	return fmt.Sprintf(`Status of review "%s" has changed. %s`, *hw.Name, verdict), nil
}
