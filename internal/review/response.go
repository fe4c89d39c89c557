// internal/review/response.go
package review

import (
	"encoding/json"
	"fmt"

	"github.com/tamzrod/homewatch/internal/apperr"
)

// Response is one cycle's validated payload. Homeworks entries stay raw:
// element-level checks belong to ParseStatus, and only the first element
// is ever parsed.
type Response struct {
	Homeworks []json.RawMessage

	// CurrentDate is the service clock (unix seconds), nil when the
	// payload omitted it. The watermark advances only when present.
	CurrentDate *int64
}

// CheckResponse validates the top-level shape of a raw payload:
// a JSON object with a "homeworks" array. Each violation gets its own
// schema error so recurring failures stay distinguishable downstream.
func CheckResponse(raw json.RawMessage) (Response, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top == nil {
		// top stays nil for a literal null, which is not a mapping either.
		return Response{}, fmt.Errorf("%w: response is not a mapping", apperr.ErrSchema)
	}

	rawList, ok := top["homeworks"]
	if !ok {
		return Response{}, fmt.Errorf("%w: missing %q key", apperr.ErrSchema, "homeworks")
	}

	var homeworks []json.RawMessage
	if err := json.Unmarshal(rawList, &homeworks); err != nil {
		return Response{}, fmt.Errorf("%w: %q is not a sequence", apperr.ErrSchema, "homeworks")
	}

	resp := Response{Homeworks: homeworks}

	if rawDate, ok := top["current_date"]; ok {
		var date int64
		if err := json.Unmarshal(rawDate, &date); err == nil {
			resp.CurrentDate = &date
		}
	}

	return resp, nil
}
