package repository

import (
	"encoding/json"
	"time"
)

func marshalJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// marshalNullableJSON stores empty slices as SQL NULL instead of "[]".
func marshalNullableJSON[T any](v []T) (any, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return marshalJSON(v)
}

func unmarshalJSON(s string, v any) error {
	return json.Unmarshal([]byte(s), v)
}

// parseTime is forgiving on read: stored values are always written by us,
// so a parse failure degrades to the zero time rather than failing a load.
func parseTime(s, layout string) time.Time {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}
