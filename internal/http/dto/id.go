package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// ID is a snowflake identifier. It is written as a JSON string and read from
// either a string or a number.
type ID int64

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(id), 10))), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(b), `"`)
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("invalid id %s", b)
	}
	*id = ID(v)
	return nil
}

// Int64s converts a list of IDs for the service layer.
func Int64s(ids []ID) []int64 {
	out := make([]int64, len(ids))
	for i, v := range ids {
		out[i] = int64(v)
	}
	return out
}
