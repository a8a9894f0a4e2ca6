package numeric

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("id must be a positive integer")

// ID is a resource id that accepts either a JSON number or a numeric string.
type ID int64

func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, value)
	}
	return id, nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidID, data)
		}
		parsed, err := ParseID(raw)
		if err != nil {
			return err
		}
		*id = ID(parsed)
		return nil
	}

	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}
	*id = ID(parsed)
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(id), 10)), nil
}

// UnmarshalParam lets echo bind ids from query strings.
func (id *ID) UnmarshalParam(param string) error {
	parsed, err := ParseID(param)
	if err != nil {
		return err
	}
	*id = ID(parsed)
	return nil
}
