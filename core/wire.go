package core

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// The mobile client exchanges record ids as decimal strings and boolean
// flags as 0/1 integers. ID and Flag carry those coercions so the rest of
// the code only ever sees integers and bools.

// ID is a record identifier, stored as an integer and surfaced as its
// decimal string form on the wire.
type ID int

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.Itoa(int(id)))), nil
}

// UnmarshalJSON accepts an id as a decimal string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == "" {
		*id = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.Errorf("invalid id %s", string(data))
	}
	*id = ID(n)
	return nil
}

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Flag is a boolean surfaced as 1/0 on the wire. Inbound it accepts a bool,
// an int or a string: 0, "0", "false", "" and false map to false, everything
// else to true.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	var val interface{}
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	switch v := val.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case float64:
		*f = v != 0
	case string:
		*f = v != "" && v != "0" && v != "false"
	default:
		return errors.Errorf("invalid flag %s", string(data))
	}
	return nil
}

func (f Flag) Bool() bool {
	return bool(f)
}
