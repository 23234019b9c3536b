package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a money or meter value exchanged as a JSON number.
// It also decodes numeric strings, blank strings and null, because the
// back-office forms submit raw input text; blanks and null decode to zero.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	v, err := parseLenientNumber(data)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	*a = Amount(v)
	return nil
}

// Float returns the amount as a float64.
func (a Amount) Float() float64 {
	return float64(a)
}

// RefID is a foreign key sent by the forms, either as a number or as the
// string value of a <select> option.
type RefID int64

// UnmarshalJSON implements json.Unmarshaler.
func (r *RefID) UnmarshalJSON(data []byte) error {
	v, err := parseLenientNumber(data)
	if err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	if v != float64(int64(v)) {
		return fmt.Errorf("invalid id: %v is not an integer", v)
	}
	*r = RefID(int64(v))
	return nil
}

func parseLenientNumber(data []byte) (float64, error) {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "" {
		return 0, nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(strings.ReplaceAll(str, ",", ""))
		if s == "" {
			return 0, nil
		}
	}
	return strconv.ParseFloat(s, 64)
}
