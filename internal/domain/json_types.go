package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// ItemID is a catalog identifier. Catalog files carry it either as a JSON
// number or as a string; numeric ids are written back as numbers.
type ItemID string

// UnmarshalJSON accepts numbers and strings
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: id must be a number or string", ErrInvalidRecordShape)
	}
	*id = ItemID(n.String())
	return nil
}

// MarshalJSON writes integer ids as numbers and everything else as strings
func (id ItemID) MarshalJSON() ([]byte, error) {
	if id.isInteger() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ItemID) isInteger() bool {
	s := string(id)
	if s == "" || len(s) > 18 || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// StringList decodes either a single string or an array of strings
type StringList []string

// UnmarshalJSON accepts "Summer" as well as ["Summer", "Spring"]
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*l = nil
			return nil
		}
		*l = StringList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%w: expected string or string array", ErrInvalidRecordShape)
	}
	*l = list
	return nil
}

// FlexFloat decodes numbers and numeric strings, including comma decimals
// ("3,85"). Anything unparseable decodes to zero.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(parseLooseFloat(rawScalar(data)))
	return nil
}

// FlexInt decodes numbers and numeric strings ("1,234"). Anything
// unparseable decodes to zero.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	*n = FlexInt(parseLooseInt(rawScalar(data)))
	return nil
}

// FlexString decodes strings and numbers into their text form
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	*s = FlexString(rawScalar(data))
	return nil
}

// rawScalar returns the text of a JSON string or number; other values yield "".
func rawScalar(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return ""
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ""
	}
	return n.String()
}

// ParseRating parses a rating value as found in datasets ("4.2", "3,85")
func ParseRating(s string) float64 {
	return parseLooseFloat(strings.TrimSpace(s))
}

// ParseCount parses a vote count as found in datasets ("1,234", "987")
func ParseCount(s string) int {
	return parseLooseInt(strings.TrimSpace(s))
}

func parseLooseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseLooseInt accepts plain integers, float notation ("12.0", "1e3") and
// thousands separators ("1,234", "1,234.5"). Fractions are truncated and
// out-of-range values clamp to the int bounds.
func parseLooseInt(s string) int {
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if !strings.Contains(s, ",") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return clampInt(f)
		}
	}

	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	v, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		return -v
	}
	return v
}

func clampInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
