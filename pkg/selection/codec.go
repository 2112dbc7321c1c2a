package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedData is returned when a serialized store cannot be decoded.
var ErrMalformedData = errors.New("malformed selection data")

// Marshal encodes the store as {"<year>": {"<month>": [day, ...]}}. Day
// arrays keep the set's insertion order.
func Marshal(s Store) ([]byte, error) {
	out := make(map[string]map[string][]int)
	for ym, days := range s.months {
		if days.Len() == 0 {
			continue
		}
		y := strconv.Itoa(ym.Year)
		if out[y] == nil {
			out[y] = make(map[string][]int)
		}
		out[y][strconv.Itoa(ym.Month)] = days.Slice()
	}
	return json.Marshal(out)
}

// Unmarshal decodes data produced by Marshal. Empty day arrays are dropped
// and duplicate days collapse.
func Unmarshal(data []byte) (Store, error) {
	var raw map[string]map[string][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return Store{}, fmt.Errorf("selection: %w: %v", ErrMalformedData, err)
	}

	months := make(map[YearMonth]*Days)
	for ys, ms := range raw {
		year, err := strconv.Atoi(ys)
		if err != nil || strconv.Itoa(year) != ys {
			return Store{}, fmt.Errorf("selection: %w: year key %q", ErrMalformedData, ys)
		}
		for mstr, list := range ms {
			month, err := strconv.Atoi(mstr)
			if err != nil || month < 1 || month > 12 || strconv.Itoa(month) != mstr {
				return Store{}, fmt.Errorf("selection: %w: month key %q in %d", ErrMalformedData, mstr, year)
			}
			for _, day := range list {
				if !validDay(day) {
					return Store{}, fmt.Errorf("selection: %w: day %d in %d-%d", ErrMalformedData, day, year, month)
				}
			}
			if days := NewDays(list...); days.Len() > 0 {
				months[YearMonth{Year: year, Month: month}] = days
			}
		}
	}
	if len(months) == 0 {
		return Store{}, nil
	}
	return Store{months: months}, nil
}

// MarshalJSON implements json.Marshaler.
func (s Store) MarshalJSON() ([]byte, error) {
	return Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Store) UnmarshalJSON(data []byte) error {
	decoded, err := Unmarshal(data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
