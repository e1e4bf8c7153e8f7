package argmap

import (
	"fmt"
	"math"
	"strconv"
)

// String retrieves a string value using the key.
// Attempts conversion from the other scalar types the store can hold.
func (s *Store) String(key string) (string, error) {
	val, err := s.Get(key)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for key %q", val, key)
	}
}

// Int64 retrieves an int64 value using the key.
// Attempts conversion from floats, parsable strings, and booleans.
func (s *Store) Int64(key string) (int64, error) {
	val, err := s.Get(key)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("cannot convert fractional value %v to int64 for key %q", v, key)
		}
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to int64 for key %q: %w", v, key, err)
		}
		return i, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot convert type %T to int64 for key %q", val, key)
	}
}

// Float64 retrieves a float64 value using the key.
// Attempts conversion from integers, parsable strings, and booleans.
func (s *Store) Float64(key string) (float64, error) {
	val, err := s.Get(key)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to float64 for key %q: %w", v, key, err)
		}
		return f, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot convert type %T to float64 for key %q", val, key)
	}
}

// Bool retrieves a boolean value using the key.
// Attempts conversion from numbers (0 is false) and parsable strings.
func (s *Store) Bool(key string) (bool, error) {
	val, err := s.Get(key)
	if err != nil {
		return false, err
	}

	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("cannot convert string %q to bool for key %q: %w", v, key, err)
		}
		return b, nil
	case int64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case float64:
		return v != 0, nil
	default:
		return false, fmt.Errorf("cannot convert type %T to bool for key %q", val, key)
	}
}
