package strings

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		bool | int | uint | float64 | string | time.Time | time.Duration | uuid.UUID
	}

	SupportedPointerParsingTypes interface {
		*bool | *int | *uint | *float64 | *string | *time.Time | *time.Duration | *uuid.UUID
	}
)

func ParseTypedValue[T SupportedValueParsingTypes | SupportedPointerParsingTypes](value string) (T, error) {
	var result any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		result, err = strconv.ParseBool(value)
	case *bool:
		result, err = toPointer(strconv.ParseBool(value))
	case int:
		result, err = strconv.Atoi(value)
	case *int:
		result, err = toPointer(strconv.Atoi(value))
	case uint:
		result, err = parseUint(value)
	case *uint:
		result, err = toPointer(parseUint(value))
	case float64:
		result, err = strconv.ParseFloat(value, 64)
	case *float64:
		result, err = toPointer(strconv.ParseFloat(value, 64))
	case string:
		result, err = value, nil
	case *string:
		result, err = &value, nil
	case time.Time:
		result, err = parseTime(value)
	case *time.Time:
		result, err = toPointer(parseTime(value))
	case time.Duration:
		result, err = time.ParseDuration(value)
	case *time.Duration:
		result, err = toPointer(time.ParseDuration(value))
	case uuid.UUID:
		result, err = uuid.Parse(value)
	case *uuid.UUID:
		result, err = toPointer(uuid.Parse(value))
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}
	if err != nil {
		return blank, fmt.Errorf("convert to type %T: %w", blank, err)
	}

	return result.(T), nil
}

func parseUint(value string) (uint, error) {
	v, err := strconv.ParseUint(value, 10, 64)
	return uint(v), err
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	unixTime, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("RFC3339, RFC3339Nano or Unix time expected")
	}
	if unixTime < 0 {
		return time.Time{}, errors.New("got negative seconds value")
	}

	return time.Unix(unixTime, 0), nil
}

func toPointer[T any](v T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return &v, nil
}
