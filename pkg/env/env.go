package env

import (
	"fmt"
	"os"
	"strings"

	pkgstrings "github.com/klwxsrx/docscan-portal/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}
	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	var result T
	str, ok := os.LookupEnv(key)
	if !ok {
		return result, fmt.Errorf("env %s with type %T not found", key, result)
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s with type %T has invalid value: %w", key, result, err)
	}

	return result, nil
}

// ParseOptional returns nil if the variable is not set or empty
func ParseOptional[T pkgstrings.SupportedPointerParsingTypes](key string) (T, error) {
	var result T
	str, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(str) == "" {
		return result, nil
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s with type %T has invalid value: %w", key, result, err)
	}

	return result, nil
}

func ParseList[T pkgstrings.SupportedValueParsingTypes](key string, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, fmt.Errorf("env %s with type list not found", key)
	}

	strList := strings.Split(str, delimiter)
	result := make([]T, 0, len(strList))
	for _, item := range strList {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		value, err := pkgstrings.ParseTypedValue[T](item)
		if err != nil {
			return nil, fmt.Errorf("env %s with type list has invalid value: %w", key, err)
		}
		result = append(result, value)
	}

	return result, nil
}
