package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// GetEnv reads an environment variable as a string, int, bool or float64,
// falling back to defaultValue when the variable is unset or empty. An unset
// variable is fine, a value that does not parse is a configuration mistake
// and panics.
func GetEnv[T ~string | ~int | ~bool | ~float64](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}

	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		panic(err)
	}
	return parsed
}

// GetRequiredEnv is GetEnv without a fallback: a missing or empty variable
// aborts the process.
func GetRequiredEnv[T ~string | ~int | ~bool | ~float64](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}

	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return parsed
}

func parseEnv[T ~string | ~int | ~bool | ~float64](envVar, envValue string) (T, error) {
	var zero T

	switch any(zero).(type) {
	case string:
		return any(envValue).(T), nil
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return zero, fmt.Errorf(
				"environment variable %s is not valid: '%s' is not an integer", envVar, envValue)
		}
		return any(intValue).(T), nil
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return zero, fmt.Errorf(
				"environment variable %s is not valid: '%s' is not a boolean", envVar, envValue)
		}
		return any(boolValue).(T), nil
	case float64:
		floatValue, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return zero, fmt.Errorf(
				"environment variable %s is not valid: '%s' is not a number", envVar, envValue)
		}
		return any(floatValue).(T), nil
	}

	return zero, fmt.Errorf("unsupported type for environment variable %s", envVar)
}
