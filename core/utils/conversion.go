package utils

import (
	"strconv"
	"strings"
)

// ToInt converts a query, form or decoded JSON value to int.
// Blank or malformed input yields 0.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		return atoi(v)
	case []byte:
		return atoi(string(v))
	}
	return 0
}

// ToBool reports whether val is a truthy flag: true, 1, "1", "true" or "yes".
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64:
		return ToInt(v) == 1
	case string:
		return truthy(v)
	case []byte:
		return truthy(string(v))
	}
	return false
}

func atoi(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
