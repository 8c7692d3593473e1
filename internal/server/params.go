package server

import "fmt"

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// uint32Param reads a JSON number. ok is false when the key is missing or
// the value is not a whole number in range.
func uint32Param(params map[string]interface{}, key string) (v uint32, ok bool) {
	switch n := params[key].(type) {
	case float64:
		if n < 0 || n > 0xffffffff || n != float64(uint32(n)) {
			return 0, false
		}
		return uint32(n), true
	case int:
		if n < 0 || int64(n) > 0xffffffff {
			return 0, false
		}
		return uint32(n), true
	case int64:
		if n < 0 || n > 0xffffffff {
			return 0, false
		}
		return uint32(n), true
	}
	return 0, false
}

func floatParam(params map[string]interface{}, key string) (float64, bool) {
	switch n := params[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
