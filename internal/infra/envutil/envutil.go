// Where: internal/infra/envutil/envutil.go
// What: Environment variable lookup helpers.
// Why: Read KEYPROPS_* settings with a single trimming and fallback rule.
package envutil

import (
	"os"
	"strings"
)

// Get returns the trimmed value of key.
func Get(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// First returns the first non-empty value among keys, in order.
// Example: First("KEYPROPS_S3_REGION", "AWS_REGION").
func First(keys ...string) string {
	for _, key := range keys {
		if value := Get(key); value != "" {
			return value
		}
	}
	return ""
}

// Or returns value when it is non-blank, otherwise the value of key.
func Or(value, key string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return Get(key)
}
