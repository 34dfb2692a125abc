package logutils

import (
	"strconv"
	"strings"
)

// ShortCallerFormatter trims the caller path down to the package and file,
// keeping log lines readable
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	parts := strings.Split(file, "/")
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	return strings.Join(parts, "/") + ":" + strconv.Itoa(line)
}
