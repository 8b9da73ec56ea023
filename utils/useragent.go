package utils

import (
	"fmt"
	"strings"

	"github.com/mileusna/useragent"
)

// DescribeUserAgent turns a raw User-Agent header into a short readable
// label for the dashboard ("Chrome on Windows", "Safari on iOS").
func DescribeUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	ua := useragent.Parse(raw)
	if ua.Name == "" && ua.OS == "" {
		return raw
	}
	if ua.OS == "" {
		return ua.Name
	}
	if ua.Name == "" {
		return ua.OS
	}
	return fmt.Sprintf("%s on %s", ua.Name, ua.OS)
}
