package hassvoice

import (
	"fmt"
	"regexp"
)

// hostPattern matches a hostname, IPv4 or IPv6 address inside a raw string,
// allowing an optional scheme, port and path around it. Compiled once at
// package load; it has no other lifecycle.
var hostPattern = regexp.MustCompile(
	`\b(?:https?://)?((?:(?:www\.)?(?:[\da-z\.-]+)\.(?:[a-z]{2,6})|` +
		`(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)|` +
		`(?:(?:[0-9a-fA-F]{1,4}:){7,7}[0-9a-fA-F]{1,4}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,7}:|` +
		`(?:[0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,5}(?::[0-9a-fA-F]{1,4}){1,2}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,4}(?::[0-9a-fA-F]{1,4}){1,3}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,3}(?::[0-9a-fA-F]{1,4}){1,4}|` +
		`(?:[0-9a-fA-F]{1,4}:){1,2}(?::[0-9a-fA-F]{1,4}){1,5}|` +
		`[0-9a-fA-F]{1,4}:(?:(?::[0-9a-fA-F]{1,4}){1,6})|` +
		`:(?:(?::[0-9a-fA-F]{1,4}){1,7}|:)|` +
		`fe80:(?::[0-9a-fA-F]{0,4}){0,4}%[0-9a-zA-Z]{1,}|` +
		`::(?:ffff(?::0{1,4}){0,1}:){0,1}(?:(?:25[0-5]|(?:2[0-4]|1{0,1}[0-9]){0,1}[0-9])\.){3,3}(?:25[0-5]|(?:2[0-4]|1{0,1}[0-9]){0,1}[0-9])|` +
		`(?:[0-9a-fA-F]{1,4}:){1,4}:(?:(?:25[0-5]|(?:2[0-4]|1{0,1}[0-9]){0,1}[0-9])\.){3,3}(?:25[0-5]|(?:2[0-4]|1{0,1}[0-9]){0,1}[0-9]))))` +
		`(?::[0-9]{1,4}|[1-5][0-9]{4}|6[0-4][0-9]{3}|65[0-4][0-9]{2}|655[0-2][0-9]|6553[0-5])?` +
		`(?:/[\w\.-]*)*/?\b`)

// CheckURL extracts the bare host or IP portion of a raw URL string, e.g.
// "http://192.168.1.10:8123/api" yields "192.168.1.10". It fails when the
// string contains nothing that looks like a host.
func CheckURL(raw string) (string, error) {
	matches := hostPattern.FindStringSubmatch(raw)
	if matches == nil {
		return "", fmt.Errorf("no host or IP address found in %q", raw)
	}

	return matches[1], nil
}
