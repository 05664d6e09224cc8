package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes to the connection
// URL unless the caller opted out or the URL already sets the flag. Some
// pgbouncer deployments choke on binary-result prepared statements, so the
// flag defaults on and DB_DISABLE_PREPARED_BINARY_RESULT turns it off.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	values := parsed.Query()
	if values.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	values.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = values.Encode()
	return parsed.String()
}

// dbNameFromURL extracts the database name for the db.name span attribute.
// It understands both postgres:// URLs and key=value DSN strings.
func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	if parsed, err := url.Parse(trimmed); err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(trimmed) {
		value, ok := strings.CutPrefix(field, "dbname=")
		if !ok {
			continue
		}
		if name := strings.Trim(value, `"' `); name != "" {
			return name
		}
	}
	return ""
}
