package provision

import (
	"fmt"
	"regexp"
)

// These parses are best-effort hooks, not contracts: the playbook isn't
// required to print either marker, and nothing downstream treats a miss as an
// error.

var urlRegexp = regexp.MustCompile(`https://[^\s"']+`)

// parseProjectURL extracts the first URL that appears in the playbook output.
// When the output contains no recognizable URL the project is still reachable
// through the platform's console listing, so that page is the fallback.
func parseProjectURL(output, platformHost string) string {
	if url := urlRegexp.FindString(output); url != "" {
		return url
	}
	return fmt.Sprintf("https://%s:9440/console/#page/projects", platformHost)
}

// parseUUID extracts a `<marker>=<uuid>` or `<marker>: <uuid>` value from the
// playbook output. Returns the empty string when the marker is absent.
func parseUUID(output, marker string) string {
	re := regexp.MustCompile(marker + `[=:]\s*([0-9a-fA-F]{8}(?:-[0-9a-fA-F]{4}){3}-[0-9a-fA-F]{12})`)
	m := re.FindStringSubmatch(output)
	if m == nil {
		return ""
	}
	return m[1]
}
