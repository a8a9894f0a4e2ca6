package validator

import (
	"net/url"
	"strings"
)

// IsDomainAllowed reports whether domain matches one of the allowed entries.
// Entries may be a bare host, a full origin, "*.domain" or ".domain"; the
// wildcard forms also match the apex domain.
func IsDomainAllowed(domain string, allowed []string) bool {
	if domain == "" || len(allowed) == 0 {
		return false
	}
	d := strings.ToLower(strings.TrimSpace(domain))
	for _, raw := range allowed {
		a := strings.TrimSpace(raw)
		if a == "" {
			continue
		}
		if hasScheme(a) {
			if u, err := url.Parse(a); err == nil {
				a = u.Hostname()
			}
		}
		a = strings.ToLower(a)

		if strings.HasPrefix(a, "*.") || strings.HasPrefix(a, ".") {
			suffix := strings.TrimLeft(a, "*.")
			if d == suffix || strings.HasSuffix(d, "."+suffix) {
				return true
			}
			continue
		}
		if d == a {
			return true
		}
	}
	return false
}

// IsOriginAllowed checks a browser Origin header against the allowed list.
// A "*" entry allows every origin.
func IsOriginAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if strings.TrimSpace(a) == "*" {
			return true
		}
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return IsDomainAllowed(u.Hostname(), allowed)
}

func hasScheme(s string) bool {
	i := strings.Index(s, "://")
	if i <= 0 {
		return false
	}
	for j := 0; j < i; j++ {
		c := s[j]
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}
