package ratelimit

import "strings"

// MatchEndpoint finds the limit for a request path and method. The health
// endpoint is always unlimited; exact path matches win over prefix matches;
// nil means the caller should apply the default limit.
func MatchEndpoint(path string, method string, limits []EndpointLimit) *EndpointLimit {
	if path == "/api/health" && method == "GET" {
		return &EndpointLimit{Limit: 0}
	}

	for i := range limits {
		l := &limits[i]
		if l.Path == path && l.Method == method {
			return l
		}
	}

	for i := range limits {
		l := &limits[i]
		if l.Method == method && strings.HasSuffix(l.Path, "/") && strings.HasPrefix(path, l.Path) {
			return l
		}
	}

	return nil
}
