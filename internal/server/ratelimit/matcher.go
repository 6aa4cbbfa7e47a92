package ratelimit

import "strings"

// unlimited is returned for routes that are never throttled.
var unlimited = EndpointConfig{}

// MatchEndpoint finds the configuration for a request. Exact paths win over
// prefixes, and among prefixes the longest wins. It returns nil when no
// entry applies. GET /health is always unlimited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &unlimited
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
