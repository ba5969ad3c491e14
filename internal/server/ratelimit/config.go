package ratelimit

import "time"

// defaultPerMinute is the read-endpoint budget used when no configuration
// is supplied.
const defaultPerMinute = 120

// EndpointLimit is the rate limit for one endpoint. A Path ending in "/"
// matches by prefix, so "/api/results/" covers "/api/results/{id}".
type EndpointLimit struct {
	Path   string
	Method string
	Limit  int // requests per Window
	Window time.Duration
	Burst  int // burst capacity, defaults to Limit when zero
}

// FromRequestsPerMinute builds a limiter config from a single per-minute
// read budget. Analyses get a sixth of the budget and uploads half, since
// both do far more work per request than the read endpoints.
func FromRequestsPerMinute(perMinute int) *Config {
	if perMinute < 1 {
		perMinute = 1
	}
	analysisLimit := max(1, perMinute/6)
	uploadLimit := max(1, perMinute/2)

	return &Config{
		DefaultLimit:    perMinute,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints: []EndpointLimit{
			{Path: "/api/analyze", Method: "POST", Limit: analysisLimit, Window: time.Minute, Burst: max(1, analysisLimit/2)},
			{Path: "/api/analyze-job", Method: "POST", Limit: analysisLimit, Window: time.Minute, Burst: max(1, analysisLimit/2)},
			{Path: "/api/rank-single-resume", Method: "POST", Limit: analysisLimit, Window: time.Minute, Burst: max(1, analysisLimit/2)},
			{Path: "/api/upload-resume", Method: "POST", Limit: uploadLimit, Window: time.Minute, Burst: max(1, uploadLimit/4)},
		},
	}
}
