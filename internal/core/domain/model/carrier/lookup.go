package carrier

// LookupResult is the outcome of probing one carrier account for a
// tracking number. A failed probe is a normal outcome, not an error:
// network trouble, timeouts and malformed responses all surface as
// Success=false so resolution can move on to the next account.
type LookupResult struct {
	// Success reports whether the carrier recognized the tracking number.
	Success bool

	// StatusCode is the HTTP status of the upstream response, 0 when the
	// request never completed.
	StatusCode int

	// Data carries the decoded upstream payload, nil when unavailable.
	Data map[string]any
}
