package gdpr

// Policy represents the GDPR regulatory information for one adapter call.
type Policy struct {
	// Applies reports whether GDPR is in scope for this user. Nil means the
	// framework could not determine it; the adapter then signals 0.
	Applies *bool `json:"gdprApplies,omitempty"`

	// Consent is the raw TCF consent string, empty when not collected.
	Consent string `json:"consentString,omitempty"`
}

// SignalValue renders Applies as the 1/0 wire flag, defaulting to 0 whenever
// Applies is not a strict boolean.
func (p Policy) SignalValue() string {
	if p.Applies != nil && *p.Applies {
		return "1"
	}
	return "0"
}
