package ccpa

// Policy represents the CCPA regulatory information for one adapter call.
type Policy struct {
	// Consent is the US Privacy string, empty when not collected.
	Consent string `json:"consentString,omitempty"`
}
