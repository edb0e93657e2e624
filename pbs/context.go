package pbs

import (
	"github.com/adbeam/bid-adapter/privacy"
)

// BidderContext carries the auction-wide state shared by every BidRequest of
// one adapter call. Like BidRequest it is owned by the orchestrator and never
// mutated here.
type BidderContext struct {
	RefererInfo RefererInfo `json:"refererInfo"`

	// Privacy holds the already-parsed consent signals. Consent-string
	// parsing happens upstream.
	Privacy privacy.Policies `json:"-"`

	// TimeoutMillis is the auction timeout forwarded to the network as tmax.
	TimeoutMillis uint64 `json:"timeout"`
}
