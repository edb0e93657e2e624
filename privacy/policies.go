package privacy

import (
	"github.com/adbeam/bid-adapter/privacy/ccpa"
	"github.com/adbeam/bid-adapter/privacy/gdpr"
)

// Policies represents the privacy regulations attached to one adapter call.
// The consent strings arrive already parsed and validated by the framework.
type Policies struct {
	GDPR gdpr.Policy
	CCPA ccpa.Policy
}
