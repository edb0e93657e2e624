package adbeam

import (
	"fmt"
	"net/url"

	"github.com/adbeam/bid-adapter/config"
	"github.com/adbeam/bid-adapter/pbs"
	"github.com/adbeam/bid-adapter/privacy"
	"github.com/adbeam/bid-adapter/usersync"
)

// AdBeamSyncer builds the single user-sync URL for the AdBeam cookie server.
// Implements the usersync.Syncer interface.
type AdBeamSyncer struct {
	baseURL string
	coppa   bool
}

func NewAdBeamSyncer(cfg *config.Configuration) *AdBeamSyncer {
	return &AdBeamSyncer{
		baseURL: cfg.UserSync.URL,
		coppa:   cfg.COPPA,
	}
}

func (s *AdBeamSyncer) Key() string {
	return "adbeam"
}

// GetSync prefers an iframe sync when the publisher permits one and falls
// back to an image pixel otherwise. The cookie server expects the query keys
// in this order, so the URL is assembled by hand rather than with url.Values.
func (s *AdBeamSyncer) GetSync(syncOptions pbs.SyncOptions, privacyPolicies privacy.Policies) (usersync.Sync, error) {
	syncType := usersync.SyncTypeImage
	if syncOptions.IFrameEnabled {
		syncType = usersync.SyncTypeIFrame
	}

	syncURL := fmt.Sprintf("%s/%s?pbjs=1", s.baseURL, syncType)

	if gdprPolicy := privacyPolicies.GDPR; gdprPolicy.Consent != "" {
		syncURL += "&gdpr=" + gdprPolicy.SignalValue() + "&gdpr_consent=" + url.QueryEscape(gdprPolicy.Consent)
	}
	if ccpaPolicy := privacyPolicies.CCPA; ccpaPolicy.Consent != "" {
		syncURL += "&ccpa_consent=" + url.QueryEscape(ccpaPolicy.Consent)
	}

	coppa := "0"
	if s.coppa {
		coppa = "1"
	}
	syncURL += "&coppa=" + coppa

	return usersync.Sync{
		URL:  syncURL,
		Type: syncType,
	}, nil
}
