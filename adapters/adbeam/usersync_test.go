package adbeam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xorcare/pointer"

	"github.com/adbeam/bid-adapter/pbs"
	"github.com/adbeam/bid-adapter/privacy"
	"github.com/adbeam/bid-adapter/privacy/ccpa"
	"github.com/adbeam/bid-adapter/privacy/gdpr"
	"github.com/adbeam/bid-adapter/usersync"
)

func TestSyncerKey(t *testing.T) {
	assert.Equal(t, "adbeam", NewAdBeamSyncer(testConfig()).Key())
}

func TestGetSyncIFrameWithGDPR(t *testing.T) {
	syncer := NewAdBeamSyncer(testConfig())
	policies := privacy.Policies{
		GDPR: gdpr.Policy{Applies: pointer.Bool(true), Consent: "abc"},
	}

	sync, err := syncer.GetSync(pbs.SyncOptions{IFrameEnabled: true}, policies)

	require.NoError(t, err)
	assert.Equal(t, usersync.SyncTypeIFrame, sync.Type)
	assert.Equal(t, "https://cs.adbeam.com/iframe?pbjs=1&gdpr=1&gdpr_consent=abc&coppa=0", sync.URL)
	assert.NotContains(t, sync.URL, "ccpa_consent")
}

func TestGetSyncImageWithoutConsent(t *testing.T) {
	syncer := NewAdBeamSyncer(testConfig())

	sync, err := syncer.GetSync(pbs.SyncOptions{PixelEnabled: true}, privacy.Policies{})

	require.NoError(t, err)
	assert.Equal(t, usersync.SyncTypeImage, sync.Type)
	assert.Equal(t, "https://cs.adbeam.com/image?pbjs=1&coppa=0", sync.URL)
	assert.NotContains(t, sync.URL, "gdpr")
	assert.NotContains(t, sync.URL, "ccpa_consent")
}

func TestGetSyncGDPRFlag(t *testing.T) {
	testCases := []struct {
		description string
		policy      gdpr.Policy
		expected    string
	}{
		{
			description: "Applies true",
			policy:      gdpr.Policy{Applies: pointer.Bool(true), Consent: "abc"},
			expected:    "&gdpr=1&gdpr_consent=abc",
		},
		{
			description: "Applies false",
			policy:      gdpr.Policy{Applies: pointer.Bool(false), Consent: "abc"},
			expected:    "&gdpr=0&gdpr_consent=abc",
		},
		{
			description: "Applies unknown defaults to 0",
			policy:      gdpr.Policy{Consent: "abc"},
			expected:    "&gdpr=0&gdpr_consent=abc",
		},
	}

	syncer := NewAdBeamSyncer(testConfig())
	for _, test := range testCases {
		sync, err := syncer.GetSync(pbs.SyncOptions{}, privacy.Policies{GDPR: test.policy})

		require.NoError(t, err, test.description)
		assert.Contains(t, sync.URL, test.expected, test.description)
	}
}

func TestGetSyncCCPA(t *testing.T) {
	syncer := NewAdBeamSyncer(testConfig())
	policies := privacy.Policies{CCPA: ccpa.Policy{Consent: "1YYN"}}

	sync, err := syncer.GetSync(pbs.SyncOptions{IFrameEnabled: true}, policies)

	require.NoError(t, err)
	assert.Equal(t, "https://cs.adbeam.com/iframe?pbjs=1&ccpa_consent=1YYN&coppa=0", sync.URL)
}

func TestGetSyncCoppa(t *testing.T) {
	cfg := testConfig()
	cfg.COPPA = true
	syncer := NewAdBeamSyncer(cfg)

	sync, err := syncer.GetSync(pbs.SyncOptions{}, privacy.Policies{})

	require.NoError(t, err)
	assert.Equal(t, "https://cs.adbeam.com/image?pbjs=1&coppa=1", sync.URL)
}

func TestGetSyncEscapesConsent(t *testing.T) {
	syncer := NewAdBeamSyncer(testConfig())
	policies := privacy.Policies{GDPR: gdpr.Policy{Consent: "a b+c"}}

	sync, err := syncer.GetSync(pbs.SyncOptions{}, policies)

	require.NoError(t, err)
	assert.Contains(t, sync.URL, "gdpr_consent=a+b%2Bc")
}
