package usersync

import (
	"github.com/adbeam/bid-adapter/pbs"
	"github.com/adbeam/bid-adapter/privacy"
)

// SyncType is the mechanism used to perform a user sync.
type SyncType string

const (
	SyncTypeIFrame SyncType = "iframe"
	SyncTypeImage  SyncType = "image"
)

// Sync represents a user sync for the user's device to perform.
type Sync struct {
	URL         string
	Type        SyncType
	SupportCORS bool
}

// Syncer builds the user sync for a bidder.
type Syncer interface {
	// Key is the name of the syncer as stored in the user's cookie.
	Key() string

	// GetSync returns the single user sync for the user's device to perform.
	// The sync mechanism depends on what syncOptions permit; a bidder never
	// returns more than one sync per call.
	GetSync(syncOptions pbs.SyncOptions, privacyPolicies privacy.Policies) (Sync, error)
}
