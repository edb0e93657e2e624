package adbeam

import (
	"github.com/adbeam/bid-adapter/pbs"
)

// IsBidRequestValid reports whether a bid request is well-formed enough to be
// worth network traffic. The orchestrator calls it before MakeRequests and
// drops rejected requests without error.
func IsBidRequestValid(bid *pbs.BidRequest) bool {
	if bid == nil || bid.BidID == "" || bid.Params.PlacementID == "" {
		return false
	}

	switch bid.Params.AdFormat {
	case pbs.AdFormatBanner:
		banner := bid.MediaTypes.Banner
		return banner != nil && len(banner.Sizes) > 0
	case pbs.AdFormatVideo:
		video := bid.MediaTypes.Video
		return video != nil && len(video.PlayerSize) > 0
	case pbs.AdFormatNative:
		return bid.MediaTypes.Native != nil
	}

	return false
}
