package adbeam

import (
	"github.com/golang/glog"

	"github.com/adbeam/bid-adapter/pbs"
)

// floorQuery asks providers for one floor covering every media type and size.
var floorQuery = pbs.FloorQuery{
	Currency:  "USD",
	MediaType: "*",
	Size:      "*",
}

// resolveBidFloor returns the floor price for one slot. Requests without a
// floor provider fall back to the static params floor, then to the configured
// default. A failing provider must never abort request construction, so any
// error or panic from it resolves to 0.
func (a *AdBeamAdapter) resolveBidFloor(bid *pbs.BidRequest) (floor float64) {
	if bid.Floors == nil {
		if bid.Params.BidFloor > 0 {
			return bid.Params.BidFloor
		}
		return a.defaultFloor
	}

	defer func() {
		if r := recover(); r != nil {
			glog.V(2).Infof("AdBeam: floor provider panic for bid %q: %v", bid.BidID, r)
			floor = 0
		}
	}()

	price, err := bid.Floors.GetFloor(floorQuery)
	if err != nil {
		glog.V(2).Infof("AdBeam: floor provider error for bid %q: %v", bid.BidID, err)
		return 0
	}

	return price.FloorValue
}
