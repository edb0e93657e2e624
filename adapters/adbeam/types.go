package adbeam

import (
	"encoding/json"

	"github.com/mxmCherry/openrtb/v15/openrtb2"

	"github.com/adbeam/bid-adapter/pbs"
	"github.com/adbeam/bid-adapter/privacy/gdpr"
)

// adBeamRequest is the single JSON payload posted to the auction endpoint.
type adBeamRequest struct {
	DeviceWidth  uint64            `json:"deviceWidth"`
	DeviceHeight uint64            `json:"deviceHeight"`
	Language     string            `json:"language"`
	Secure       int8              `json:"secure"`
	Host         string            `json:"host"`
	Page         string            `json:"page"`
	COPPA        int8              `json:"coppa,omitempty"`
	CCPA         string            `json:"ccpa,omitempty"`
	GDPR         *gdpr.Policy      `json:"gdpr,omitempty"`
	TMax         uint64            `json:"tmax"`
	Placements   []adBeamPlacement `json:"placements"`
}

// adBeamPlacement is the wire projection of one bid request. Only the fields
// of its ad format are populated; the rest stay omitted.
type adBeamPlacement struct {
	PlacementID string           `json:"placementId"`
	BidID       string           `json:"bidId"`
	AdFormat    pbs.AdFormat     `json:"adFormat"`
	SChain      *pbs.SupplyChain `json:"schain"`
	BidFloor    float64          `json:"bidfloor"`

	// banner
	Sizes []openrtb2.Format `json:"sizes,omitempty"`

	// video
	PlayerSize     []openrtb2.Format                `json:"playerSize,omitempty"`
	MinDuration    int64                            `json:"minduration,omitempty"`
	MaxDuration    int64                            `json:"maxduration,omitempty"`
	MIMEs          []string                         `json:"mimes,omitempty"`
	Protocols      []openrtb2.Protocol              `json:"protocols,omitempty"`
	StartDelay     *openrtb2.StartDelay             `json:"startdelay,omitempty"`
	Placement      openrtb2.VideoPlacementType      `json:"placement,omitempty"`
	Skip           *int8                            `json:"skip,omitempty"`
	SkipAfter      int64                            `json:"skipafter,omitempty"`
	MinBitrate     int64                            `json:"minbitrate,omitempty"`
	MaxBitrate     int64                            `json:"maxbitrate,omitempty"`
	Delivery       []openrtb2.ContentDeliveryMethod `json:"delivery,omitempty"`
	PlaybackMethod []openrtb2.PlaybackMethod        `json:"playbackmethod,omitempty"`
	API            []openrtb2.APIFramework          `json:"api,omitempty"`
	Linearity      openrtb2.VideoLinearity          `json:"linearity,omitempty"`

	// native
	Native *pbs.NativeMedia `json:"native,omitempty"`
}

// serverBid is one bid as the AdBeam server returns it.
type serverBid struct {
	RequestID  string          `json:"requestId"`
	CPM        float64         `json:"cpm"`
	Currency   string          `json:"currency"`
	CreativeID string          `json:"creativeId"`
	TTL        int64           `json:"ttl"`
	MediaType  string          `json:"mediaType"`
	ADomain    []string        `json:"adomain"`
	Meta       json.RawMessage `json:"meta"`

	// banner
	Width  uint64 `json:"width"`
	Height uint64 `json:"height"`
	AdM    string `json:"ad"`

	// video
	VastURL string `json:"vastUrl"`
	VastXML string `json:"vastXml"`

	// native
	Native json.RawMessage `json:"native"`
}
