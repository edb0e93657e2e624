package pbs

import (
	"fmt"

	"github.com/mxmCherry/openrtb/v15/native1/request"
	"github.com/mxmCherry/openrtb/v15/openrtb2"
)

// AdFormat is the closed set of slot formats the AdBeam network trades.
type AdFormat string

const (
	AdFormatBanner AdFormat = "banner"
	AdFormatVideo  AdFormat = "video"
	AdFormatNative AdFormat = "native"
)

// AdFormats returns all formats the adapter understands.
func AdFormats() []AdFormat {
	return []AdFormat{
		AdFormatBanner,
		AdFormatVideo,
		AdFormatNative,
	}
}

// ParseAdFormat maps a wire tag onto the AdFormat set.
func ParseAdFormat(s string) (AdFormat, error) {
	switch AdFormat(s) {
	case AdFormatBanner:
		return AdFormatBanner, nil
	case AdFormatVideo:
		return AdFormatVideo, nil
	case AdFormatNative:
		return AdFormatNative, nil
	}
	return "", fmt.Errorf("invalid AdFormat %q", s)
}

// Params carries the publisher-configured, bidder-specific slot settings.
type Params struct {
	PlacementID string   `json:"placementId"`
	AdFormat    AdFormat `json:"adFormat"`
	BidFloor    float64  `json:"bidfloor,omitempty"`
}

// BannerMedia holds the banner sizing config for a slot.
type BannerMedia struct {
	Sizes []openrtb2.Format `json:"sizes"`
}

// VideoMedia holds the video player config for a slot. Field semantics follow
// OpenRTB 2.5 video objects, so the enum types are reused from there.
type VideoMedia struct {
	PlayerSize     []openrtb2.Format                `json:"playerSize"`
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
}

// NativeMedia holds the native asset config for a slot, in the adapter's
// legacy schema. A request may instead arrive with the generic OpenRTB native
// schema in ORTB; the builder converts it to the legacy fields before the
// placement is projected.
type NativeMedia struct {
	Title       *NativeTitleParams `json:"title,omitempty"`
	Image       *NativeImageParams `json:"image,omitempty"`
	Icon        *NativeImageParams `json:"icon,omitempty"`
	Body        *NativeDataParams  `json:"body,omitempty"`
	CTA         *NativeDataParams  `json:"cta,omitempty"`
	SponsoredBy *NativeDataParams  `json:"sponsoredBy,omitempty"`
	ClickURL    *NativeDataParams  `json:"clickUrl,omitempty"`
	PrivacyLink *NativeDataParams  `json:"privacyLink,omitempty"`

	// ORTB is the generic-schema form of this native config.
	ORTB *request.Request `json:"ortb,omitempty"`
}

// NativeTitleParams configures a requested native title asset.
type NativeTitleParams struct {
	Required bool  `json:"required,omitempty"`
	Len      int64 `json:"len,omitempty"`
}

// NativeImageParams configures a requested native image asset.
type NativeImageParams struct {
	Required     bool              `json:"required,omitempty"`
	Sizes        []openrtb2.Format `json:"sizes,omitempty"`
	AspectRatios []AspectRatio     `json:"aspect_ratios,omitempty"`
}

// AspectRatio constrains a native image asset when exact sizes are not set.
type AspectRatio struct {
	MinWidth    int64 `json:"min_width,omitempty"`
	RatioWidth  int64 `json:"ratio_width,omitempty"`
	RatioHeight int64 `json:"ratio_height,omitempty"`
}

// NativeDataParams configures a requested native data asset.
type NativeDataParams struct {
	Required bool  `json:"required,omitempty"`
	Len      int64 `json:"len,omitempty"`
}

// MediaTypes describes the media config blocks of a bid request. Exactly the
// block matching Params.AdFormat must be present for the request to be valid.
type MediaTypes struct {
	Banner *BannerMedia `json:"banner,omitempty"`
	Video  *VideoMedia  `json:"video,omitempty"`
	Native *NativeMedia `json:"native,omitempty"`
}

// BidRequest is one slot a publisher wants filled. It is built and owned by
// the auction orchestrator; the adapter only reads it.
type BidRequest struct {
	BidID      string       `json:"bidId"`
	Params     Params       `json:"params"`
	MediaTypes MediaTypes   `json:"mediaTypes"`
	SChain     *SupplyChain `json:"schain,omitempty"`

	// Floors reports publisher price floors for this slot. Nil when the
	// publisher runs no floors module.
	Floors FloorProvider `json:"-"`
}

// SupplyChain mirrors the IAB schain object forwarded to the network.
type SupplyChain struct {
	Complete int8              `json:"complete,omitempty"`
	Nodes    []SupplyChainNode `json:"nodes,omitempty"`
	Ver      string            `json:"ver,omitempty"`
}

// SupplyChainNode is one hop of a SupplyChain.
type SupplyChainNode struct {
	ASI    string `json:"asi,omitempty"`
	SID    string `json:"sid,omitempty"`
	RID    string `json:"rid,omitempty"`
	Name   string `json:"name,omitempty"`
	Domain string `json:"domain,omitempty"`
	HP     *int8  `json:"hp,omitempty"`
}

// RefererInfo is the orchestrator's view of the page requesting ads.
type RefererInfo struct {
	Page   string `json:"page,omitempty"`
	Domain string `json:"domain,omitempty"`
	Ref    string `json:"ref,omitempty"`
}

// SyncOptions tells a syncer which sync mechanisms the publisher permits.
type SyncOptions struct {
	IFrameEnabled bool `json:"iframeEnabled"`
	PixelEnabled  bool `json:"pixelEnabled"`
}
