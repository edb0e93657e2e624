package pbs

import (
	"encoding/json"
)

// BannerCreative is the banner payload of an accepted bid.
type BannerCreative struct {
	Width  uint64 `json:"width"`
	Height uint64 `json:"height"`
	AdM    string `json:"ad"`
}

// VideoCreative is the video payload of an accepted bid. At least one of
// VastURL and VastXML is set.
type VideoCreative struct {
	VastURL string `json:"vastUrl,omitempty"`
	VastXML string `json:"vastXml,omitempty"`
}

// NativeCreative is the native payload of an accepted bid.
type NativeCreative struct {
	Native json.RawMessage `json:"native"`
}

// BidResult is one priced bid handed back to the orchestrator. Exactly the
// creative variant matching AdFormat is non-nil.
//
// Meta is the bid's wire meta block with advertiserDomains guaranteed present;
// any other meta fields the server sent are preserved byte-for-byte.
type BidResult struct {
	RequestID  string          `json:"requestId"`
	CPM        float64         `json:"cpm"`
	Currency   string          `json:"currency"`
	CreativeID string          `json:"creativeId"`
	TTL        int64           `json:"ttl"`
	AdFormat   AdFormat        `json:"mediaType"`
	Meta       json.RawMessage `json:"meta"`

	Banner *BannerCreative `json:"banner,omitempty"`
	Video  *VideoCreative  `json:"video,omitempty"`
	Native *NativeCreative `json:"native,omitempty"`
}
