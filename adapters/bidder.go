package adapters

import (
	"net/http"

	"github.com/adbeam/bid-adapter/pbs"
)

// Bidder translates between the auction framework's bid model and the ad
// network's wire protocol.
//
// Bidders only build and interpret payloads; the transport layer dispatches
// them. A Bidder holds no per-call state, so one instance serves concurrent
// auctions.
type Bidder interface {
	// MakeRequests assembles the single HTTP request which should be made to
	// fetch bids for the given slots. The slots are assumed to have passed
	// request validation already.
	//
	// The errors should explain why this call will produce no (or fewer)
	// bids. For example: none of the slots survived projection, or the
	// payload could not be serialized.
	MakeRequests(bids []*pbs.BidRequest, reqCtx *pbs.BidderContext) (*RequestData, []error)

	// MakeBids unpacks the server's response into bid results.
	//
	// The results can be nil (for no bids), but must not contain nil
	// elements. Malformed entries in an otherwise usable body are dropped
	// rather than reported: one bad bid never blocks the good ones.
	MakeBids(response *ResponseData) ([]*pbs.BidResult, []error)
}

// RequestData packages together the fields needed to make an http.Request.
//
// This exists so that core code can dispatch and debug-log adapter traffic
// uniformly, without each bidder touching the transport.
type RequestData struct {
	Method  string
	Uri     string
	Body    []byte
	Headers http.Header
}

// ResponseData packages together information from the server's http.Response.
//
// Status handling below 2xx/above 3xx is the transport's concern; bidders
// only ever see bodies the transport considered deliverable.
type ResponseData struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}
