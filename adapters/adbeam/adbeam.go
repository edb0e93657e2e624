package adbeam

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	validator "github.com/asaskevich/govalidator"
	"github.com/buger/jsonparser"
	"github.com/golang/glog"

	"github.com/adbeam/bid-adapter/adapters"
	"github.com/adbeam/bid-adapter/config"
	"github.com/adbeam/bid-adapter/errortypes"
	"github.com/adbeam/bid-adapter/native"
	"github.com/adbeam/bid-adapter/pbs"
)

// AdBeamAdapter translates framework bid requests into the AdBeam wire
// protocol and back. Implements the adapters.Bidder interface.
type AdBeamAdapter struct {
	endpoint       string
	coppa          bool
	defaultFloor   float64
	defaultTimeout uint64
	env            pbs.Environment
}

// NewAdBeamBidder builds the adapter from host configuration and the injected
// browsing environment.
func NewAdBeamBidder(cfg *config.Configuration, env pbs.Environment) *AdBeamAdapter {
	return &AdBeamAdapter{
		endpoint:       cfg.Endpoint,
		coppa:          cfg.COPPA,
		defaultFloor:   cfg.DefaultBidFloor,
		defaultTimeout: cfg.DefaultTimeout,
		env:            env,
	}
}

func getHeaders() http.Header {
	headers := http.Header{}
	headers.Add("Content-Type", "application/json;charset=utf-8")
	headers.Add("Accept", "application/json")
	return headers
}

// MakeRequests maps the validated bid requests plus the auction context into
// the single POST descriptor the transport later dispatches.
func (a *AdBeamAdapter) MakeRequests(bids []*pbs.BidRequest, reqCtx *pbs.BidderContext) (*adapters.RequestData, []error) {
	if len(bids) == 0 {
		return nil, []error{&errortypes.BadInput{
			Message: "AdBeam: missing bid requests",
		}}
	}

	var errs []error
	payload := a.makePayload(reqCtx)
	for _, bid := range bids {
		placement, err := a.makePlacement(bid)
		if err != nil {
			errs = append(errs, err)
		}
		payload.Placements = append(payload.Placements, placement)
	}

	reqJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, []error{&errortypes.FailedToMarshal{
			Message: err.Error(),
		}}
	}

	return &adapters.RequestData{
		Method:  http.MethodPost,
		Uri:     a.endpoint,
		Body:    reqJSON,
		Headers: getHeaders(),
	}, errs
}

func (a *AdBeamAdapter) makePayload(reqCtx *pbs.BidderContext) adBeamRequest {
	viewport, err := a.env.TopViewport()
	if err != nil {
		// Cross-origin nesting. Dimensions stay 0, own location stands in.
		glog.V(2).Infof("AdBeam: top viewport unreachable: %v", err)
		viewport = pbs.Viewport{Location: a.env.Location()}
	}

	location := viewport.Location
	if ref := reqCtx.RefererInfo.Page; ref != "" {
		if validator.IsRequestURL(ref) {
			location = ref
		} else {
			glog.V(2).Infof("AdBeam: malformed referrer %q, using environment location", ref)
		}
	}

	payload := adBeamRequest{
		DeviceWidth:  viewport.ScreenWidth,
		DeviceHeight: viewport.ScreenHeight,
		Language:     primaryLanguage(a.env.Language()),
		TMax:         reqCtx.TimeoutMillis,
	}
	if payload.TMax == 0 {
		payload.TMax = a.defaultTimeout
	}

	if pageURL, err := url.Parse(location); err == nil {
		if pageURL.Scheme == "https" {
			payload.Secure = 1
		}
		payload.Host = pageURL.Host
		payload.Page = pageURL.Path
	}

	if a.coppa {
		payload.COPPA = 1
	}
	payload.CCPA = reqCtx.Privacy.CCPA.Consent
	if gdprPolicy := reqCtx.Privacy.GDPR; gdprPolicy.Consent != "" || gdprPolicy.Applies != nil {
		payload.GDPR = &gdprPolicy
	}

	return payload
}

// primaryLanguage trims a language tag to its two-letter code, e.g. "en-US"
// to "en".
func primaryLanguage(tag string) string {
	return strings.SplitN(tag, "-", 2)[0]
}

func (a *AdBeamAdapter) makePlacement(bid *pbs.BidRequest) (adBeamPlacement, error) {
	placement := adBeamPlacement{
		PlacementID: bid.Params.PlacementID,
		BidID:       bid.BidID,
		AdFormat:    bid.Params.AdFormat,
		SChain:      bid.SChain,
		BidFloor:    a.resolveBidFloor(bid),
	}
	if placement.SChain == nil {
		placement.SChain = &pbs.SupplyChain{}
	}

	switch bid.Params.AdFormat {
	case pbs.AdFormatBanner:
		if banner := bid.MediaTypes.Banner; banner != nil {
			placement.Sizes = banner.Sizes
		}
	case pbs.AdFormatVideo:
		if video := bid.MediaTypes.Video; video != nil {
			placement.PlayerSize = video.PlayerSize
			placement.MinDuration = video.MinDuration
			placement.MaxDuration = video.MaxDuration
			placement.MIMEs = video.MIMEs
			placement.Protocols = video.Protocols
			placement.StartDelay = video.StartDelay
			placement.Placement = video.Placement
			placement.Skip = video.Skip
			placement.SkipAfter = video.SkipAfter
			placement.MinBitrate = video.MinBitrate
			placement.MaxBitrate = video.MaxBitrate
			placement.Delivery = video.Delivery
			placement.PlaybackMethod = video.PlaybackMethod
			placement.API = video.API
			placement.Linearity = video.Linearity
		}
	case pbs.AdFormatNative:
		placement.Native = native.ConvertORTBToLegacy(bid.MediaTypes.Native)
	default:
		return placement, &errortypes.Warning{
			Message:     "AdBeam: unsupported ad format for bid " + bid.BidID,
			WarningCode: errortypes.UnsupportedMediaTypeWarningCode,
		}
	}

	return placement, nil
}

// MakeBids unpacks the server response, dropping malformed bids and
// guaranteeing meta.advertiserDomains on every surviving one. Survivors keep
// the response order.
func (a *AdBeamAdapter) MakeBids(response *adapters.ResponseData) ([]*pbs.BidResult, []error) {
	var serverBids []serverBid
	if err := json.Unmarshal(response.Body, &serverBids); err != nil {
		return nil, []error{&errortypes.BadServerResponse{
			Message: "AdBeam: bad server response",
		}}
	}

	results := make([]*pbs.BidResult, 0, len(serverBids))
	for i := range serverBids {
		result, ok := makeBidResult(&serverBids[i])
		if !ok {
			glog.V(2).Infof("AdBeam: dropping invalid bid for request %q", serverBids[i].RequestID)
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

func makeBidResult(bid *serverBid) (*pbs.BidResult, bool) {
	if bid.RequestID == "" || bid.CPM == 0 || bid.CreativeID == "" || bid.TTL == 0 ||
		bid.Currency == "" || len(bid.Meta) == 0 || string(bid.Meta) == "null" {
		return nil, false
	}

	adFormat, err := pbs.ParseAdFormat(bid.MediaType)
	if err != nil {
		return nil, false
	}

	result := &pbs.BidResult{
		RequestID:  bid.RequestID,
		CPM:        bid.CPM,
		Currency:   bid.Currency,
		CreativeID: bid.CreativeID,
		TTL:        bid.TTL,
		AdFormat:   adFormat,
	}

	switch adFormat {
	case pbs.AdFormatBanner:
		if bid.Width == 0 || bid.Height == 0 || bid.AdM == "" {
			return nil, false
		}
		result.Banner = &pbs.BannerCreative{Width: bid.Width, Height: bid.Height, AdM: bid.AdM}
	case pbs.AdFormatVideo:
		if bid.VastURL == "" && bid.VastXML == "" {
			return nil, false
		}
		result.Video = &pbs.VideoCreative{VastURL: bid.VastURL, VastXML: bid.VastXML}
	case pbs.AdFormatNative:
		if !hasImpressionTrackers(bid.Native) {
			return nil, false
		}
		result.Native = &pbs.NativeCreative{Native: bid.Native}
	}

	meta, err := enrichMeta(bid.Meta, bid.ADomain)
	if err != nil {
		return nil, false
	}
	result.Meta = meta

	return result, true
}

// enrichMeta sets meta.advertiserDomains from the wire adomain list without
// disturbing whatever else the server put into meta.
func enrichMeta(meta json.RawMessage, adomain []string) (json.RawMessage, error) {
	domains := adomain
	if len(domains) == 0 {
		domains = []string{}
	}

	domainsJSON, err := json.Marshal(domains)
	if err != nil {
		return nil, err
	}

	return jsonparser.Set(meta, domainsJSON, "advertiserDomains")
}

func hasImpressionTrackers(nativeBlock json.RawMessage) bool {
	if nativeBlock == nil {
		return false
	}

	trackers := 0
	jsonparser.ArrayEach(nativeBlock, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		trackers++
	}, "impressionTrackers")

	return trackers > 0
}
