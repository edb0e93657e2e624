// Package native converts native-ad configs expressed in the generic OpenRTB
// native schema into the AdBeam legacy native schema. The network endpoint
// only understands the legacy shape.
package native

import (
	"github.com/mxmCherry/openrtb/v15/native1"
	nativeRequests "github.com/mxmCherry/openrtb/v15/native1/request"
	"github.com/mxmCherry/openrtb/v15/openrtb2"

	"github.com/adbeam/bid-adapter/pbs"
)

// ConvertORTBToLegacy returns a copy of media with the ORTB asset list mapped
// onto the legacy fields. Configs without an ORTB block come back untouched.
// The input is never mutated.
func ConvertORTBToLegacy(media *pbs.NativeMedia) *pbs.NativeMedia {
	if media == nil || media.ORTB == nil {
		return media
	}

	converted := *media
	converted.ORTB = nil

	for _, asset := range media.ORTB.Assets {
		convertAsset(&converted, asset)
	}

	return &converted
}

func convertAsset(media *pbs.NativeMedia, asset nativeRequests.Asset) {
	required := asset.Required == 1

	switch {
	case asset.Title != nil:
		media.Title = &pbs.NativeTitleParams{
			Required: required,
			Len:      asset.Title.Len,
		}
	case asset.Img != nil:
		params := convertImage(asset.Img, required)
		if asset.Img.Type == native1.ImageAssetTypeIcon {
			media.Icon = params
		} else {
			media.Image = params
		}
	case asset.Data != nil:
		params := &pbs.NativeDataParams{
			Required: required,
			Len:      asset.Data.Len,
		}
		switch asset.Data.Type {
		case native1.DataAssetTypeSponsored:
			media.SponsoredBy = params
		case native1.DataAssetTypeDesc:
			media.Body = params
		case native1.DataAssetTypeCTAText:
			media.CTA = params
		}
	}
}

func convertImage(img *nativeRequests.Image, required bool) *pbs.NativeImageParams {
	params := &pbs.NativeImageParams{Required: required}

	if img.W > 0 && img.H > 0 {
		params.Sizes = []openrtb2.Format{{W: img.W, H: img.H}}
		return params
	}

	if img.WMin > 0 || img.HMin > 0 {
		params.AspectRatios = []pbs.AspectRatio{{
			MinWidth:    img.WMin,
			RatioWidth:  img.WMin,
			RatioHeight: img.HMin,
		}}
	}

	return params
}
