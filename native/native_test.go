package native

import (
	"testing"

	"github.com/mxmCherry/openrtb/v15/native1"
	nativeRequests "github.com/mxmCherry/openrtb/v15/native1/request"
	"github.com/mxmCherry/openrtb/v15/openrtb2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adbeam/bid-adapter/pbs"
)

func TestConvertORTBToLegacyNilSafe(t *testing.T) {
	assert.Nil(t, ConvertORTBToLegacy(nil))
}

func TestConvertORTBToLegacyWithoutORTBBlock(t *testing.T) {
	media := &pbs.NativeMedia{Title: &pbs.NativeTitleParams{Required: true, Len: 25}}

	assert.Same(t, media, ConvertORTBToLegacy(media))
}

func TestConvertORTBToLegacyAssets(t *testing.T) {
	media := &pbs.NativeMedia{
		ORTB: &nativeRequests.Request{
			Assets: []nativeRequests.Asset{
				{
					ID:       1,
					Required: 1,
					Title:    &nativeRequests.Title{Len: 140},
				},
				{
					ID:  2,
					Img: &nativeRequests.Image{Type: native1.ImageAssetTypeMain, W: 1200, H: 627},
				},
				{
					ID:       3,
					Required: 1,
					Img:      &nativeRequests.Image{Type: native1.ImageAssetTypeIcon, WMin: 50, HMin: 50},
				},
				{
					ID:   4,
					Data: &nativeRequests.Data{Type: native1.DataAssetTypeSponsored, Len: 25},
				},
				{
					ID:   5,
					Data: &nativeRequests.Data{Type: native1.DataAssetTypeDesc, Len: 90},
				},
				{
					ID:   6,
					Data: &nativeRequests.Data{Type: native1.DataAssetTypeCTAText, Len: 15},
				},
			},
		},
	}

	converted := ConvertORTBToLegacy(media)

	require.NotNil(t, converted)
	assert.Nil(t, converted.ORTB)

	assert.Equal(t, &pbs.NativeTitleParams{Required: true, Len: 140}, converted.Title)

	require.NotNil(t, converted.Image)
	assert.False(t, converted.Image.Required)
	assert.Equal(t, []openrtb2.Format{{W: 1200, H: 627}}, converted.Image.Sizes)

	require.NotNil(t, converted.Icon)
	assert.True(t, converted.Icon.Required)
	assert.Equal(t, []pbs.AspectRatio{{MinWidth: 50, RatioWidth: 50, RatioHeight: 50}}, converted.Icon.AspectRatios)

	assert.Equal(t, &pbs.NativeDataParams{Len: 25}, converted.SponsoredBy)
	assert.Equal(t, &pbs.NativeDataParams{Len: 90}, converted.Body)
	assert.Equal(t, &pbs.NativeDataParams{Len: 15}, converted.CTA)
}

func TestConvertORTBToLegacyDoesNotMutateInput(t *testing.T) {
	media := &pbs.NativeMedia{
		ORTB: &nativeRequests.Request{
			Assets: []nativeRequests.Asset{
				{ID: 1, Title: &nativeRequests.Title{Len: 140}},
			},
		},
	}

	ConvertORTBToLegacy(media)

	assert.NotNil(t, media.ORTB)
	assert.Nil(t, media.Title)
}
