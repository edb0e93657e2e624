package pbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAdFormat(t *testing.T) {
	testCases := []struct {
		input    string
		expected AdFormat
		hasError bool
	}{
		{input: "banner", expected: AdFormatBanner},
		{input: "video", expected: AdFormatVideo},
		{input: "native", expected: AdFormatNative},
		{input: "audio", hasError: true},
		{input: "BANNER", hasError: true},
		{input: "", hasError: true},
	}

	for _, test := range testCases {
		format, err := ParseAdFormat(test.input)

		if test.hasError {
			assert.Error(t, err, test.input)
		} else {
			assert.NoError(t, err, test.input)
			assert.Equal(t, test.expected, format, test.input)
		}
	}
}

func TestAdFormatsCoversParseAdFormat(t *testing.T) {
	for _, format := range AdFormats() {
		parsed, err := ParseAdFormat(string(format))
		assert.NoError(t, err)
		assert.Equal(t, format, parsed)
	}
}
