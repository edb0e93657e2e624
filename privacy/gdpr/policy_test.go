package gdpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"
)

func TestSignalValue(t *testing.T) {
	testCases := []struct {
		description string
		policy      Policy
		expected    string
	}{
		{
			description: "Applies true",
			policy:      Policy{Applies: pointer.Bool(true), Consent: "abc"},
			expected:    "1",
		},
		{
			description: "Applies false",
			policy:      Policy{Applies: pointer.Bool(false), Consent: "abc"},
			expected:    "0",
		},
		{
			description: "Applies unknown",
			policy:      Policy{Consent: "abc"},
			expected:    "0",
		},
	}

	for _, test := range testCases {
		assert.Equal(t, test.expected, test.policy.SignalValue(), test.description)
	}
}
