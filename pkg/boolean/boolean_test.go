package boolean_test

import (
	"strings"
	"testing"

	"github.com/stowd/stowd/pkg/boolean"
	"github.com/stretchr/testify/assert"
)

func TestIsBool_RecognizedTokensAnyCase(t *testing.T) {
	for _, tok := range boolean.Tokens() {
		for _, variant := range []string{tok, strings.ToUpper(tok), strings.ToUpper(tok[:1])+tok[1:]} {
			assert.True(t, boolean.IsBool(variant), "%q should be a boolean token", variant)
		}
	}
}

func TestIsBool_Rejects(t *testing.T) {
	for _, s := range []string{"", "maybe", "2", "-1", "y", "n", "t", "f", "stowed", "enable", "yes please", " yes", "no "} {
		assert.False(t, boolean.IsBool(s), "%q should not be a boolean token", s)
	}
}

func TestIsTrue(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"YES", true},
		{"Off", false},
		{"0", false},
		{"stow", true},
		{"Unstow", false},
		{"on", true},
		{"1", true},
		{" true ", false},
		{"yes\n", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, boolean.IsTrue(tt.in))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"stow", "unstow", "true", "false", "yes", "no", "on", "off", "1", "0"},
		boolean.Tokens())
}
