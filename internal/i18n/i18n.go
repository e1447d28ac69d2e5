// Package i18n holds the built-in message catalogs. Russian is the default
// language; English is available as an alternative.
package i18n

import (
	"math/big"

	"github.com/vk/oddrange/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Catalog keys. The English source text doubles as the key.
const (
	PromptAKey           = "Enter number A (A > B): "
	PromptBKey           = "Enter number B: "
	OrderingViolationKey = "Error: A must be greater than B."
	HeaderKey            = "Odd numbers from %s to %s in descending order:"
)

// Default is the language used when no supported language matches.
var Default = language.Russian

var supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(supported)

// Match returns the supported language closest to tag, or Default.
func Match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// Messages returns the catalog for the supported language closest to tag.
func Messages(tag language.Tag) *config.Messages {
	p := message.NewPrinter(Match(tag))

	return &config.Messages{
		PromptA:           p.Sprintf(PromptAKey),
		PromptB:           p.Sprintf(PromptBKey),
		OrderingViolation: p.Sprintf(OrderingViolationKey),
		Header: func(a, b *big.Int) string {
			// Numbers are passed pre-formatted so the printer does not add
			// digit grouping.
			return p.Sprintf(HeaderKey, a.String(), b.String())
		},
	}
}
