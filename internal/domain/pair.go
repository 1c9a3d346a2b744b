package domain

import (
	"regexp"
	"strings"
)

// Pair is a traded symbol pair in BASE/QUOTE form, e.g. "BTC/USDT".
type Pair string

var pairRe = regexp.MustCompile(`^[A-Z0-9]{2,10}/[A-Z0-9]{2,10}$`)

func ValidatePair(p string) bool {
	if !pairRe.MatchString(p) {
		return false
	}
	base, quote, _ := strings.Cut(p, "/")
	return base != quote
}

// Symbol returns the exchange symbol for the pair ("BTC/USDT" -> "BTCUSDT").
func (p Pair) Symbol() string {
	return strings.ReplaceAll(string(p), "/", "")
}
