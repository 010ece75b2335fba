package ktorrent

import (
	"regexp"
	"strings"
)

// MagnetPrefix starts every BitTorrent v1 magnet URI.
const MagnetPrefix = "magnet:?xt=urn:btih:"

var (
	magnetRe   = regexp.MustCompile(`magnet:\?xt=urn:btih:[0-9A-Za-z]+[^\s'"<>)]*`)
	infoHashRe = regexp.MustCompile(`\b[0-9A-Fa-f]{40}\b`)
)

// ParseMagnet finds a magnet URI inside an extracted value such as an href,
// an onclick handler, or a table cell's text. A bare 40 character info hash
// is turned into a magnet URI. Reports false if the value holds neither.
func ParseMagnet(s string) (string, bool) {
	if m := magnetRe.FindString(s); m != "" {
		return m, true
	}
	if h := infoHashRe.FindString(s); h != "" {
		return MagnetPrefix + strings.ToLower(h), true
	}
	return "", false
}
