package flowerctl

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/samber/lo"
)

// ValidateIPList checks a comma-separated allow-list and returns it
// normalized: tokens trimmed, empties dropped, comma-rejoined in input
// order. Host addresses are accepted as implicit /32 (or /128) networks,
// and prefixes need not have their host bits masked. The first bad token
// rejects the whole list.
func ValidateIPList(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	tokens := splitCSV(raw)
	for _, tok := range tokens {
		if !parseableNetwork(tok) {
			return "", &ValidationError{msg: fmt.Sprintf("invalid IP address or network: %s", tok)}
		}
	}
	return strings.Join(tokens, ","), nil
}

func splitCSV(raw string) []string {
	trimmed := lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Filter(trimmed, func(s string, _ int) bool { return s != "" })
}

func parseableNetwork(tok string) bool {
	if strings.Contains(tok, "/") {
		_, err := netip.ParsePrefix(tok)
		return err == nil
	}
	// A zone suffix (fe80::1%eth0) is meaningless in a web server
	// allow-list and would pass through into the rendered config.
	addr, err := netip.ParseAddr(tok)
	return err == nil && addr.Zone() == ""
}
