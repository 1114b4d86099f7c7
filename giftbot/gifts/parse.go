package gifts

import "strings"

// ClaimPrefix is the deep-link start payload prefix for claim links.
const ClaimPrefix = "claim_nft_"

// ParseClaimPayload extracts the gift id from a start payload of the
// form "claim_nft_<id>". ok is false for any other payload.
func ParseClaimPayload(payload string) (string, bool) {
	if !strings.HasPrefix(payload, ClaimPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(payload, ClaimPrefix)
	if id == "" {
		return "", false
	}
	return id, true
}

// SplitTitle splits a raw item title of the form "name-number" on the
// last hyphen. Titles without a hyphen have no number.
func SplitTitle(raw string) (name, number string) {
	idx := strings.LastIndex(raw, "-")
	if idx < 0 {
		return raw, ""
	}
	return raw[:idx], raw[idx+1:]
}

// DisplayTitle renders "name #number", or just the name when the raw
// title carries no number suffix.
func DisplayTitle(raw string) string {
	name, number := SplitTitle(raw)
	if number == "" {
		return name
	}
	return name + " #" + number
}

// rawTitle returns the trailing path segment of an item link.
func rawTitle(link string) string {
	idx := strings.LastIndex(link, "/")
	if idx < 0 {
		return link
	}
	return link[idx+1:]
}
