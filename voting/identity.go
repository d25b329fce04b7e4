package voting

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/alex-pricope/live-event-voting/logging"
)

// UnknownIdentity pools every client without a usable network address into a
// single voter. Accepted limitation for clients behind strippers/proxies.
const UnknownIdentity = "unknown"

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
const tokenLength = 16

// ResolveIdentity derives the stable voter key from the client address and
// the optional persistent token. Same device, same key: the token
// distinguishes devices sharing one address (office NAT, venue wifi).
func ResolveIdentity(ip, token string) string {
	if ip == "" {
		ip = UnknownIdentity
	}
	if token == "" {
		return ip
	}
	return ip + "#" + token
}

// NewVoterToken mints an opaque token for a first-time voter. The caller is
// responsible for handing it back to the client (cookie) so later
// submissions resolve to the same identity.
func NewVoterToken() string {
	token, err := gonanoid.Generate(tokenAlphabet, tokenLength)
	if err != nil {
		// Generate only fails on a broken alphabet/length combination.
		logging.Log.Errorf("IDENTITY: token generation failed: %v", err)
		return ""
	}
	return token
}
