package playmovies

// Scope is an OAuth2 authorization scope accepted by the Play Movies Partner API.
type Scope string

const (
	// PlaymoviesPartnerReadonlyScope grants read access to the digital assets
	// a partner publishes on Google Play Movies & TV.
	PlaymoviesPartnerReadonlyScope Scope = "https://www.googleapis.com/auth/playmovies_partner.readonly"
)

// DefaultScope is used by a call when no scope was added to it.
const DefaultScope = PlaymoviesPartnerReadonlyScope

// String returns the canonical scope URI.
func (s Scope) String() string {
	return string(s)
}
