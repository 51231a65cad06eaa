package auth

// Session cookie names and the role admin tokens carry. Shared between the
// cookie issuer and the request gate so the two cannot drift apart.
const (
	AccessCookieName  = "folio_access"
	RefreshCookieName = "folio_refresh"
	RoleAdmin         = "admin"
)
