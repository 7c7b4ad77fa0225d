// Package cookie keeps the browser session in HttpOnly cookies.
//
// Three cookies make up a session: access_token (15 minutes), refresh_token
// (7 days) and user, a URL-escaped JSON profile snapshot (7 days). All are
// HttpOnly, Path=/, SameSite=Lax, and Secure in production.
//
// A Store is bound to one request/response pair. Reads observe writes made
// earlier in the same request:
//
//	store := cookie.FromGin(c, opts)
//	store.SetAccessToken(pair.AccessToken)
//	store.Tokens().AccessToken // the new token
//	store.ClearAuth()          // expires all three, safe to repeat
package cookie
