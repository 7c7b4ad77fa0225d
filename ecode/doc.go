// Package ecode defines the error taxonomy used between boardfront and the
// upstream REST API, plus the business codes rendered to browser clients.
//
// Every failed upstream exchange is reduced to an *Error carrying one of a
// closed set of kinds:
//
//	BadRequest, Unauthorized, Forbidden, NotFound, Conflict,
//	ServerError, NetworkError, Unknown
//
// # Classifying upstream responses
//
//	err := ecode.Classify(resp.StatusCode, body)
//	// 409 {"message": "Slug \"foo\" is already in use"}
//	// => &Error{Kind: KindConflict, Message: "Slug \"foo\" is already in use", StatusCode: 409}
//
// The message is taken from the JSON "message" field when present. A body
// that is not JSON is used verbatim. Otherwise the kind's default text is used.
//
// # Fixed outcomes
//
//	ecode.Network()        // {KindNetworkError, "connection failed"}
//	ecode.SessionExpired() // {KindUnauthorized, "session expired"}
//
// # Business codes
//
// Codes follow the usual numbering scheme:
//   - 0: Success (OK)
//   - -100 to -199: Authentication/authorization errors
//   - -400 to -499: Request and resource errors
//   - -500+: Server and upstream errors
//
// Use Text to obtain the default message for a code:
//
//	message := ecode.Text(ecode.NoLogin)
//	// Returns: "Account not logged in"
package ecode
