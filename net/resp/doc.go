// Package resp writes the JSON envelopes returned to the browser.
//
// Success responses carry the payload as is:
//
//	resp.Success(w, board)
//	resp.WithStatusCode(w, http.StatusCreated, post)
//
// Failures share one structure:
//
//	{
//	  "code": -409,              // business code from ecode
//	  "kind": "Conflict",        // upstream error kind, when there is one
//	  "message": "...",          // human-readable message
//	  "errors": {...}            // field errors for validation failures
//	}
//
// Classified upstream errors are rendered with FromError, which keeps the
// upstream status.
package resp
