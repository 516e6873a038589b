package api

import (
	"errors"
	"net/http"

	"github.com/notepadhq/notepad-backend/internal/api/respond"
	"github.com/notepadhq/notepad-backend/internal/auth"
	"github.com/notepadhq/notepad-backend/internal/model"
)

// requireUser extracts and verifies the bearer credential. On failure it
// writes the error response and returns false; this must precede every
// other operation on authenticated routes.
func requireUser(w http.ResponseWriter, r *http.Request, v auth.Verifier) (*model.User, bool) {
	token, err := auth.ExtractBearerToken(r)
	if err != nil {
		respond.WriteUnauthorized(w, err.Error())
		return nil, false
	}
	user, err := v.Verify(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrUpstreamUnavailable) {
			respond.WriteInternalError(w, "Auth server error: "+err.Error())
			return nil, false
		}
		respond.WriteUnauthorized(w, "Invalid or expired token")
		return nil, false
	}
	return user, true
}
