package auth

import (
	"classifieds/internal/pkg/token"
)

// SessionState classifies an incoming request by which cookies it carries and
// whether they verify. Each state has exactly one outcome, so every
// transition is testable on its own.
type SessionState int

const (
	// StateHaveValidAccess: access token present and verified.
	StateHaveValidAccess SessionState = iota
	// StateAccessExpiredHaveRefresh: access present but untrusted, refresh present.
	StateAccessExpiredHaveRefresh
	// StateNoAccessHaveRefresh: no access token, refresh present.
	StateNoAccessHaveRefresh
	// StateNoTokens: neither cookie present. Terminal, no refresh attempt.
	StateNoTokens
	// StateUntrusted: invalid access and nothing to refresh with.
	StateUntrusted
)

// SessionOutcome is the controller's verdict for one request.
// NewAccessToken is non-empty only when a refresh minted a replacement;
// the controller never mints more than one per request.
type SessionOutcome struct {
	Authenticated  bool
	Refreshed      bool
	Identity       *token.Payload
	NewAccessToken string
}

// SessionController decides which token to trust per request. It holds no
// mutable state; concurrent requests may each mint their own access token,
// which is safe because old tokens expire naturally rather than being revoked.
type SessionController struct {
	codec *token.Codec
}

func NewSessionController(codec *token.Codec) *SessionController {
	return &SessionController{codec: codec}
}

// Classify maps cookie presence/validity to a session state. The refresh
// token is never run through access verification, and vice versa.
func (sc *SessionController) Classify(accessToken, refreshToken string) SessionState {
	if accessToken == "" && refreshToken == "" {
		return StateNoTokens
	}

	if accessToken != "" {
		if claims := sc.codec.VerifyAccess(accessToken); claims != nil {
			return StateHaveValidAccess
		}
		if refreshToken != "" {
			return StateAccessExpiredHaveRefresh
		}
		return StateUntrusted
	}

	return StateNoAccessHaveRefresh
}

// CheckSession runs the state machine for one request.
func (sc *SessionController) CheckSession(accessToken, refreshToken string) SessionOutcome {
	switch sc.Classify(accessToken, refreshToken) {
	case StateHaveValidAccess:
		claims := sc.codec.VerifyAccess(accessToken)
		return SessionOutcome{Authenticated: true, Identity: &claims.Payload}

	case StateAccessExpiredHaveRefresh, StateNoAccessHaveRefresh:
		return sc.attemptRefresh(refreshToken)

	default:
		return SessionOutcome{}
	}
}

// attemptRefresh verifies the refresh token and, on success, mints exactly one
// new access token carrying the refresh payload's principal fields.
func (sc *SessionController) attemptRefresh(refreshToken string) SessionOutcome {
	claims := sc.codec.VerifyRefresh(refreshToken)
	if claims == nil {
		return SessionOutcome{}
	}

	newAccess, err := sc.codec.SignAccess(claims.Payload)
	if err != nil {
		return SessionOutcome{}
	}

	return SessionOutcome{
		Authenticated:  true,
		Refreshed:      true,
		Identity:       &claims.Payload,
		NewAccessToken: newAccess,
	}
}
