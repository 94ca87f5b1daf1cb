package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"classifieds/internal/domain"
)

// Payload is the identity carried by both token flavors. Access and refresh
// tokens share this shape but are signed with independent secrets, so one can
// never be replayed as the other.
type Payload struct {
	PrincipalID string           `json:"id"`
	Username    string           `json:"username"`
	Email       string           `json:"email"`
	Role        string           `json:"role"`
	Entity      domain.EntityType `json:"entity"`
	IsBanned    bool             `json:"is_banned"`
	BanReason   []string         `json:"ban_reason,omitempty"`
	BanEndDate  *time.Time       `json:"ban_end_date,omitempty"`
}

type Claims struct {
	Payload
	jwtlib.RegisteredClaims
}

// PayloadFor snapshots a principal's identity and ban state. Ban fields are
// captured at signing time; they are not re-read on verification.
func PayloadFor(p domain.Principal) Payload {
	return Payload{
		PrincipalID: p.ID(),
		Username:    p.DisplayName(),
		Email:       p.Email(),
		Role:        string(p.Role()),
		Entity:      p.Entity,
		IsBanned:    p.IsBanned(),
		BanReason:   p.BanReason(),
		BanEndDate:  p.BanEndDate(),
	}
}

type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (c *Codec) AccessTTL() time.Duration  { return c.accessTTL }
func (c *Codec) RefreshTTL() time.Duration { return c.refreshTTL }

func (c *Codec) SignAccess(p Payload) (string, error) {
	return sign(p, c.accessSecret, c.accessTTL)
}

func (c *Codec) SignRefresh(p Payload) (string, error) {
	return sign(p, c.refreshSecret, c.refreshTTL)
}

// VerifyAccess decodes an access token. It returns nil on ANY failure
// (expired, malformed, wrong signature) so callers treat nil uniformly as
// "untrusted" and decide the user-visible outcome themselves.
func (c *Codec) VerifyAccess(tokenStr string) *Claims {
	return verify(tokenStr, c.accessSecret)
}

// VerifyRefresh decodes a refresh token; same nil-on-failure contract.
func (c *Codec) VerifyRefresh(tokenStr string) *Claims {
	return verify(tokenStr, c.refreshSecret)
}

func sign(p Payload, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Payload: p,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func verify(tokenStr string, secret []byte) *Claims {
	if tokenStr == "" {
		return nil
	}

	t, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return nil
	}

	claims, ok := t.Claims.(*Claims)
	if !ok {
		return nil
	}

	return claims
}
