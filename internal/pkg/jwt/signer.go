// Package jwt issues and verifies the admin session tokens. Access and
// refresh tokens are signed with separate HS256 keys and carry their kind,
// so one can never stand in for the other.
package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind tells access and refresh tokens apart.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

const (
	TokenIssuer   = "placement-portal"
	AdminAudience = "portal-admin"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrNoKey        = errors.New("signing key not configured")
)

// Admin is the identity a verified token speaks for.
type Admin struct {
	ID       uuid.UUID
	Username string
}

// Pair is what a login or refresh hands back.
type Pair struct {
	Access           string
	Refresh          string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// AdminClaims is the token payload. The admin id travels as the subject;
// refresh tokens leave Username empty.
type AdminClaims struct {
	Kind     Kind   `json:"kind"`
	Username string `json:"username,omitempty"`
	jwtlib.RegisteredClaims
}

type Service interface {
	IssuePair(a Admin) (Pair, error)
	VerifyAccess(token string) (Admin, error)
	VerifyRefresh(token string) (Admin, error)
}

type key struct {
	secret []byte
	ttl    time.Duration
}

// Signer implements Service with one key per token kind.
type Signer struct {
	keys map[Kind]key
	now  func() time.Time
}

type Option func(*Signer)

// WithClock replaces time.Now for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) { s.now = now }
}

func NewSigner(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration, opts ...Option) *Signer {
	s := &Signer{
		keys: map[Kind]key{
			KindAccess:  {secret: []byte(accessSecret), ttl: accessTTL},
			KindRefresh: {secret: []byte(refreshSecret), ttl: refreshTTL},
		},
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Signer) IssuePair(a Admin) (Pair, error) {
	var p Pair
	var err error
	if p.Access, p.AccessExpiresAt, err = s.sign(KindAccess, a); err != nil {
		return Pair{}, err
	}
	if p.Refresh, p.RefreshExpiresAt, err = s.sign(KindRefresh, Admin{ID: a.ID}); err != nil {
		return Pair{}, err
	}
	return p, nil
}

func (s *Signer) VerifyAccess(token string) (Admin, error) {
	return s.verify(KindAccess, token)
}

func (s *Signer) VerifyRefresh(token string) (Admin, error) {
	return s.verify(KindRefresh, token)
}

func (s *Signer) keyFor(kind Kind) (key, error) {
	k, ok := s.keys[kind]
	if !ok || len(k.secret) == 0 || k.ttl <= 0 {
		return key{}, ErrNoKey
	}
	return k, nil
}

func (s *Signer) sign(kind Kind, a Admin) (string, time.Time, error) {
	k, err := s.keyFor(kind)
	if err != nil {
		return "", time.Time{}, err
	}
	now := s.now().UTC()
	exp := now.Add(k.ttl)

	claims := AdminClaims{
		Kind:     kind,
		Username: a.Username,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   a.ID.String(),
			Audience:  jwtlib.ClaimStrings{AdminAudience},
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(k.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// verify uses the key of kind; a token of the other kind fails its signature.
func (s *Signer) verify(kind Kind, token string) (Admin, error) {
	k, err := s.keyFor(kind)
	if err != nil {
		return Admin{}, err
	}

	var claims AdminClaims
	_, err = jwtlib.ParseWithClaims(token, &claims,
		func(*jwtlib.Token) (any, error) { return k.secret, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(TokenIssuer),
		jwtlib.WithAudience(AdminAudience),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return Admin{}, ErrTokenExpired
	case err != nil:
		return Admin{}, ErrTokenInvalid
	case claims.Kind != kind:
		return Admin{}, ErrTokenInvalid
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil || id == uuid.Nil {
		return Admin{}, ErrTokenInvalid
	}
	return Admin{ID: id, Username: claims.Username}, nil
}
