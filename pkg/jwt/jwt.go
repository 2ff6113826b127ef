package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"planeacion/backend/config"
)

// ErrTokenInvalid is the only failure Verify reports: bad signature,
// malformed payload and expiry are deliberately indistinguishable.
var ErrTokenInvalid = errors.New("token inválido")

// Claims carried by an access token. Not encrypted, so never put secrets here.
type Claims struct {
	Role string `json:"role"`
	jwtv5.RegisteredClaims
}

// SubjectID parses the numeric subject.
func (c *Claims) SubjectID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Manager issues and verifies HMAC-signed access tokens.
type Manager struct {
	secret []byte
	method jwtv5.SigningMethod
	ttl    time.Duration
	issuer string
}

// NewManager creates a Manager from AuthConfig. The algorithm must be an HMAC
// one; config.Validate already guarantees that for loaded configs.
func NewManager(cfg *config.AuthConfig) (*Manager, error) {
	alg := cfg.Algorithm
	if alg == "" {
		alg = jwtv5.SigningMethodHS256.Alg()
	}
	method, ok := jwtv5.GetSigningMethod(alg).(*jwtv5.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("jwt: algorithm %q is not HMAC", alg)
	}
	return &Manager{
		secret: []byte(cfg.SecretKey),
		method: method,
		ttl:    cfg.AccessTokenTTL(),
		issuer: cfg.Issuer,
	}, nil
}

// TTL returns the access token lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue signs a token for subjectID/role that expires at issuedAt+TTL.
func (m *Manager) Issue(subjectID int64, role string, issuedAt time.Time) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(subjectID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwtv5.NewNumericDate(issuedAt),
			ExpiresAt: jwtv5.NewNumericDate(issuedAt.Add(m.ttl)),
		},
	}

	token := jwtv5.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature, algorithm and expiry as of now.
// The second return value is a diagnostic reason for logs only.
func (m *Manager) Verify(tokenString string, now time.Time) (*Claims, string, error) {
	parser := jwtv5.NewParser(
		jwtv5.WithValidMethods([]string{m.method.Alg()}),
		jwtv5.WithExpirationRequired(),
		jwtv5.WithTimeFunc(func() time.Time { return now }),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwtv5.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, diagnose(err), ErrTokenInvalid
	}
	if !token.Valid {
		return nil, "invalid", ErrTokenInvalid
	}
	if _, err := claims.SubjectID(); err != nil {
		return nil, "bad_subject", ErrTokenInvalid
	}

	return claims, "", nil
}

func diagnose(err error) string {
	switch {
	case errors.Is(err, jwtv5.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwtv5.ErrTokenSignatureInvalid):
		return "bad_signature"
	case errors.Is(err, jwtv5.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwtv5.ErrTokenRequiredClaimMissing):
		return "missing_claim"
	case errors.Is(err, jwtv5.ErrTokenUnverifiable):
		return "unverifiable"
	default:
		return "invalid"
	}
}
