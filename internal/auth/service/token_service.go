package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/errors"
	identitydomain "github.com/patrolbook/patrolbook/internal/identity/domain"
)

const bearerPrefix = "Bearer "

// tokenClaims is the wire shape of the signed payload.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService returns a TokenService signing HS256 tokens with the
// given secret and lifetime. An empty secret is a configuration error and is
// rejected here rather than at first use.
func NewJWTTokenService(secret []byte, ttl time.Duration) (TokenService, error) {
	if len(secret) == 0 {
		return nil, domain.ErrMissingSigningSecret
	}
	if ttl <= 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "token lifetime must be positive")
	}
	return &jwtTokenService{secret: secret, ttl: ttl}, nil
}

func (s *jwtTokenService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtTokenService) Issue(subjectID, role string) (string, error) {
	subjectID = strings.TrimSpace(subjectID)
	role = strings.TrimSpace(role)
	if subjectID == "" {
		return "", errors.Wrap(errors.ErrInvalidInput, "subject id is required")
	}
	if role == "" {
		return "", errors.Wrap(errors.ErrInvalidInput, "role is required")
	}

	now := time.Now()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    domain.TokenIssuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.Must(uuid.NewV7()).String(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	if strings.Count(signed, ".") != 2 {
		return "", errors.New("signed token does not have three segments")
	}
	return signed, nil
}

func (s *jwtTokenService) Verify(token string) (*domain.TokenPayload, error) {
	raw, err := normalizeToken(token)
	if err != nil {
		return nil, err
	}

	claims := &tokenClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrSignatureMismatch
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrSignatureMismatch
		default:
			return nil, domain.ErrMalformedToken
		}
	}
	return payloadFromClaims(claims)
}

// DecodeUnverified skips signature verification but still rejects tokens that
// are malformed or expired.
func (s *jwtTokenService) DecodeUnverified(token string) (*domain.TokenPayload, error) {
	raw, err := normalizeToken(token)
	if err != nil {
		return nil, err
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, domain.ErrMalformedToken
	}
	if claims.ExpiresAt == nil {
		return nil, domain.ErrMalformedToken
	}
	if time.Now().After(claims.ExpiresAt.Time) {
		return nil, domain.ErrTokenExpired
	}
	return payloadFromClaims(claims)
}

// normalizeToken strips an optional Bearer prefix, rejects blank and literal
// null-ish values, and enforces the three-segment shape before any decoding.
func normalizeToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if len(token) >= len(bearerPrefix) && strings.EqualFold(token[:len(bearerPrefix)], bearerPrefix) {
		token = strings.TrimSpace(token[len(bearerPrefix):])
	}
	switch token {
	case "", "null", "undefined":
		return "", domain.ErrMalformedToken
	}
	if strings.Count(token, ".") != 2 {
		return "", domain.ErrMalformedToken
	}
	return token, nil
}

func payloadFromClaims(claims *tokenClaims) (*domain.TokenPayload, error) {
	if claims.Subject == "" || claims.Role == "" {
		return nil, domain.ErrMalformedToken
	}
	payload := &domain.TokenPayload{
		SubjectID: claims.Subject,
		Role:      identitydomain.CoarseRole(claims.Role),
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		payload.ExpiresAt = claims.ExpiresAt.Time
	}
	return payload, nil
}
