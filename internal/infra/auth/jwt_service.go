package auth

import (
	"time"

	"recipebox/config"
	"recipebox/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const defaultTokenTTL = time.Hour

// sessionTokenClaims is the JWT body of a session token.
type sessionTokenClaims struct {
	Email    string `json:"email"`
	AuthTime int64  `json:"auth_time"`

	// IssuedAtMillis refines iat, which only has second precision.
	IssuedAtMillis int64 `json:"iat_ms,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService builds the session token service from the access secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		issuer: cfg.Env.ServiceName,
		now:    time.Now,
	}, nil
}

// Issue signs a token for uid. authTime is carried so later checks can demand a recent sign-in.
func (s *jwtService) Issue(uid, email string, authTime time.Time) (string, *service.SessionClaims, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := sessionTokenClaims{
		Email:          email,
		AuthTime:       authTime.Unix(),
		IssuedAtMillis: issuedAt.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign session token")
	}

	return signed, &service.SessionClaims{
		UID:       uid,
		Email:     email,
		AuthTime:  time.Unix(claims.AuthTime, 0),
		IssuedAt:  time.UnixMilli(claims.IssuedAtMillis),
		ExpiresAt: expiresAt,
	}, nil
}

// Validate parses and verifies a session token.
func (s *jwtService) Validate(token string) (*service.SessionClaims, error) {
	claims := &sessionTokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session token")
	}

	result := &service.SessionClaims{
		UID:      claims.Subject,
		Email:    claims.Email,
		AuthTime: time.Unix(claims.AuthTime, 0),
	}
	switch {
	case claims.IssuedAtMillis > 0:
		result.IssuedAt = time.UnixMilli(claims.IssuedAtMillis)
	case claims.IssuedAt != nil:
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}
