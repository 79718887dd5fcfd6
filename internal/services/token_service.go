package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/talentnavigator/talentnavigator/internal/models"
	"github.com/talentnavigator/talentnavigator/internal/utils"
)

// AccessClaims is the token payload the API issues and verifies.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string          `json:"email,omitempty"`
	Role  models.UserRole `json:"role,omitempty"`
	Kind  string          `json:"kind,omitempty"` // "access" or "refresh"
}

type TokenService interface {
	MintAccess(u *models.User) (string, *AccessClaims, error)
	MintRefresh(u *models.User) (string, *AccessClaims, error)
	Parse(raw string) (*AccessClaims, error)
}

type TokenConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type tokenService struct {
	cfg TokenConfig
}

func NewTokenService(cfg TokenConfig) TokenService {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = time.Hour
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &tokenService{cfg: cfg}
}

func (s *tokenService) mint(u *models.User, kind string, ttl time.Duration) (string, *AccessClaims, error) {
	const op = "TokenService.mint"

	if s.cfg.Secret == "" {
		return "", nil, utils.E(utils.CodeUnavailable, op, "token secret is not configured", nil)
	}

	now := time.Now().UTC()
	claims := &AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: u.Email,
		Role:  u.Role,
		Kind:  kind,
	}
	if s.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.cfg.Audience}
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return raw, claims, nil
}

func (s *tokenService) MintAccess(u *models.User) (string, *AccessClaims, error) {
	return s.mint(u, "access", s.cfg.AccessTTL)
}

func (s *tokenService) MintRefresh(u *models.User) (string, *AccessClaims, error) {
	return s.mint(u, "refresh", s.cfg.RefreshTTL)
}

func (s *tokenService) Parse(raw string) (*AccessClaims, error) {
	const op = "TokenService.Parse"

	if s.cfg.Secret == "" {
		return nil, utils.E(utils.CodeUnavailable, op, "token secret is not configured", nil)
	}

	claims := &AccessClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || tok == nil || !tok.Valid {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid token", err)
	}

	if s.cfg.Issuer != "" && claims.Issuer != s.cfg.Issuer {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid token issuer", nil)
	}
	if s.cfg.Audience != "" {
		valid := false
		for _, aud := range claims.Audience {
			if aud == s.cfg.Audience {
				valid = true
				break
			}
		}
		if !valid {
			return nil, utils.E(utils.CodeUnauthorized, op, "invalid token audience", nil)
		}
	}
	return claims, nil
}
