package server

import (
	"context"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gravitas-games/hexpaint/internal/config"
	"github.com/gravitas-games/hexpaint/pkg/models"
)

// Authentication errors
var (
	ErrMissingToken     = errors.New("missing token")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidIssuer    = errors.New("invalid issuer")
	ErrNotActivated     = errors.New("user not activated")
	ErrBanned           = errors.New("user is banned")
	ErrTokenBlacklisted = errors.New("token is blacklisted")
)

// Authenticator turns an upgrade request into a host identity.
type Authenticator interface {
	Authenticate(r *http.Request) (*models.Host, error)
}

// Blacklist reports whether a user's tokens have been revoked.
type Blacklist interface {
	IsBlacklisted(ctx context.Context, userID string) (bool, error)
}

// RedisBlacklist looks up revoked users under prefix+userID.
type RedisBlacklist struct {
	client *redis.Client
	prefix string
}

// NewRedisBlacklist creates a blacklist backed by client.
func NewRedisBlacklist(client *redis.Client, prefix string) *RedisBlacklist {
	return &RedisBlacklist{client: client, prefix: prefix}
}

// IsBlacklisted implements Blacklist.
func (b *RedisBlacklist) IsBlacklisted(ctx context.Context, userID string) (bool, error) {
	n, err := b.client.Exists(ctx, b.prefix+userID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AnonymousAuth gives every host a fresh identity. Used when JWT is disabled.
type AnonymousAuth struct{}

// Authenticate implements Authenticator.
func (AnonymousAuth) Authenticate(r *http.Request) (*models.Host, error) {
	id := uuid.NewString()
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "host-" + id[:8]
	}
	return &models.Host{ID: id, Username: name, Anonymous: true}, nil
}

// JWTValidator handles JWT token validation
type JWTValidator struct {
	issuer    string
	keyURL    string
	refresh   time.Duration
	client    *http.Client
	publicKey *ecdsa.PublicKey
	keyMu     sync.RWMutex
	blacklist Blacklist
}

// Claims represents JWT token claims issued by the login server
type Claims struct {
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Permissions int64  `json:"permissions"`
	Activated   int64  `json:"activated"`
	jwt.RegisteredClaims
}

// NewJWTValidator creates a validator without fetching a key. Call
// RefreshPublicKey or SetPublicKey before validating tokens.
func NewJWTValidator(cfg config.JWTConfig, blacklist Blacklist) *JWTValidator {
	return &JWTValidator{
		issuer:    cfg.Issuer,
		keyURL:    cfg.PublicKeyURL,
		refresh:   time.Duration(cfg.PublicKeyRefreshHrs) * time.Hour,
		client:    &http.Client{Timeout: 10 * time.Second},
		blacklist: blacklist,
	}
}

// Start fetches the public key and keeps refreshing it until ctx is done.
func (v *JWTValidator) Start(ctx context.Context) error {
	if err := v.RefreshPublicKey(ctx); err != nil {
		return fmt.Errorf("failed to fetch public key: %w", err)
	}
	go v.periodicKeyRefresh(ctx)
	log.Println("JWT validator initialized")
	return nil
}

// SetPublicKey replaces the verification key.
func (v *JWTValidator) SetPublicKey(key *ecdsa.PublicKey) {
	v.keyMu.Lock()
	v.publicKey = key
	v.keyMu.Unlock()
}

// RefreshPublicKey fetches the PEM encoded public key from the login server
func (v *JWTValidator) RefreshPublicKey(ctx context.Context) error {
	log.Printf("Fetching public key from %s", v.keyURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.keyURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build key request: %w", err)
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch public key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("public key endpoint returned status %d", resp.StatusCode)
	}

	keyData, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read public key: %w", err)
	}
	key, err := ParsePublicKey(keyData)
	if err != nil {
		return err
	}
	v.SetPublicKey(key)

	log.Println("Public key refreshed successfully")
	return nil
}

// ParsePublicKey decodes a PEM encoded ECDSA public key.
func ParsePublicKey(data []byte) (*ecdsa.PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("failed to decode PEM block")
	}
	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	ecdsaKey, ok := pubKey.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not ECDSA")
	}
	return ecdsaKey, nil
}

func (v *JWTValidator) periodicKeyRefresh(ctx context.Context) {
	if v.refresh <= 0 {
		return
	}
	ticker := time.NewTicker(v.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := v.RefreshPublicKey(ctx); err != nil {
				log.Printf("Failed to refresh public key: %v", err)
			}
		}
	}
}

// Authenticate implements Authenticator.
func (v *JWTValidator) Authenticate(r *http.Request) (*models.Host, error) {
	token := extractTokenFromHeader(r)
	if token == "" {
		return nil, ErrMissingToken
	}
	return v.ValidateToken(r.Context(), token)
}

// ValidateToken validates a JWT token and returns the host identity
func (v *JWTValidator) ValidateToken(ctx context.Context, tokenString string) (*models.Host, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		v.keyMu.RLock()
		defer v.keyMu.RUnlock()
		if v.publicKey == nil {
			return nil, errors.New("no public key loaded")
		}
		return v.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != v.issuer {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrInvalidIssuer, v.issuer, claims.Issuer)
	}
	if claims.Activated == 0 {
		return nil, ErrNotActivated
	}
	if claims.Activated == -1 {
		return nil, ErrBanned
	}

	userID := strconv.FormatInt(claims.UserID, 10)
	if v.blacklist != nil {
		listed, err := v.blacklist.IsBlacklisted(ctx, userID)
		if err != nil {
			// Redis being down must not lock hosts out.
			log.Printf("Warning: Failed to check blacklist: %v", err)
		} else if listed {
			return nil, ErrTokenBlacklisted
		}
	}

	return &models.Host{
		ID:          userID,
		Username:    claims.Username,
		Email:       claims.Email,
		Permissions: claims.Permissions,
		Activated:   claims.Activated,
	}, nil
}

// extractTokenFromHeader extracts the token from the Sec-WebSocket-Protocol
// header ("access_token, <token>"), a Bearer Authorization header or the
// token query parameter, in that order.
func extractTokenFromHeader(r *http.Request) string {
	if protocols := r.Header.Get("Sec-WebSocket-Protocol"); protocols != "" {
		parts := splitAndTrim(protocols, ",")
		if len(parts) == 2 && parts[0] == "access_token" {
			return parts[1]
		}
	}

	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return r.URL.Query().Get("token")
}

func splitAndTrim(s, sep string) []string {
	var result []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
