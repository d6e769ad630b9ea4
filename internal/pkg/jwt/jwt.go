package jwt

import (
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	AccountID int64  `json:"account_id"`
	Email     string `json:"email"`
	TenantID  string `json:"tenant_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type JSONWebToken struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
}

// NewJSONWebToken parses the PEM-encoded RS256 key pair. The private key may
// be empty on instances that only verify tokens issued elsewhere.
func NewJSONWebToken(privateKeyPEM, publicKeyPEM string) (*JSONWebToken, error) {
	j := &JSONWebToken{}

	if privateKeyPEM != "" {
		pk, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
		if err != nil {
			return nil, err
		}
		j.privateKey = pk
	}

	pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, err
	}
	j.publicKey = pub

	return j, nil
}

func (j *JSONWebToken) Sign(claims Claims, expiry time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(expiry))

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	signed, err := token.SignedString(j.privateKey)
	if err != nil {
		return "", errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while signing the session token")
	}

	return signed, nil
}

func (j *JSONWebToken) Parse(tokenString string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return j.publicKey, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New(http.StatusUnauthorized, status.UNAUTHORIZED, "session token is invalid or has expired")
	}

	return claims, nil
}
