package lib

import (
	"fmt"
	"net/http"
	"ollacart_server/structs"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseToken parses and validates an access token issued by the external
// identity provider and returns the claims. Only the signature and expiry
// are checked here; account state lives with the provider.
func ParseToken(tokenStr string, secret string) (*structs.AuthClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("invalid sub claim")
	}

	email, _ := claims["email"].(string)

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid exp claim")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return nil, jwt.ErrTokenExpired
	}

	return &structs.AuthClaims{
		Sub:   sub,
		Email: email,
		Exp:   int64(exp),
	}, nil
}

// ExtractClaims pulls the bearer token from the Authorization header and
// parses it.
func ExtractClaims(r *http.Request, secret string) (*structs.AuthClaims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return nil, fmt.Errorf("malformed authorization header")
	}

	return ParseToken(tokenStr, secret)
}
