package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pazarlabs/pazar/pkg/errs"
)

func CreateJWTToken(userID int64, username string, externalID string, jwtSecretKey string, jwtKid string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["username"] = username
	claims["externalID"] = externalID
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = jwtKid

	return token.SignedString([]byte(jwtSecretKey))
}

// VerifyJWTToken validates a bearer token and returns the user id it carries.
func VerifyJWTToken(tokenString string, jwtSecretKey string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return 0, errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errs.ErrNotLoggedIn
	}

	userID, ok := claims["userID"].(float64)
	if !ok {
		return 0, errs.ErrNotLoggedIn
	}

	return int64(userID), nil
}
