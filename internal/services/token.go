package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ydataai/go-core/pkg/common/logging"

	"github.com/ydataai/search-service/internal/configurations"
	searchErrors "github.com/ydataai/search-service/internal/errors"
	"github.com/ydataai/search-service/internal/models"
)

// TokenService defines an interface for validating access tokens.
type TokenService interface {
	Decode(ctx context.Context, tokenString string) (models.UserInfo, error)
}

// HMACTokenService defines the HMAC token service struct.
type HMACTokenService struct {
	configuration configurations.TokenServiceConfiguration
	logger        logging.Logger
}

// NewHMACTokenService creates a new HMAC token service struct.
func NewHMACTokenService(logger logging.Logger,
	configuration configurations.TokenServiceConfiguration) *HMACTokenService {

	return &HMACTokenService{
		configuration: configuration,
		logger:        logger,
	}
}

// Create a new JWT token based on the Access Claims models.
func (hts *HMACTokenService) Create(ac models.AccessClaims) (string, error) {
	accessClaims := models.AccessClaims{
		Name:  ac.Name,
		Email: ac.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(hts.configuration.UserJWTExpires)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)

	// Sign and get the complete encoded token as a string using the secret.
	return token.SignedString(hts.configuration.HMACSecret)
}

// Decode validates the token and returns the claims.
func (hts *HMACTokenService) Decode(_ context.Context, tokenString string) (models.UserInfo, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Don't forget to validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return hts.configuration.HMACSecret, nil
	})

	if token == nil {
		return models.UserInfo{}, searchErrors.ErrorTokenContainsInvalidSegments
	}

	if token.Valid {
		claims := token.Claims.(jwt.MapClaims)
		return hts.userInfo(claims)
	}

	if ve, ok := err.(*jwt.ValidationError); ok {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return models.UserInfo{}, searchErrors.ErrorTokenMalformed
		} else if ve.Errors&jwt.ValidationErrorExpired != 0 {
			return models.UserInfo{}, searchErrors.ErrorTokenExpired
		} else if ve.Errors&jwt.ValidationErrorNotValidYet != 0 {
			return models.UserInfo{}, searchErrors.ErrorTokenInactive
		} else if ve.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
			return models.UserInfo{}, searchErrors.ErrorTokenSignatureInvalid
		}
	}
	return models.UserInfo{}, fmt.Errorf("couldn't handle this token: %v", err)
}

// userInfo maps the configured identity claims into a UserInfo.
func (hts *HMACTokenService) userInfo(claims jwt.MapClaims) (models.UserInfo, error) {
	uid, ok := claims[hts.configuration.UserIDClaim].(string)
	if !ok {
		return models.UserInfo{}, fmt.Errorf("token has no %q claim", hts.configuration.UserIDClaim)
	}

	name, _ := claims[hts.configuration.UserNameClaim].(string)

	return models.UserInfo{
		UID:  uid,
		Name: name,
	}, nil
}
