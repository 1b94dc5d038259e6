// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-hotel-booking/internal/config"
	"github.com/MKhiriev/go-hotel-booking/internal/logger"
	"github.com/MKhiriev/go-hotel-booking/internal/store"
	"github.com/MKhiriev/go-hotel-booking/internal/utils"
	"github.com/MKhiriev/go-hotel-booking/internal/validators"
	"github.com/MKhiriev/go-hotel-booking/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes stored by the
// UserRepository and issues HS256 bearer tokens.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// bcryptCost is the work factor used when hashing new passwords.
	bcryptCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// now is the clock used for issuing and verifying tokens.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser hashes the plain-text password and stores a new account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email already
//     taken, see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(user.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}
	user.Password = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown email, wrong password and empty credentials all return
// ErrInvalidCredentials so callers cannot tell them apart. A storage failure
// or a malformed stored hash is returned as a wrapped error.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Msg("empty credentials")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", user.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.CheckPassword(foundUser.Password, user.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, err
	}
	if !ok {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the configured issuer as the "iss" claim and expires
// after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// CheckSession reports whether tokenString is a currently valid token.
func (a *authService) CheckSession(ctx context.Context, tokenString string) bool {
	_, err := a.ParseToken(ctx, tokenString)
	return err == nil
}
