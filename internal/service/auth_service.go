package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"progression-service/internal/event"
	"progression-service/internal/models"
	"progression-service/internal/progression"
	"progression-service/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type AuthService struct {
	Users      UserStore
	Characters CharacterStore
	Events     EventPublisher
	JWTSecret  []byte
	TokenTTL   time.Duration
}

func NewAuthService(users UserStore, characters CharacterStore, events EventPublisher, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		Users:      users,
		Characters: characters,
		Events:     events,
		JWTSecret:  []byte(jwtSecret),
		TokenTTL:   tokenTTL,
	}
}

// Signup registers a new user with a hashed password and an embedded
// character snapshot. The platform's first ordinary-role user also
// receives the founder badge; the check is a count query at signup time,
// never a cached counter.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))

	if _, err := s.Users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}
	if _, err := s.Users.FindByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username:   username,
		Email:      email,
		Password:   string(hash),
		Role:       models.RoleUser,
		Level:      1,
		Experience: 0,
	}

	if req.CharacterID != "" {
		character, err := s.Characters.FindByID(ctx, req.CharacterID)
		if err != nil {
			return nil, "", err
		}
		user.Character = character.Snapshot()
	}

	if err := s.Users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	count, err := s.Users.CountByRole(ctx, models.RoleUser)
	if err == nil && count == 1 {
		user.Badges = append(user.Badges, progression.FounderBadgeID)
		if err := s.Users.Replace(ctx, user); err != nil {
			return nil, "", err
		}
	}

	if s.Events != nil {
		if err := s.Events.Publish(event.UserSignup, map[string]interface{}{
			"user_id":  user.ID,
			"username": user.Username,
			"email":    user.Email,
		}); err != nil {
			log.Printf("publish %s failed: %v", event.UserSignup, err)
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials and issues a token. Both a missing user and a
// wrong password surface as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    "progression-service",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
		},
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}
	return signed, nil
}
