package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"repairdesk/internal/domain/entities"
	"repairdesk/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidPassword     = errors.New("password too short")
	ErrInvalidRole         = errors.New("invalid role")
	ErrEmailAlreadyInUse   = errors.New("email already in use")
	ErrJWTSecretNotSet     = errors.New("JWT_SECRET not configured")
	ErrInvalidOrExpiredJWT = errors.New("invalid or expired token")
)

const tokenTTL = 24 * time.Hour

// ActorClaims is the JWT payload carried by staff tokens.
type ActorClaims struct {
	Name string        `json:"name"`
	Role entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// CreateUserInput registers a new staff account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// IAuthUseCase issues and validates staff tokens. The resulting Actor is the
// explicit identity context passed into role-gated operations.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (entities.User, error)
	ActorFromToken(token string) (entities.Actor, error)
}

type AuthUseCase struct {
	users interfaces.IUserRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

func jwtSecret() ([]byte, error) {
	sec := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if sec == "" {
		return nil, ErrJWTSecretNotSet
	}
	return []byte(sec), nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if user.ID == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	secret, err := jwtSecret()
	if err != nil {
		return "", entities.User{}, err
	}

	now := time.Now()
	claims := &ActorClaims{
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", entities.User{}, err
	}
	return token, user, nil
}

func (u *AuthUseCase) CreateUser(ctx context.Context, in CreateUserInput) (entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidEmail
	}
	if len(in.Password) < 8 {
		return entities.User{}, ErrInvalidPassword
	}
	role := entities.Role(strings.ToUpper(strings.TrimSpace(in.Role)))
	switch role {
	case entities.RoleAdmin, entities.RoleTechnician, entities.RoleReceptionist:
	default:
		return entities.User{}, ErrInvalidRole
	}

	if existing, err := u.users.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	return u.users.Create(ctx, user)
}

// ActorFromToken parses and verifies a bearer token into the acting identity.
func (u *AuthUseCase) ActorFromToken(token string) (entities.Actor, error) {
	secret, err := jwtSecret()
	if err != nil {
		return entities.Actor{}, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	var claims ActorClaims
	parsed, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return entities.Actor{}, ErrInvalidOrExpiredJWT
	}

	return entities.Actor{ID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}
