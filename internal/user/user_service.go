package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"quickybite-service/internal/cache"
)

// Custom errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPronouns    = errors.New("invalid pronoun selection")
)

// PendingRequestCounter reports how many pending friend requests target a
// user. Implemented by the friendship repository; injected as an interface
// so the count stays derived from the edges themselves instead of a
// separately maintained column.
type PendingRequestCounter interface {
	CountPendingFor(ctx context.Context, userID string) (int64, error)
}

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (*UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*UserResponse, error)
	SetProfilePicture(ctx context.Context, userID, url string) (*UserResponse, error)
	ListUsers(ctx context.Context, callerID string) ([]Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type userService struct {
	repo      Repository
	pending   PendingRequestCounter
	counters  *cache.Counters
	jwtSecret string
	jwtExpire time.Duration
}

func NewService(repo Repository, pending PendingRequestCounter, counters *cache.Counters, jwtSecret string, jwtExpire time.Duration) Service {
	return &userService{
		repo:      repo,
		pending:   pending,
		counters:  counters,
		jwtSecret: jwtSecret,
		jwtExpire: jwtExpire,
	}
}

func (s *userService) generateJWT(u *User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"exp":   time.Now().Add(s.jwtExpire).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	existing, _ := s.repo.FindByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Pronouns: "he/him",
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, u), nil
}

func (s *userService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(u)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, User: *s.toResponse(ctx, u)}, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return s.toResponse(ctx, u), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Pronouns != "" && !allowedPronouns[req.Pronouns] {
		return nil, ErrInvalidPronouns
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.PhoneNumber != "" {
		u.PhoneNumber = req.PhoneNumber
	}
	if req.Pronouns != "" {
		u.Pronouns = req.Pronouns
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, u), nil
}

func (s *userService) SetProfilePicture(ctx context.Context, userID, url string) (*UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u.ProfilePicture = url
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, u), nil
}

func (s *userService) ListUsers(ctx context.Context, callerID string) ([]Profile, error) {
	users, err := s.repo.ListOthers(ctx, callerID)
	if err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Profile())
	}
	return profiles, nil
}

// DeleteAccount is intentionally a no-op: accounts are never hard-deleted.
func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	return nil
}

// toResponse derives friendRequestCount from the pending edges targeting
// the user, going through the counter cache when one is configured.
func (s *userService) toResponse(ctx context.Context, u *User) *UserResponse {
	var count int64
	if s.pending != nil {
		key := cache.PendingRequestsKey(u.ID)
		if v, ok := s.counters.Get(ctx, key); ok {
			count = v
		} else if v, err := s.pending.CountPendingFor(ctx, u.ID); err == nil {
			count = v
			s.counters.Set(ctx, key, v)
		}
	}

	return &UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		PhoneNumber:        u.PhoneNumber,
		Pronouns:           u.Pronouns,
		ProfilePicture:     u.ProfilePicture,
		FriendRequestCount: count,
		CreatedAt:          u.CreatedAt,
	}
}
