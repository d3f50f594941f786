package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepository struct {
	users map[string]*User
	next  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[string]*User)}
}

func (f *fakeRepository) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		f.next++
		u.ID = fmt.Sprintf("user-%d", f.next)
	}
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepository) Update(ctx context.Context, u *User) error {
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeRepository) ListOthers(ctx context.Context, excludeID string) ([]User, error) {
	var out []User
	for _, u := range f.users {
		if u.ID != excludeID {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fixedPendingCounter struct {
	count int64
}

func (f fixedPendingCounter) CountPendingFor(ctx context.Context, userID string) (int64, error) {
	return f.count, nil
}

const testSecret = "test-secret"

func newTestService(pending PendingRequestCounter) (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, pending, nil, testSecret, time.Hour), repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService(nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, &RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "he/him", u.Pronouns)

	// The stored credential is a hash, not the password.
	stored := repo.users[u.ID]
	assert.NotEqual(t, "hunter22", stored.Password)

	_, err = svc.Register(ctx, &RegisterRequest{Name: "Alice II", Email: "alice@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &LoginRequest{Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.User.ID)

	// The token carries the user id as subject.
	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, registered.ID, claims["sub"])
	assert.Equal(t, "alice@example.com", claims["email"])

	_, err = svc.Login(ctx, &LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, &RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, u.ID, &UpdateProfileRequest{Pronouns: "they/them", PhoneNumber: "555-0101"})
	require.NoError(t, err)
	assert.Equal(t, "they/them", updated.Pronouns)
	assert.Equal(t, "555-0101", updated.PhoneNumber)
	assert.Equal(t, "Alice", updated.Name)

	_, err = svc.UpdateProfile(ctx, u.ID, &UpdateProfileRequest{Pronouns: "xyz"})
	assert.ErrorIs(t, err, ErrInvalidPronouns)

	_, err = svc.UpdateProfile(ctx, "missing", &UpdateProfileRequest{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFriendRequestCountIsDerived(t *testing.T) {
	svc, _ := newTestService(fixedPendingCounter{count: 2})
	ctx := context.Background()

	u, err := svc.Register(ctx, &RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "hunter22"})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.FriendRequestCount)
}

func TestListUsersExcludesCaller(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	alice, err := svc.Register(ctx, &RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "hunter22"})
	require.NoError(t, err)

	profiles, err := svc.ListUsers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Bob", profiles[0].Name)
}

func TestDeleteAccountIsANoOp(t *testing.T) {
	svc, repo := newTestService(nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, &RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, u.ID))
	assert.Contains(t, repo.users, u.ID)
}
