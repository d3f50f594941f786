package friendship

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickybite-service/internal/user"
)

// Walks the full request flow across the friendship and user services:
// alice requests bob, bob's derived friendRequestCount rises, bob accepts,
// and both sides see each other as friends.
func TestRequestAcceptFlow(t *testing.T) {
	ctx := context.Background()

	edgeRepo := newFakeEdgeRepository()
	userRepo := newFakeUserRepository(
		&user.User{ID: "alice", Name: "Alice", Email: "alice@example.com"},
		&user.User{ID: "bob", Name: "Bob", Email: "bob@example.com"},
	)
	friendships := NewService(edgeRepo, userRepo, nil, nil)
	users := user.NewService(userRepo, edgeRepo, nil, "secret", time.Hour)

	before, err := users.GetProfile(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), before.FriendRequestCount)

	_, err = friendships.SendRequest(ctx, "alice", "bob")
	require.NoError(t, err)

	after, err := users.GetProfile(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, before.FriendRequestCount+1, after.FriendRequestCount)

	requests, err := friendships.ListRequests(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, requests.Received, 1)
	assert.Equal(t, "alice@example.com", requests.Received[0].User.Email)

	_, err = friendships.Respond(ctx, requests.Received[0].RequestID, "bob", StatusAccepted)
	require.NoError(t, err)

	settled, err := users.GetProfile(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(0), settled.FriendRequestCount)

	aliceFriends, err := friendships.ListFriends(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, "Bob", aliceFriends[0].Friend.Name)

	bobFriends, err := friendships.ListFriends(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, "Alice", bobFriends[0].Friend.Name)
}
