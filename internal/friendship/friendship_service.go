package friendship

import (
	"context"
	"errors"
	"log/slog"

	"quickybite-service/internal/cache"
	"quickybite-service/internal/events"
	"quickybite-service/internal/user"
)

// Custom errors
var (
	ErrSelfRequest      = errors.New("cannot send a friend request to yourself")
	ErrDuplicateRequest = errors.New("friend request already exists")
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidStatus    = errors.New("status must be accepted or rejected")
)

type Service interface {
	SendRequest(ctx context.Context, requesterID, targetID string) (*FriendEdge, error)
	ListRequests(ctx context.Context, userID string) (*RequestsResponse, error)
	Respond(ctx context.Context, requestID, responderID, status string) (*FriendEdge, error)
	ListFriends(ctx context.Context, userID string) ([]FriendEntry, error)
	RemoveFriend(ctx context.Context, userID, otherID string) error
}

type friendshipService struct {
	repo      Repository
	users     user.Repository
	counters  *cache.Counters
	publisher events.Publisher
}

func NewService(repo Repository, users user.Repository, counters *cache.Counters, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &friendshipService{
		repo:      repo,
		users:     users,
		counters:  counters,
		publisher: publisher,
	}
}

// SendRequest creates a pending edge for the ordered (requester, target)
// pair. Only the exact pair is checked: if the target already requested
// the requester, both edges coexist and the reads collapse them.
func (s *friendshipService) SendRequest(ctx context.Context, requesterID, targetID string) (*FriendEdge, error) {
	if requesterID == targetID {
		return nil, ErrSelfRequest
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return nil, ErrUserNotFound
	}

	if existing, _ := s.repo.FindPair(ctx, requesterID, targetID); existing != nil {
		return nil, ErrDuplicateRequest
	}

	edge := &FriendEdge{
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, edge); err != nil {
		return nil, err
	}

	s.counters.Invalidate(ctx, cache.PendingRequestsKey(targetID))
	if err := s.publisher.Publish(ctx, events.Event{
		Type:      events.TypeFriendRequestSent,
		ActorID:   requesterID,
		SubjectID: targetID,
	}); err != nil {
		slog.Warn("failed to publish friend request event", "error", err)
	}

	return edge, nil
}

func (s *friendshipService) ListRequests(ctx context.Context, userID string) (*RequestsResponse, error) {
	received, err := s.repo.ListPendingReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	sent, err := s.repo.ListPendingSent(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &RequestsResponse{
		Received: make([]RequestEntry, 0, len(received)),
		Sent:     make([]RequestEntry, 0, len(sent)),
	}
	for _, edge := range received {
		if entry, ok := s.enrich(ctx, edge, edge.RequesterID); ok {
			resp.Received = append(resp.Received, entry)
		}
	}
	for _, edge := range sent {
		if entry, ok := s.enrich(ctx, edge, edge.TargetID); ok {
			resp.Sent = append(resp.Sent, entry)
		}
	}
	return resp, nil
}

// Respond transitions a pending edge to accepted or rejected. The lookup
// is scoped by (id, responder, pending) in one query, so responding to an
// already-settled request, someone else's request, or a nonexistent id all
// report not found.
func (s *friendshipService) Respond(ctx context.Context, requestID, responderID, status string) (*FriendEdge, error) {
	if status != StatusAccepted && status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	edge, err := s.repo.FindPendingForTarget(ctx, requestID, responderID)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	edge.Status = status
	if err := s.repo.Save(ctx, edge); err != nil {
		return nil, err
	}

	s.counters.Invalidate(ctx, cache.PendingRequestsKey(responderID))
	if err := s.publisher.Publish(ctx, events.Event{
		Type:      events.TypeFriendRequestDone,
		ActorID:   responderID,
		SubjectID: edge.RequesterID,
		Detail:    status,
	}); err != nil {
		slog.Warn("failed to publish friend response event", "error", err)
	}

	return edge, nil
}

// ListFriends resolves the other endpoint of every accepted edge touching
// the user. Mutual acceptance can leave two edges for the same pair; the
// view collapses them so each friend appears once.
func (s *friendshipService) ListFriends(ctx context.Context, userID string) ([]FriendEntry, error) {
	edges, err := s.repo.ListAcceptedFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(edges))
	friends := make([]FriendEntry, 0, len(edges))
	for _, edge := range edges {
		otherID := edge.RequesterID
		if otherID == userID {
			otherID = edge.TargetID
		}
		if seen[otherID] {
			continue
		}
		other, err := s.users.FindByID(ctx, otherID)
		if err != nil {
			continue
		}
		seen[otherID] = true
		friends = append(friends, FriendEntry{
			FriendshipID: edge.ID,
			Friend:       other.Profile(),
		})
	}
	return friends, nil
}

func (s *friendshipService) RemoveFriend(ctx context.Context, userID, otherID string) error {
	return s.repo.DeleteAcceptedBetween(ctx, userID, otherID)
}

func (s *friendshipService) enrich(ctx context.Context, edge FriendEdge, counterpartID string) (RequestEntry, bool) {
	counterpart, err := s.users.FindByID(ctx, counterpartID)
	if err != nil {
		return RequestEntry{}, false
	}
	return RequestEntry{
		RequestID: edge.ID,
		CreatedAt: edge.CreatedAt,
		User:      counterpart.Profile(),
	}, true
}
