package friendship

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, edge *FriendEdge) error
	// FindPair looks up the edge for the exact ordered (requester, target)
	// pair, any status.
	FindPair(ctx context.Context, requesterID, targetID string) (*FriendEdge, error)
	// FindPendingForTarget is the scoped lookup behind respond: it matches
	// id, target, and pending status in one query so a wrong responder and
	// a missing edge are indistinguishable.
	FindPendingForTarget(ctx context.Context, id, targetID string) (*FriendEdge, error)
	Save(ctx context.Context, edge *FriendEdge) error
	ListPendingReceived(ctx context.Context, userID string) ([]FriendEdge, error)
	ListPendingSent(ctx context.Context, userID string) ([]FriendEdge, error)
	ListAcceptedFor(ctx context.Context, userID string) ([]FriendEdge, error)
	// DeleteAcceptedBetween removes the accepted edge between the two users
	// in either direction. Deleting nothing is not an error.
	DeleteAcceptedBetween(ctx context.Context, userID, otherID string) error
	CountPendingFor(ctx context.Context, userID string) (int64, error)
}

type friendshipRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(ctx context.Context, edge *FriendEdge) error {
	return r.db.WithContext(ctx).Create(edge).Error
}

func (r *friendshipRepository) FindPair(ctx context.Context, requesterID, targetID string) (*FriendEdge, error) {
	var edge FriendEdge
	err := r.db.WithContext(ctx).
		Where("requester_id = ? AND target_id = ?", requesterID, targetID).
		First(&edge).Error
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (r *friendshipRepository) FindPendingForTarget(ctx context.Context, id, targetID string) (*FriendEdge, error) {
	var edge FriendEdge
	err := r.db.WithContext(ctx).
		Where("id = ? AND target_id = ? AND status = ?", id, targetID, StatusPending).
		First(&edge).Error
	if err != nil {
		return nil, err
	}
	return &edge, nil
}

func (r *friendshipRepository) Save(ctx context.Context, edge *FriendEdge) error {
	return r.db.WithContext(ctx).Save(edge).Error
}

func (r *friendshipRepository) ListPendingReceived(ctx context.Context, userID string) ([]FriendEdge, error) {
	var edges []FriendEdge
	err := r.db.WithContext(ctx).
		Where("target_id = ? AND status = ?", userID, StatusPending).
		Find(&edges).Error
	return edges, err
}

func (r *friendshipRepository) ListPendingSent(ctx context.Context, userID string) ([]FriendEdge, error) {
	var edges []FriendEdge
	err := r.db.WithContext(ctx).
		Where("requester_id = ? AND status = ?", userID, StatusPending).
		Find(&edges).Error
	return edges, err
}

func (r *friendshipRepository) ListAcceptedFor(ctx context.Context, userID string) ([]FriendEdge, error) {
	var edges []FriendEdge
	err := r.db.WithContext(ctx).
		Where("status = ? AND (requester_id = ? OR target_id = ?)", StatusAccepted, userID, userID).
		Find(&edges).Error
	return edges, err
}

func (r *friendshipRepository) DeleteAcceptedBetween(ctx context.Context, userID, otherID string) error {
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusAccepted).
		Where("(requester_id = ? AND target_id = ?) OR (requester_id = ? AND target_id = ?)",
			userID, otherID, otherID, userID).
		Delete(&FriendEdge{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (r *friendshipRepository) CountPendingFor(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&FriendEdge{}).
		Where("target_id = ? AND status = ?", userID, StatusPending).
		Count(&count).Error
	return count, err
}
