package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

// FollowRepository is the directed-edge half of the graph store.
type FollowRepository interface {
	Create(ctx context.Context, followerID, followedID uint64) (*dbmysql.Relationship, error)
	Delete(ctx context.Context, followerID, followedID uint64) error
	Exists(ctx context.Context, followerID, followedID uint64) (bool, error)
	FollowedIDs(ctx context.Context, userID uint64) ([]uint64, error)
	FollowerIDs(ctx context.Context, userID uint64) ([]uint64, error)

	// SuggestionCandidates returns ids of users followed by at least
	// minShared of the given accounts, with how many of them follow each.
	SuggestionCandidates(ctx context.Context, followerIDs []uint64, minShared int) ([]uint64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followedID uint64) (*dbmysql.Relationship, error) {
	rel := &dbmysql.Relationship{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.WithContext(ctx).Create(rel).Error; err != nil {
		return nil, err
	}
	return rel, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followedID uint64) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&dbmysql.Relationship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &common.NotFoundError{Resource: "relationship", ID: followedID}
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followedID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) FollowedIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Where("follower_id = ?", userID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

func (r *followRepository) FollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Where("followed_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *followRepository) SuggestionCandidates(ctx context.Context, followerIDs []uint64, minShared int) ([]uint64, error) {
	if len(followerIDs) == 0 {
		return nil, nil
	}
	if minShared < 1 {
		return nil, errors.New("minShared must be positive")
	}

	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Relationship{}).
		Select("followed_id").
		Where("follower_id IN ?", followerIDs).
		Group("followed_id").
		Having("COUNT(follower_id) >= ?", minShared).
		Pluck("followed_id", &ids).Error
	return ids, err
}
