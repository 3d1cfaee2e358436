package sit

import (
	"context"

	"gorm.io/gorm"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

// LikeRepository stores existence-only likes and favourites against any
// likeable target.
type LikeRepository interface {
	CreateLike(ctx context.Context, userID uint64, target common.Likeable) (*dbmysql.Like, error)
	DeleteLike(ctx context.Context, userID uint64, target common.Likeable) error
	HasLike(ctx context.Context, userID uint64, target common.Likeable) (bool, error)

	CreateFavourite(ctx context.Context, userID uint64, target common.Likeable) error
	DeleteFavourite(ctx context.Context, userID uint64, target common.Likeable) error
	HasFavourite(ctx context.Context, userID uint64, target common.Likeable) (bool, error)
	FavouriteSitIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) CreateLike(ctx context.Context, userID uint64, target common.Likeable) (*dbmysql.Like, error) {
	like := &dbmysql.Like{
		UserID:       userID,
		LikeableType: target.LikeableType(),
		LikeableID:   target.LikeableID(),
	}
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return nil, err
	}
	return like, nil
}

func (r *likeRepository) DeleteLike(ctx context.Context, userID uint64, target common.Likeable) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND likeable_type = ? AND likeable_id = ?",
			userID, target.LikeableType(), target.LikeableID()).
		Delete(&dbmysql.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &common.NotFoundError{Resource: "like", ID: target.LikeableID()}
	}
	return nil
}

func (r *likeRepository) HasLike(ctx context.Context, userID uint64, target common.Likeable) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Like{}).
		Where("user_id = ? AND likeable_type = ? AND likeable_id = ?",
			userID, target.LikeableType(), target.LikeableID()).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CreateFavourite(ctx context.Context, userID uint64, target common.Likeable) error {
	fav := &dbmysql.Favourite{
		UserID:         userID,
		FavourableType: target.LikeableType(),
		FavourableID:   target.LikeableID(),
	}
	return r.db.WithContext(ctx).Create(fav).Error
}

func (r *likeRepository) DeleteFavourite(ctx context.Context, userID uint64, target common.Likeable) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND favourable_type = ? AND favourable_id = ?",
			userID, target.LikeableType(), target.LikeableID()).
		Delete(&dbmysql.Favourite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &common.NotFoundError{Resource: "favourite", ID: target.LikeableID()}
	}
	return nil
}

func (r *likeRepository) HasFavourite(ctx context.Context, userID uint64, target common.Likeable) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Favourite{}).
		Where("user_id = ? AND favourable_type = ? AND favourable_id = ?",
			userID, target.LikeableType(), target.LikeableID()).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) FavouriteSitIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Favourite{}).
		Where("user_id = ? AND favourable_type = ?", userID, "Sit").
		Pluck("favourable_id", &ids).Error
	return ids, err
}
