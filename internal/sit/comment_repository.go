package sit

import (
	"context"

	"gorm.io/gorm"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

type CommentRepository interface {
	Create(ctx context.Context, c *dbmysql.Comment) error
	GetByID(ctx context.Context, id uint64) (*dbmysql.Comment, error)
	ListBySit(ctx context.Context, sitID uint64) ([]dbmysql.Comment, error)
	CommenterIDs(ctx context.Context, sitID uint64) ([]uint64, error)
	Delete(ctx context.Context, id uint64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *dbmysql.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.Comment, error) {
	var c dbmysql.Comment
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, common.NotFoundOrErr(err, "comment", id)
	}
	return &c, nil
}

func (r *commentRepository) ListBySit(ctx context.Context, sitID uint64) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	err := r.db.WithContext(ctx).
		Where("sit_id = ?", sitID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CommenterIDs(ctx context.Context, sitID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Comment{}).
		Distinct("user_id").
		Where("sit_id = ?", sitID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *commentRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&dbmysql.Comment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &common.NotFoundError{Resource: "comment", ID: id}
	}
	return nil
}
