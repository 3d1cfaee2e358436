package sit

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

type SitRepository interface {
	// Create derives the private marker from the owner's mode at commit
	// time and maintains the denormalized sit counter, all in one
	// transaction so a concurrent mode sweep cannot leave a stale marker.
	Create(ctx context.Context, s *dbmysql.Sit) error
	GetByID(ctx context.Context, id uint64) (*dbmysql.Sit, error)
	Update(ctx context.Context, s *dbmysql.Sit) error
	Delete(ctx context.Context, id uint64) error
	ListByUser(ctx context.Context, userID uint64) ([]dbmysql.Sit, error)
	LatestByUser(ctx context.Context, userID uint64) (*dbmysql.Sit, error)

	// FeedByOwners selects non-stub, non-private-marked sits of the given
	// owners, newest first with id as the deterministic tiebreak.
	FeedByOwners(ctx context.Context, ownerIDs []uint64) ([]dbmysql.Sit, error)

	ListInRange(ctx context.Context, userID uint64, from, to time.Time) ([]dbmysql.Sit, error)
	TimestampsDesc(ctx context.Context, userID uint64) ([]time.Time, error)
	CountByMonth(ctx context.Context, userID uint64, year int, month time.Month) (int, error)
	CountByYear(ctx context.Context, userID uint64, year int) (int, error)
	SumDurationInRange(ctx context.Context, userID uint64, from, to time.Time) (int, error)
	TotalDuration(ctx context.Context, userID uint64) (int, error)
	FirstSitTime(ctx context.Context, userID uint64) (time.Time, error)

	IncrementViews(ctx context.Context, id uint64) error
}

type sitRepository struct {
	db *gorm.DB
}

func NewSitRepository(db *gorm.DB) SitRepository {
	return &sitRepository{db: db}
}

func (r *sitRepository) Create(ctx context.Context, s *dbmysql.Sit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner dbmysql.User
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			Where("user_id = ?", s.UserID).First(&owner).Error; err != nil {
			return common.NotFoundOrErr(err, "user", s.UserID)
		}

		s.Private = owner.PrivacySetting == common.PrivacyPrivate
		if err := tx.Create(s).Error; err != nil {
			return err
		}

		return tx.Model(&dbmysql.User{}).
			Where("user_id = ?", s.UserID).
			Update("sits_count", gorm.Expr("sits_count + 1")).Error
	})
}

func (r *sitRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.Sit, error) {
	var s dbmysql.Sit
	err := r.db.WithContext(ctx).First(&s, "sit_id = ?", id).Error
	if err != nil {
		return nil, common.NotFoundOrErr(err, "sit", id)
	}
	return &s, nil
}

func (r *sitRepository) Update(ctx context.Context, s *dbmysql.Sit) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sitRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s dbmysql.Sit
		if err := tx.First(&s, "sit_id = ?", id).Error; err != nil {
			return common.NotFoundOrErr(err, "sit", id)
		}
		if err := tx.Delete(&dbmysql.Sit{}, "sit_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.User{}).
			Where("user_id = ? AND sits_count > 0", s.UserID).
			Update("sits_count", gorm.Expr("sits_count - 1")).Error
	})
}

func (r *sitRepository) ListByUser(ctx context.Context, userID uint64) ([]dbmysql.Sit, error) {
	var sits []dbmysql.Sit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, sit_id DESC").
		Find(&sits).Error
	return sits, err
}

func (r *sitRepository) LatestByUser(ctx context.Context, userID uint64) (*dbmysql.Sit, error) {
	var s dbmysql.Sit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, sit_id DESC").
		First(&s).Error
	if err != nil {
		return nil, common.NotFoundOrErr(err, "sit", 0)
	}
	return &s, nil
}

func (r *sitRepository) FeedByOwners(ctx context.Context, ownerIDs []uint64) ([]dbmysql.Sit, error) {
	if len(ownerIDs) == 0 {
		return []dbmysql.Sit{}, nil
	}
	var sits []dbmysql.Sit
	err := r.db.WithContext(ctx).
		Where("user_id IN ? AND body <> '' AND private = ?", ownerIDs, false).
		Order("created_at DESC, sit_id DESC").
		Find(&sits).Error
	return sits, err
}

func (r *sitRepository) ListInRange(ctx context.Context, userID uint64, from, to time.Time) ([]dbmysql.Sit, error) {
	var sits []dbmysql.Sit
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at DESC, sit_id DESC").
		Find(&sits).Error
	return sits, err
}

func (r *sitRepository) TimestampsDesc(ctx context.Context, userID uint64) ([]time.Time, error) {
	var stamps []time.Time
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Sit{}).
		Where("user_id = ?", userID).
		Order("created_at DESC, sit_id DESC").
		Pluck("created_at", &stamps).Error
	return stamps, err
}

func (r *sitRepository) CountByMonth(ctx context.Context, userID uint64, year int, month time.Month) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Sit{}).
		Where("user_id = ? AND EXTRACT(year FROM created_at) = ? AND EXTRACT(month FROM created_at) = ?",
			userID, year, int(month)).
		Count(&count).Error
	return int(count), err
}

func (r *sitRepository) CountByYear(ctx context.Context, userID uint64, year int) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Sit{}).
		Where("user_id = ? AND EXTRACT(year FROM created_at) = ?", userID, year).
		Count(&count).Error
	return int(count), err
}

func (r *sitRepository) SumDurationInRange(ctx context.Context, userID uint64, from, to time.Time) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Sit{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *sitRepository) TotalDuration(ctx context.Context, userID uint64) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Sit{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *sitRepository) FirstSitTime(ctx context.Context, userID uint64) (time.Time, error) {
	var s dbmysql.Sit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, sit_id ASC").
		First(&s).Error
	if err != nil {
		return time.Time{}, common.NotFoundOrErr(err, "sit", 0)
	}
	return s.CreatedAt, nil
}

func (r *sitRepository) IncrementViews(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Sit{}).
		Where("sit_id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}
