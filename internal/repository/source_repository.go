//go:generate mockery --name SourceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_level_reader/internal/middleware"
	"go_5_level_reader/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceRepository インターフェース
type SourceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, source *model.Source) error
	FindByID(ctx context.Context, db *gorm.DB, sourceID uuid.UUID) (*model.Source, error)
	FindPending(ctx context.Context, db *gorm.DB, limit int) ([]*model.Source, error)
	// ClaimPending は status=pending の行だけを processing に原子的に更新します。
	// 取れなかった場合（既に別の呼び出しが取った等）は false を返す
	ClaimPending(ctx context.Context, db *gorm.DB, sourceID uuid.UUID) (bool, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, sourceID uuid.UUID, status model.SourceStatus, errorNote string) error
	CheckSlugExists(ctx context.Context, db *gorm.DB, slug string) (bool, error)
}

type gormSourceRepository struct{}

func NewGormSourceRepository() SourceRepository {
	return &gormSourceRepository{}
}

func (r *gormSourceRepository) Create(ctx context.Context, tx *gorm.DB, source *model.Source) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(source)
	if result.Error != nil {
		logger.Error("Error creating source in DB",
			"error", result.Error,
			"slug", source.Slug,
		)
		return fmt.Errorf("gormSourceRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSourceRepository) FindByID(ctx context.Context, db *gorm.DB, sourceID uuid.UUID) (*model.Source, error) {
	logger := middleware.GetLogger(ctx)
	var source model.Source
	result := db.WithContext(ctx).Where("source_id = ?", sourceID).First(&source)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding source by ID in DB",
			"error", result.Error,
			"source_id", sourceID.String(),
		)
		return nil, fmt.Errorf("gormSourceRepository.FindByID: %w", result.Error)
	}
	return &source, nil
}

func (r *gormSourceRepository) FindPending(ctx context.Context, db *gorm.DB, limit int) ([]*model.Source, error) {
	logger := middleware.GetLogger(ctx)
	var sources []*model.Source
	query := db.WithContext(ctx).Where("status = ?", model.SourceStatusPending).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&sources)
	if result.Error != nil {
		logger.Error("Error finding pending sources in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSourceRepository.FindPending: %w", result.Error)
	}
	return sources, nil
}

func (r *gormSourceRepository) ClaimPending(ctx context.Context, db *gorm.DB, sourceID uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(&model.Source{}).
		Where("source_id = ? AND status = ?", sourceID, model.SourceStatusPending).
		Updates(map[string]interface{}{
			"status":     model.SourceStatusProcessing,
			"error_note": "",
		})
	if result.Error != nil {
		logger.Error("Error claiming pending source in DB",
			"error", result.Error,
			"source_id", sourceID.String(),
		)
		return false, fmt.Errorf("gormSourceRepository.ClaimPending: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *gormSourceRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, sourceID uuid.UUID, status model.SourceStatus, errorNote string) error {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{
		"status":     status,
		"error_note": errorNote,
	}
	result := tx.WithContext(ctx).Model(&model.Source{}).Where("source_id = ?", sourceID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating source status in DB",
			"error", result.Error,
			"source_id", sourceID.String(),
			"status", string(status),
		)
		return fmt.Errorf("gormSourceRepository.UpdateStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSourceRepository) CheckSlugExists(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Source{}).Where("slug = ?", slug).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking source slug existence in DB",
			"error", result.Error,
			"slug", slug,
		)
		return false, fmt.Errorf("gormSourceRepository.CheckSlugExists: %w", result.Error)
	}
	return count > 0, nil
}
