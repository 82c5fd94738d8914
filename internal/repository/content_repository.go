//go:generate mockery --name ContentRepository --output ./mocks --outpkg mocks --case=underscore
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

// ContentRepository インターフェース
type ContentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, content *model.Content) error
	CreateVersion(ctx context.Context, tx *gorm.DB, version *model.ContentVersion) error
	CreateVocabulary(ctx context.Context, tx *gorm.DB, entries []model.VocabularyEntry) error
	MarkReady(ctx context.Context, tx *gorm.DB, contentID uuid.UUID) error
	FindReadyBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Content, error)
	FindReadyBySlugWithVersions(ctx context.Context, db *gorm.DB, slug string) (*model.Content, error)
	FindVersion(ctx context.Context, db *gorm.DB, contentID uuid.UUID, level model.Level) (*model.ContentVersion, error)
	FindVocabulary(ctx context.Context, db *gorm.DB, contentID uuid.UUID) ([]model.VocabularyEntry, error)
	ListReady(ctx context.Context, db *gorm.DB) ([]*model.Content, error)
	CheckSlugExists(ctx context.Context, db *gorm.DB, slug string) (bool, error)
}

type gormContentRepository struct{}

func NewGormContentRepository() ContentRepository {
	return &gormContentRepository{}
}

func (r *gormContentRepository) Create(ctx context.Context, tx *gorm.DB, content *model.Content) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(content)
	if result.Error != nil {
		logger.Error("Error creating content in DB",
			"error", result.Error,
			"slug", content.Slug,
		)
		return fmt.Errorf("gormContentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormContentRepository) CreateVersion(ctx context.Context, tx *gorm.DB, version *model.ContentVersion) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(version)
	if result.Error != nil {
		logger.Error("Error creating content version in DB",
			"error", result.Error,
			"content_id", version.ContentID.String(),
			"level", version.Level.String(),
		)
		return fmt.Errorf("gormContentRepository.CreateVersion: %w", result.Error)
	}
	return nil
}

func (r *gormContentRepository) CreateVocabulary(ctx context.Context, tx *gorm.DB, entries []model.VocabularyEntry) error {
	logger := middleware.GetLogger(ctx)
	if len(entries) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(&entries)
	if result.Error != nil {
		logger.Error("Error creating vocabulary entries in DB",
			"error", result.Error,
			"count", len(entries),
		)
		return fmt.Errorf("gormContentRepository.CreateVocabulary: %w", result.Error)
	}
	return nil
}

func (r *gormContentRepository) MarkReady(ctx context.Context, tx *gorm.DB, contentID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Content{}).Where("content_id = ?", contentID).Update("ready", true)
	if result.Error != nil {
		logger.Error("Error marking content ready in DB",
			"error", result.Error,
			"content_id", contentID.String(),
		)
		return fmt.Errorf("gormContentRepository.MarkReady: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormContentRepository) FindReadyBySlug(ctx context.Context, db *gorm.DB, slug string) (*model.Content, error) {
	logger := middleware.GetLogger(ctx)
	var content model.Content
	result := db.WithContext(ctx).Where("slug = ? AND ready = ?", slug, true).First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding content by slug in DB",
			"error", result.Error,
			"slug", slug,
		)
		return nil, fmt.Errorf("gormContentRepository.FindReadyBySlug: %w", result.Error)
	}
	return &content, nil
}

func (r *gormContentRepository) FindReadyBySlugWithVersions(ctx context.Context, db *gorm.DB, slug string) (*model.Content, error) {
	logger := middleware.GetLogger(ctx)
	var content model.Content
	result := db.WithContext(ctx).
		Preload("Versions").
		Where("slug = ? AND ready = ?", slug, true).
		First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding content with versions in DB",
			"error", result.Error,
			"slug", slug,
		)
		return nil, fmt.Errorf("gormContentRepository.FindReadyBySlugWithVersions: %w", result.Error)
	}
	return &content, nil
}

func (r *gormContentRepository) FindVersion(ctx context.Context, db *gorm.DB, contentID uuid.UUID, level model.Level) (*model.ContentVersion, error) {
	logger := middleware.GetLogger(ctx)
	var version model.ContentVersion
	result := db.WithContext(ctx).Where("content_id = ? AND level = ?", contentID, level).First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding content version in DB",
			"error", result.Error,
			"content_id", contentID.String(),
			"level", level.String(),
		)
		return nil, fmt.Errorf("gormContentRepository.FindVersion: %w", result.Error)
	}
	return &version, nil
}

func (r *gormContentRepository) FindVocabulary(ctx context.Context, db *gorm.DB, contentID uuid.UUID) ([]model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []model.VocabularyEntry
	// 保存時の並び順のまま返す（下流のフィルタは安定であることが前提）
	result := db.WithContext(ctx).Where("content_id = ?", contentID).Order("position ASC").Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding vocabulary entries in DB",
			"error", result.Error,
			"content_id", contentID.String(),
		)
		return nil, fmt.Errorf("gormContentRepository.FindVocabulary: %w", result.Error)
	}
	return entries, nil
}

func (r *gormContentRepository) ListReady(ctx context.Context, db *gorm.DB) ([]*model.Content, error) {
	logger := middleware.GetLogger(ctx)
	var contents []*model.Content
	result := db.WithContext(ctx).Where("ready = ?", true).Order("created_at DESC").Find(&contents)
	if result.Error != nil {
		logger.Error("Error listing ready contents in DB", "error", result.Error)
		return nil, fmt.Errorf("gormContentRepository.ListReady: %w", result.Error)
	}
	return contents, nil
}

func (r *gormContentRepository) CheckSlugExists(ctx context.Context, db *gorm.DB, slug string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Content{}).Where("slug = ?", slug).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking slug existence in DB",
			"error", result.Error,
			"slug", slug,
		)
		return false, fmt.Errorf("gormContentRepository.CheckSlugExists: %w", result.Error)
	}
	return count > 0, nil
}
