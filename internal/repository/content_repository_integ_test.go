//go:build integration

// 実PostgreSQLコンテナに対するリポジトリの統合テスト。
// 実行には Docker が必要:
//
//	go test -tags integration ./internal/repository/...
package repository_test

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_5_level_reader/internal/model"
	"go_5_level_reader/internal/repository"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	testLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(testLogger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=level_reader_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=level_reader_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: Could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to PostgreSQL container: %s", err)
	}

	if err := repository.AutoMigrate(testDB); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge PostgreSQL resource: %s", err)
	}
	os.Exit(code)
}

func clearTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"vocabulary_entries", "content_versions", "contents", "sources"} {
		require.NoError(t, testDB.Exec("DELETE FROM "+table).Error)
	}
}

// コンテンツ1件分の成果物一式を保存するヘルパー
func seedContent(t *testing.T, slug string, ready bool) *model.Content {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewGormContentRepository()

	content := &model.Content{
		ContentID:       uuid.New(),
		Slug:            slug,
		Title:           "Title " + slug,
		SourceText:      "source text",
		SourceWordCount: 2,
	}
	require.NoError(t, repo.Create(ctx, testDB, content))
	for _, lv := range model.Levels {
		require.NoError(t, repo.CreateVersion(ctx, testDB, &model.ContentVersion{
			VersionID:       uuid.New(),
			ContentID:       content.ContentID,
			Level:           lv,
			Text:            "text " + lv.String(),
			Title:           "title " + lv.String(),
			WordCount:       2,
			ReadTimeMinutes: 1,
			ExercisesJSON:   "{}",
		}))
	}
	if ready {
		require.NoError(t, repo.MarkReady(ctx, testDB, content.ContentID))
	}
	return content
}

func TestContentRepository_ReadyGate(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	repo := repository.NewGormContentRepository()

	seedContent(t, "published", true)
	seedContent(t, "draft", false)

	t.Run("正常系: ListReadyはreadyなものだけ返す", func(t *testing.T) {
		contents, err := repo.ListReady(ctx, testDB)
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.Equal(t, "published", contents[0].Slug)
	})

	t.Run("正常系: FindReadyBySlugはreadyなら見つかる", func(t *testing.T) {
		content, err := repo.FindReadyBySlug(ctx, testDB, "published")
		require.NoError(t, err)
		assert.True(t, content.Ready)
	})

	t.Run("異常系: ready前のコンテンツはNotFound", func(t *testing.T) {
		_, err := repo.FindReadyBySlug(ctx, testDB, "draft")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("正常系: CheckSlugExistsはready前でもtrue", func(t *testing.T) {
		exists, err := repo.CheckSlugExists(ctx, testDB, "draft")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestContentRepository_VersionsAndVocabulary(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	repo := repository.NewGormContentRepository()
	content := seedContent(t, "with-versions", true)

	t.Run("正常系: Preloadで5レベル分のバージョンが付く", func(t *testing.T) {
		got, err := repo.FindReadyBySlugWithVersions(ctx, testDB, "with-versions")
		require.NoError(t, err)
		assert.Len(t, got.Versions, 5)
	})

	t.Run("正常系: FindVersionはレベル指定で1件返す", func(t *testing.T) {
		version, err := repo.FindVersion(ctx, testDB, content.ContentID, model.LevelB2)
		require.NoError(t, err)
		assert.Equal(t, "text B2", version.Text)
	})

	t.Run("異常系: 同一コンテンツ同一レベルの重複は一意制約違反", func(t *testing.T) {
		err := repo.CreateVersion(ctx, testDB, &model.ContentVersion{
			VersionID: uuid.New(),
			ContentID: content.ContentID,
			Level:     model.LevelB2,
			Text:      "dup",
			Title:     "dup",
		})
		assert.Error(t, err)
	})

	t.Run("正常系: 語彙はposition順で返る", func(t *testing.T) {
		entries := []model.VocabularyEntry{
			{EntryID: uuid.New(), ContentID: content.ContentID, Word: "zebra", Definition: "d", Level: model.LevelB1, Position: 0},
			{EntryID: uuid.New(), ContentID: content.ContentID, Word: "apple", Definition: "d", Level: model.LevelB1, Position: 1},
		}
		require.NoError(t, repo.CreateVocabulary(ctx, testDB, entries))

		got, err := repo.FindVocabulary(ctx, testDB, content.ContentID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		// アルファベット順ではなく保存時の順
		assert.Equal(t, "zebra", got[0].Word)
		assert.Equal(t, "apple", got[1].Word)
	})
}

func TestSourceRepository_Queue(t *testing.T) {
	clearTables(t)
	ctx := context.Background()
	repo := repository.NewGormSourceRepository()

	older := &model.Source{
		SourceID: uuid.New(), Slug: "older", Title: "Older",
		Text: "text", Status: model.SourceStatusPending,
	}
	require.NoError(t, repo.Create(ctx, testDB, older))
	newer := &model.Source{
		SourceID: uuid.New(), Slug: "newer", Title: "Newer",
		Text: "text", Status: model.SourceStatusPending,
	}
	require.NoError(t, repo.Create(ctx, testDB, newer))

	t.Run("正常系: FindPendingは古い順に返す", func(t *testing.T) {
		pending, err := repo.FindPending(ctx, testDB, 10)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, "older", pending[0].Slug)
	})

	t.Run("正常系: limitで件数を絞れる", func(t *testing.T) {
		pending, err := repo.FindPending(ctx, testDB, 1)
		require.NoError(t, err)
		require.Len(t, pending, 1)
	})

	t.Run("正常系: failedへの更新でErrorNoteが残る", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, testDB, older.SourceID, model.SourceStatusFailed, "generation failed"))

		got, err := repo.FindByID(ctx, testDB, older.SourceID)
		require.NoError(t, err)
		assert.Equal(t, model.SourceStatusFailed, got.Status)
		assert.Equal(t, "generation failed", got.ErrorNote)

		pending, err := repo.FindPending(ctx, testDB, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "newer", pending[0].Slug)
	})

	t.Run("正常系: ClaimPendingは1回しか取れない", func(t *testing.T) {
		claimed, err := repo.ClaimPending(ctx, testDB, newer.SourceID)
		require.NoError(t, err)
		assert.True(t, claimed)

		got, err := repo.FindByID(ctx, testDB, newer.SourceID)
		require.NoError(t, err)
		assert.Equal(t, model.SourceStatusProcessing, got.Status)

		// 2回目はstatusがpendingでないため取れず、FindPendingからも消えている
		claimed, err = repo.ClaimPending(ctx, testDB, newer.SourceID)
		require.NoError(t, err)
		assert.False(t, claimed)

		pending, err := repo.FindPending(ctx, testDB, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("異常系: 存在しないIDの更新はNotFound", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, testDB, uuid.New(), model.SourceStatusDone, "")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
