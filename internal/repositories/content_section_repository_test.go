package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectSectionQuery = `SELECT id, section_key, name, content, page, display_order, is_active, updated_at FROM content_sections WHERE section_key = ? LIMIT 1`

func sectionRows(id int, key string, name any, content, page string, displayOrder int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "section_key", "name", "content", "page", "display_order", "is_active", "updated_at"}).
		AddRow(id, key, name, content, page, displayOrder, true, time.Now())
}

func setupContentRepository(t *testing.T) (*contentSectionRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewContentSectionRepository(db)

	return repo, mock, func() { db.Close() }
}

func TestContentSectionRepository_Get(t *testing.T) {
	t.Run("success with null name", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectSectionQuery)).
			WithArgs("hero_text").
			WillReturnRows(sectionRows(1, "hero_text", nil, "<h1>Welcome</h1>", "home", 0))

		section, err := repo.Get(context.Background(), "hero_text")

		require.NoError(t, err)
		assert.Equal(t, "hero_text", section.Key)
		assert.Nil(t, section.Name)
		assert.Equal(t, "home", section.Page)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectSectionQuery)).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "section_key", "name", "content", "page", "display_order", "is_active", "updated_at"}))

		section, err := repo.Get(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrSectionNotFound)
		assert.Nil(t, section)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContentSectionRepository_List(t *testing.T) {
	t.Run("all sections ordered for display", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "section_key", "name", "content", "page", "display_order", "is_active", "updated_at"}).
			AddRow(1, "hero_text", "Hero", "<h1>Welcome</h1>", "home", 0, true, time.Now()).
			AddRow(2, "about_intro", nil, "We build things.", "about", 1, true, time.Now())
		mock.ExpectQuery(regexp.QuoteMeta("FROM content_sections ORDER BY display_order, section_key")).
			WillReturnRows(rows)

		sections, err := repo.List(context.Background(), "")

		require.NoError(t, err)
		assert.Len(t, sections, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered by page", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta("FROM content_sections WHERE page = ? ORDER BY display_order, section_key")).
			WithArgs("about").
			WillReturnRows(sectionRows(2, "about_intro", nil, "We build things.", "about", 1))

		sections, err := repo.List(context.Background(), "about")

		require.NoError(t, err)
		assert.Len(t, sections, 1)
		assert.Equal(t, "about", sections[0].Page)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContentSectionRepository_Upsert(t *testing.T) {
	// The page is part of the insert values only; updates never move a
	// section to another page.
	upsertPattern := regexp.QuoteMeta("INSERT INTO content_sections (section_key, name, content, page, display_order) VALUES (?, NULLIF(?, ''), ?, ?, ?) ON DUPLICATE KEY UPDATE content = VALUES(content), name = IF(? = '', name, ?), display_order = IF(? < 0, display_order, ?)")

	t.Run("insert with supplied fields", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectExec(upsertPattern).
			WithArgs("hero_text", "Hero", "<h1>Welcome</h1>", "home", 3, "Hero", "Hero", 3, 3).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery(regexp.QuoteMeta(selectSectionQuery)).
			WithArgs("hero_text").
			WillReturnRows(sectionRows(1, "hero_text", "Hero", "<h1>Welcome</h1>", "home", 3))

		section, err := repo.Upsert(context.Background(), "hero_text", "<h1>Welcome</h1>", "home", "Hero", 3)

		require.NoError(t, err)
		assert.Equal(t, 3, section.DisplayOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("omitted display order inserts zero and keeps existing on update", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		// displayOrder -1 means not supplied: insert value is normalized to
		// 0, the update branch keeps the stored value
		mock.ExpectExec(upsertPattern).
			WithArgs("hero_text", "", "updated", "home", 0, "", "", -1, -1).
			WillReturnResult(sqlmock.NewResult(1, 2))
		mock.ExpectQuery(regexp.QuoteMeta(selectSectionQuery)).
			WithArgs("hero_text").
			WillReturnRows(sectionRows(1, "hero_text", "Hero", "updated", "home", 3))

		section, err := repo.Upsert(context.Background(), "hero_text", "updated", "home", "", -1)

		require.NoError(t, err)
		assert.Equal(t, "updated", section.Content)
		assert.Equal(t, 3, section.DisplayOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContentSectionRepository_Clear(t *testing.T) {
	clearPattern := regexp.QuoteMeta("UPDATE content_sections SET content = '' WHERE section_key = ?")

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectExec(clearPattern).
			WithArgs("hero_text").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Clear(context.Background(), "hero_text")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already empty section is not an error", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		// 0 affected rows is ambiguous in MySQL: the follow-up lookup
		// distinguishes "no change" from "no row"
		mock.ExpectExec(clearPattern).
			WithArgs("hero_text").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(selectSectionQuery)).
			WithArgs("hero_text").
			WillReturnRows(sectionRows(1, "hero_text", nil, "", "home", 0))

		err := repo.Clear(context.Background(), "hero_text")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing section", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectExec(clearPattern).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(selectSectionQuery)).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "section_key", "name", "content", "page", "display_order", "is_active", "updated_at"}))

		err := repo.Clear(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrSectionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContentSectionRepository_Remove(t *testing.T) {
	removePattern := regexp.QuoteMeta("DELETE FROM content_sections WHERE section_key = ?")

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectExec(removePattern).
			WithArgs("hero_text").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Remove(context.Background(), "hero_text")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing section", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectExec(removePattern).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Remove(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrSectionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, cleanup := setupContentRepository(t)
		defer cleanup()

		mock.ExpectExec(removePattern).
			WithArgs("hero_text").
			WillReturnError(errors.New("lock wait timeout"))

		err := repo.Remove(context.Background(), "hero_text")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
