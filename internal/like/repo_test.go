package like

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })

	return mock
}

func TestToggleAddsWhenAbsent(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1)) // le post existe
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 0)) // rien à retirer
	mock.ExpectExec(`INSERT INTO "likes"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	added, total, err := Toggle("post1", "user2")
	assert.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, int64(1), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleRemovesWhenPresent(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 1)) // like retiré
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	added, total, err := Toggle("post1", "user2")
	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Deux toggles successifs du même utilisateur reviennent à l'état initial.
func TestToggleInvolution(t *testing.T) {
	mock := setupMockDB(t)

	// Premier toggle : ajout
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "likes"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	// Second toggle : retrait, retour au compteur d'origine
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	added, total, err := Toggle("post1", "user2")
	assert.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, int64(1), total)

	added, total, err = Toggle("post1", "user2")
	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, int64(0), total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Perdant d'un double-toggle concurrent : le DELETE ne voit rien, puis
// l'INSERT ON CONFLICT DO NOTHING n'insère rien parce que l'autre toggle
// vient de committer. Le toggle doit alors basculer l'état persisté (retrait)
// et surtout ne pas annoncer added=true.
func TestToggleConflictFlipsOff(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "likes"`).WillReturnResult(sqlmock.NewResult(0, 0)) // conflit
	mock.ExpectExec(`DELETE FROM "likes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectCommit()

	added, total, err := Toggle("post1", "user2")
	assert.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleUnknownPost(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectRollback()

	added, total, err := Toggle("inconnu", "user2")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.False(t, added)
	assert.Equal(t, int64(0), total)
}

func TestStatusAnonymousViewer(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(3))

	resp, err := Status("post1", "")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp.LikeCount)
	assert.False(t, resp.IsLiked)
}
