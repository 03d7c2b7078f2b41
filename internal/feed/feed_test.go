package feed

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

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

func feedColumns() []string {
	return []string{
		"id", "created_at", "user_id", "body", "username", "avatar_url",
		"like_count", "retweet_count", "comment_count", "is_liked", "is_retweeted",
	}
}

// Trois posts créés à t1 < t2 < t3 : Recent(2) renvoie [p3, p2].
func TestRecentNewestFirst(t *testing.T) {
	mock := setupMockDB(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows(feedColumns()).
			AddRow("p3", now, "user1", "troisième", "alice", "", 2, 0, 1, true, false).
			AddRow("p2", now.Add(-time.Hour), "user2", "deuxième", "bob", "", 0, 1, 0, false, false))

	items, err := Recent("user1", 2)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "p3", items[0].ID)
	assert.Equal(t, "p2", items[1].ID)
	assert.Equal(t, int64(2), items[0].LikeCount)
	assert.True(t, items[0].IsLiked)
}

func TestRecentStampsTimeAgo(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows(feedColumns()).
			AddRow("p1", time.Now().Add(-3*time.Hour), "user1", "coucou", "alice", "", 0, 0, 0, false, false))

	items, err := Recent("", 10)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "3h", items[0].TimeAgo)
}

func TestByUsernameUnknownUser(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "created_at", "username"}))

	_, err := ByUsername("", "fantome")
	assert.Error(t, err)
}
