package user

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
)

func setupUsernameTest(t *testing.T) sqlmock.Sqlmock {
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

	gin.SetMode(gin.TestMode)
	return mock
}

// Un nom d'utilisateur inconnu donne 404, une panne de base donne 500 :
// les deux cas ne doivent pas se confondre.
func TestGetUserByUsernameErrors(t *testing.T) {
	tests := []struct {
		name         string
		mockSetup    func(sqlmock.Sqlmock)
		expectedCode int
	}{
		{
			name: "Unknown username",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT`).WillReturnRows(
					sqlmock.NewRows([]string{"id", "created_at", "username"}))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Storage failure",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("connexion perdue"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := setupUsernameTest(t)
			tt.mockSetup(mock)

			r := gin.New()
			r.GET("/api/users/username/:username", GetUserByUsername)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/users/username/alice", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
