package post

import (
	"time"

	"github.com/ArthurDelaporte/Twitly-Back/internal/user"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"` // UUID venant de auth.users
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id" gorm:"index"`
	User      user.User `json:"-" gorm:"foreignKey:UserID"`
	Body      string    `json:"text" gorm:"column:body"`
}

func (Post) TableName() string {
	return "posts"
}
