package retweet

import (
	"time"
)

type Retweet struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id" gorm:"index;uniqueIndex:idx_retweets_post_user"`
	PostID    string    `json:"post_id" gorm:"index;uniqueIndex:idx_retweets_post_user"`
}

type RetweetResponse struct {
	PostID       string `json:"post_id"`
	RetweetCount int64  `json:"retweet_count"`
	IsRetweeted  bool   `json:"is_retweeted"`
}

func (Retweet) TableName() string {
	return "retweets"
}
