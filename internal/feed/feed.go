package feed

import (
	"fmt"
	"time"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
	"github.com/ArthurDelaporte/Twitly-Back/internal/timeago"
	"github.com/ArthurDelaporte/Twitly-Back/internal/user"
)

const (
	DefaultLimit = 50
	// Garde-fou du fil profil : pas de pagination, mais on borne quand même.
	ProfileLimit = 200
)

// Item est un post enrichi pour l'affichage : compteurs, drapeaux du
// lecteur courant et libellé "il y a".
type Item struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	TimeAgo      string    `json:"time_ago"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	AvatarURL    string    `json:"avatar_url"`
	Body         string    `json:"text"`
	LikeCount    int64     `json:"like_count"`
	RetweetCount int64     `json:"retweet_count"`
	CommentCount int64     `json:"comment_count"`
	IsLiked      bool      `json:"is_liked"`
	IsRetweeted  bool      `json:"is_retweeted"`
}

const itemSelect = `posts.id, posts.created_at, posts.user_id, posts.body, users.username, users.avatar_url,
(SELECT count(*) FROM likes WHERE likes.post_id = posts.id) AS like_count,
(SELECT count(*) FROM retweets WHERE retweets.post_id = posts.id) AS retweet_count,
(SELECT count(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count,
(SELECT count(*) FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) > 0 AS is_liked,
(SELECT count(*) FROM retweets WHERE retweets.post_id = posts.id AND retweets.user_id = ?) > 0 AS is_retweeted`

// Recent renvoie le fil global : tous les posts, du plus récent au plus
// ancien, bornés par limit. viewerID peut être vide (lecteur anonyme).
func Recent(viewerID string, limit int) ([]Item, error) {
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	items := []Item{}
	err := database.DB.Table("posts").
		Select(itemSelect, viewerID, viewerID).
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}

	stamp(items)
	return items, nil
}

// ByUsername renvoie le fil d'un profil, du plus récent au plus ancien.
// Renvoie apperr.ErrNotFound si le nom d'utilisateur est inconnu.
func ByUsername(viewerID, username string) ([]Item, error) {
	u, err := user.GetByUsername(username)
	if err != nil {
		return nil, err
	}

	items := []Item{}
	err = database.DB.Table("posts").
		Select(itemSelect, viewerID, viewerID).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.user_id = ?", u.ID).
		Order("posts.created_at DESC").
		Limit(ProfileLimit).
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}

	stamp(items)
	return items, nil
}

func stamp(items []Item) {
	now := time.Now()
	for i := range items {
		items[i].TimeAgo = timeago.Format(items[i].CreatedAt, now)
	}
}
