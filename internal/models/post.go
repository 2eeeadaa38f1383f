package models

import (
	"database/sql"
	"time"
)

// Post represents a shared fragment. Posts are immutable once created.
type Post struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    sql.NullInt64  `gorm:"column:user_id" json:"-"`
	Content   string         `gorm:"type:text;column:content" json:"content"`
	MediaPath sql.NullString `gorm:"type:varchar(255);column:media_path" json:"-"`
	CreatedAt time.Time      `gorm:"not null;column:created_at" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// PostTag represents a post-to-tag mapping
type PostTag struct {
	PostID int64 `gorm:"primaryKey;column:post_id"`
	TagID  int64 `gorm:"primaryKey;column:tag_id"`
}

// TableName specifies the table name for PostTag
func (PostTag) TableName() string {
	return "post_tags"
}

// PostView is the wire shape for a post: the stored row plus its tag names.
// Every read surface (feed, all search modes) returns posts in this form.
type PostView struct {
	ID        int64     `json:"id"`
	User      string    `json:"user,omitempty"`
	Content   string    `json:"content"`
	MediaPath string    `json:"media_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags"`
}
