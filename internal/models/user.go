package models

import "time"

// User represents a posting identity. Users are created implicitly the
// first time an unseen name submits a post and are never updated.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex;column:name" json:"name"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
