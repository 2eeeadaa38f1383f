package models

import "time"

// Tag represents a canonical tag name. Tags are created on first use and
// never deleted. Names are matched case-sensitively.
type Tag struct {
	ID   int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"type:varchar(64);not null;uniqueIndex;column:name" json:"name"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}

// FreshTag tracks the early life of a tag: when it was introduced and how
// many of its first uses have been seen. A tag stops being fresh at 3 uses;
// the record is kept forever so re-introduction of the name cannot reset it.
type FreshTag struct {
	Name       string    `gorm:"primaryKey;type:varchar(64);column:name"`
	FirstUsed  time.Time `gorm:"not null;column:first_used"`
	UsageCount int       `gorm:"not null;default:1;column:usage_count"`
}

// TableName specifies the table name for FreshTag
func (FreshTag) TableName() string {
	return "fresh_tags"
}

// TagRelation is a counted co-occurrence edge between two tags that appeared
// together on a post. Tag1 is always the lexicographically smaller name, so
// each unordered pair maps to exactly one row.
type TagRelation struct {
	Tag1  string `gorm:"primaryKey;type:varchar(64);column:tag1"`
	Tag2  string `gorm:"primaryKey;type:varchar(64);column:tag2"`
	Count int    `gorm:"not null;default:1;column:count"`
}

// TableName specifies the table name for TagRelation
func (TagRelation) TableName() string {
	return "tag_relations"
}

// TagCount pairs a tag name with the number of posts referencing it,
// as served by the tag cloud.
type TagCount struct {
	Name  string `gorm:"column:name" json:"name"`
	Count int    `gorm:"column:count" json:"count"`
}
