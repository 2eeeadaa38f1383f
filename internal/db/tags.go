package db

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tetherhq/tether/internal/models"
	"github.com/tetherhq/tether/internal/tags"
)

// TagRepository provides tag-related database operations. It implements
// tags.Store for the ingestion path; when used for ingestion it must be
// constructed over the submitting transaction.
type TagRepository struct {
	*Repository
}

// NewTagRepository creates a new tag repository
func NewTagRepository(repo *Repository) *TagRepository {
	return &TagRepository{Repository: repo}
}

// EnsureTag creates the tag if absent. Created reports whether this call
// inserted the row; under a conflict the existing id is looked up instead.
func (r *TagRepository) EnsureTag(ctx context.Context, name string) (int64, bool, error) {
	tag := models.Tag{Name: name}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&tag)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected > 0 {
		return tag.ID, true, nil
	}

	var existing models.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
		return 0, false, err
	}
	return existing.ID, false, nil
}

// RecordFirstUse inserts the freshness record for a newly created tag. The
// conflict branch covers two submissions racing on the same unseen name:
// the loser's use still counts, which is why historical counts can pass
// the freshness limit.
func (r *TagRepository) RecordFirstUse(ctx context.Context, name string) error {
	record := models.FreshTag{
		Name:       name,
		FirstUsed:  time.Now().UTC(),
		UsageCount: 1,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"usage_count": gorm.Expr("fresh_tags.usage_count + 1"),
			}),
		}).
		Create(&record).Error
}

// BumpFreshUse counts another use of an existing tag while it is still
// fresh. Tags at or past the limit, and tags with no record, are left alone.
func (r *TagRepository) BumpFreshUse(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Exec("UPDATE fresh_tags SET usage_count = usage_count + 1 WHERE name = ? AND usage_count < ?",
			name, tags.FreshUseLimit).Error
}

// AttachPostTag associates a post with a tag. Re-associating is a no-op.
func (r *TagRepository) AttachPostTag(ctx context.Context, postID, tagID int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PostTag{PostID: postID, TagID: tagID}).Error
}

// BumpRelation upserts one canonical co-occurrence edge.
func (r *TagRepository) BumpRelation(ctx context.Context, tag1, tag2 string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tag1"}, {Name: "tag2"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("tag_relations.count + 1"),
			}),
		}).
		Create(&models.TagRelation{Tag1: tag1, Tag2: tag2, Count: 1}).Error
}

// FreshTags returns the names of tags still under the freshness limit,
// most recently introduced first.
func (r *TagRepository) FreshTags(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.FreshTag{}).
		Where("usage_count < ?", tags.FreshUseLimit).
		Order("first_used DESC").
		Limit(tags.FreshListLimit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// AllTags returns every tag name, alphabetically.
func (r *TagRepository) AllTags(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// TagCloud returns every tag with its post count, busiest first, name as
// the tie-break. Unused tags appear with a zero count.
func (r *TagRepository) TagCloud(ctx context.Context) ([]models.TagCount, error) {
	var cloud []models.TagCount
	err := r.db.WithContext(ctx).
		Table("tags t").
		Select("t.name, COUNT(pt.post_id) AS count").
		Joins("LEFT JOIN post_tags pt ON pt.tag_id = t.id").
		Group("t.id, t.name").
		Order("count DESC, t.name ASC").
		Scan(&cloud).Error
	if err != nil {
		return nil, err
	}
	return cloud, nil
}

// RelatedTags projects the other member of every edge touching name,
// strongest edges first, name as the tie-break.
func (r *TagRepository) RelatedTags(ctx context.Context, name string) ([]string, error) {
	if name == "" {
		return nil, nil
	}
	var rows []struct {
		Related string `gorm:"column:related"`
	}
	err := r.db.WithContext(ctx).
		Raw(`SELECT CASE WHEN tag1 = ? THEN tag2 ELSE tag1 END AS related, count
		     FROM tag_relations
		     WHERE tag1 = ? OR tag2 = ?
		     ORDER BY count DESC, related ASC
		     LIMIT ?`, name, name, name, tags.RelatedLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	related := make([]string, 0, len(rows))
	for _, row := range rows {
		related = append(related, row.Related)
	}
	return related, nil
}
