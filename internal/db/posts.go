package db

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/tetherhq/tether/internal/models"
	"github.com/tetherhq/tether/internal/tags"
)

// Submission carries one inbound post.
type Submission struct {
	User      string
	Content   string
	MediaPath string
	Tags      []string
}

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// Submit creates the post and records its tag bookkeeping (registry,
// freshness, associations, co-occurrence edges) in one transaction, so
// either every update for the submission lands or none do.
func (r *PostRepository) Submit(ctx context.Context, sub Submission) (int64, error) {
	var postID int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post := models.Post{Content: sub.Content}
		if sub.MediaPath != "" {
			post.MediaPath = sql.NullString{String: sub.MediaPath, Valid: true}
		}

		if sub.User != "" {
			users := NewUserRepository(NewRepository(tx))
			userID, err := users.Ensure(ctx, sub.User)
			if err != nil {
				return err
			}
			post.UserID = sql.NullInt64{Int64: userID, Valid: true}
		}

		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		ingestStore := NewTagRepository(NewRepository(tx))
		if err := tags.Ingest(ctx, ingestStore, post.ID, sub.Tags); err != nil {
			return err
		}

		postID = post.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return postID, nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Feed returns posts newest-first with their tags. A before id of 0 starts
// from the newest post; otherwise only posts older than before are returned.
func (r *PostRepository) Feed(ctx context.Context, limit int, before int64) ([]models.PostView, error) {
	query := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if before > 0 {
		query = query.Where("id < ?", before)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return r.toViews(ctx, posts)
}

// ContentMatches runs a token-based full-text match over post content,
// newest first.
func (r *PostRepository) ContentMatches(ctx context.Context, query string, limit int) ([]models.PostView, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("to_tsvector('simple', coalesce(content, '')) @@ plainto_tsquery('simple', ?)", query).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return r.toViews(ctx, posts)
}

// TagMatches returns distinct posts referencing any tag whose name contains
// query as a substring, newest first.
func (r *PostRepository) TagMatches(ctx context.Context, query string, limit int) ([]models.PostView, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT p.*
		     FROM posts p
		     JOIN post_tags pt ON pt.post_id = p.id
		     JOIN tags t ON t.id = pt.tag_id
		     WHERE t.name LIKE ?
		     ORDER BY p.created_at DESC
		     LIMIT ?`, "%"+query+"%", limit).
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return r.toViews(ctx, posts)
}

// SharedTagOverlap finds posts sharing tags with the reference post,
// ordered by how many tags they share, newest first within a tie. The
// reference post never appears in its own results.
func (r *PostRepository) SharedTagOverlap(ctx context.Context, postID int64, limit int) ([]models.PostView, error) {
	var refTagIDs []int64
	err := r.db.WithContext(ctx).
		Model(&models.PostTag{}).
		Where("post_id = ?", postID).
		Pluck("tag_id", &refTagIDs).Error
	if err != nil {
		return nil, err
	}
	if len(refTagIDs) == 0 {
		return nil, nil
	}

	var posts []models.Post
	err = r.db.WithContext(ctx).
		Raw(`SELECT p.*, COUNT(pt.tag_id) AS overlap
		     FROM posts p
		     JOIN post_tags pt ON pt.post_id = p.id
		     WHERE pt.tag_id IN ? AND p.id <> ?
		     GROUP BY p.id
		     ORDER BY overlap DESC, p.created_at DESC
		     LIMIT ?`, refTagIDs, postID, limit).
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return r.toViews(ctx, posts)
}

// RandomSample returns up to limit posts chosen uniformly at random,
// filtered to content substring matches when query is non-empty.
func (r *PostRepository) RandomSample(ctx context.Context, query string, limit int) ([]models.PostView, error) {
	q := r.db.WithContext(ctx).
		Order("random()").
		Limit(limit)
	if query != "" {
		q = q.Where("content LIKE ?", "%"+query+"%")
	}

	var posts []models.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return r.toViews(ctx, posts)
}

// toViews decorates post rows with their tag names and owning user name.
func (r *PostRepository) toViews(ctx context.Context, posts []models.Post) ([]models.PostView, error) {
	views := make([]models.PostView, 0, len(posts))
	if len(posts) == 0 {
		return views, nil
	}

	postIDs := make([]int64, 0, len(posts))
	userIDs := make([]int64, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
		if post.UserID.Valid {
			userIDs = append(userIDs, post.UserID.Int64)
		}
	}

	var tagRows []struct {
		PostID int64  `gorm:"column:post_id"`
		Name   string `gorm:"column:name"`
	}
	err := r.db.WithContext(ctx).
		Raw(`SELECT pt.post_id, t.name
		     FROM post_tags pt
		     JOIN tags t ON t.id = pt.tag_id
		     WHERE pt.post_id IN ?`, postIDs).
		Scan(&tagRows).Error
	if err != nil {
		return nil, err
	}
	tagsByPost := make(map[int64][]string, len(posts))
	for _, row := range tagRows {
		tagsByPost[row.PostID] = append(tagsByPost[row.PostID], row.Name)
	}

	userNames := make(map[int64]string)
	if len(userIDs) > 0 {
		var users []models.User
		if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, user := range users {
			userNames[user.ID] = user.Name
		}
	}

	for _, post := range posts {
		view := models.PostView{
			ID:        post.ID,
			Content:   post.Content,
			CreatedAt: post.CreatedAt,
			Tags:      tagsByPost[post.ID],
		}
		if view.Tags == nil {
			view.Tags = []string{}
		}
		if post.UserID.Valid {
			view.User = userNames[post.UserID.Int64]
		}
		if post.MediaPath.Valid {
			view.MediaPath = post.MediaPath.String
		}
		views = append(views, view)
	}
	return views, nil
}
