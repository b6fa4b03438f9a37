package transfer

import "photofeed/internal/models"

// PostResponse is a post enriched at read time with a time-limited
// signed URL and the aggregated like count. The URL is nil when
// issuance failed for that key.
type PostResponse struct {
	models.Post
	SignedURL *string `json:"signed_url"`
	LikeCount int64   `json:"like_count"`
}
