package domain

// Video is an immutable catalog entry for a penalty video.
type Video struct {
	ID              string `db:"id" json:"id"`
	Title           string `db:"title" json:"title"`
	Category        string `db:"category" json:"category"`
	YoutubeID       string `db:"youtube_id" json:"youtube_id"`
	DurationSeconds int    `db:"duration_seconds" json:"duration_seconds"`
}
