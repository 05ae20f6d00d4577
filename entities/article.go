package entities

import "time"

type Article struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// URL is the natural dedup key at ingestion time: a new article sharing
	// a URL with an existing row is not re-inserted.
	URL                          string `gorm:"uniqueIndex" json:"url"`
	PublishedDate                string `json:"publishedDate"` // YYYY-MM-DD
	NewsArticleAggregatorSourceID uint  `gorm:"index" json:"newsArticleAggregatorSourceId"`
	CreatedAt                    time.Time
}

// ArticleApproved is the reviewer's report-ready snapshot of an article.
// The *ForPdfReport fields are authoritative for report rows, independent
// of the live Article values. At most one row exists per article.
type ArticleApproved struct {
	ID                          uint   `gorm:"primaryKey" json:"id"`
	ArticleID                   uint   `gorm:"uniqueIndex" json:"articleId"`
	UserID                      uint   `json:"userId"`
	IsApproved                  bool   `json:"isApproved"`
	HeadlineForPdfReport        string `json:"headlineForPdfReport"`
	PublicationNameForPdfReport string `json:"publicationNameForPdfReport"`
	PublicationDateForPdfReport string `json:"publicationDateForPdfReport"` // YYYY-MM-DD
	TextForPdfReport            string `json:"textForPdfReport"`
	URLForPdfReport             string `json:"urlForPdfReport"`
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

type ArticleStateContract struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ArticleID uint `gorm:"index" json:"articleId"`
	StateID   uint `gorm:"index" json:"stateId"`
	CreatedAt time.Time
}

type State struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}
