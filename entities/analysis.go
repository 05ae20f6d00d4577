package entities

import "time"

// ArticleDuplicateAnalysis is a pairwise similarity score between a report
// candidate (ArticleIDNew) and a previously approved article
// (ArticleIDApproved). Rows are written only by the external scorer; this
// service reads and filters them. Multiple rows per pair are tolerated.
type ArticleDuplicateAnalysis struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	ArticleIDNew      uint    `gorm:"index" json:"articleIdNew"`
	ArticleIDApproved uint    `gorm:"index" json:"articleIdApproved"`
	EmbeddingSearch   float64 `json:"embeddingSearch"`
	SameArticleIDFlag bool    `json:"sameArticleIdFlag"`
	ReportID          *uint   `json:"reportId"`
	CreatedAt         time.Time
}
