package entities

import "time"

type Report struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"userId"`
	// NameCrFormat is cr + YYMMDD (Eastern US) of the original creation
	// date. Recreated reports reuse the original's name verbatim.
	NameCrFormat          string     `gorm:"index" json:"nameCrFormat"`
	NameZipFile           string     `json:"nameZipFile"`
	DateSubmittedToClient *time.Time `json:"dateSubmittedToClient"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ArticleReportContract links an article to a report with its report-scoped
// reference number (YYMMDD + 3-digit sequence). ArticleAcceptedByCpsc is
// tri-state: nil = pending, true/false = client accepted/rejected.
type ArticleReportContract struct {
	ID                             uint    `gorm:"primaryKey" json:"id"`
	ReportID                       uint    `gorm:"index" json:"reportId"`
	ArticleID                      uint    `gorm:"index" json:"articleId"`
	ArticleReferenceNumberInReport string  `json:"articleReferenceNumberInReport"`
	ArticleAcceptedByCpsc          *bool   `json:"articleAcceptedByCpsc"`
	ArticleRejectionReason         string  `json:"articleRejectionReason"`
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}
