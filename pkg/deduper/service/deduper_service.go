package service

// ApprovedArticleInfo is the denormalized report-ready view of one approved
// article, with the first associated state's abbreviation (nil when the
// article carries no state).
type ApprovedArticleInfo struct {
	HeadlineForPdfReport        string  `json:"headlineForPdfReport"`
	PublicationNameForPdfReport string  `json:"publicationNameForPdfReport"`
	PublicationDateForPdfReport string  `json:"publicationDateForPdfReport"`
	TextForPdfReport            string  `json:"textForPdfReport"`
	URLForPdfReport             string  `json:"urlForPdfReport"`
	State                       *string `json:"state"`
}

// NewArticleInformation is a report candidate's own directory entry plus its
// reference number in the report under analysis.
type NewArticleInformation struct {
	ApprovedArticleInfo
	ArticleReportRefIDNew string `json:"articleReportRefIdNew"`
}

// DuplicateCandidate is one surviving potential duplicate of a candidate:
// an approved article whose similarity score met the threshold, annotated
// with the most recent reference number it ever carried.
type DuplicateCandidate struct {
	ArticleIDApproved          uint    `json:"articleIdApproved"`
	EmbeddingSearch            float64 `json:"embeddingSearch"`
	ArticleReportRefIDApproved *string `json:"articleReportRefIdApproved"`
	ApprovedArticleInfo
}

// ReportArticleEntry is the per-candidate breakdown keyed by article id in
// the checker-table response.
type ReportArticleEntry struct {
	MaxEmbedding                   float64                `json:"maxEmbedding"`
	ArticleReferenceNumberInReport string                 `json:"articleReferenceNumberInReport"`
	NewArticleInformation          *NewArticleInformation `json:"newArticleInformation"`
	ApprovedArticlesArray          []DuplicateCandidate   `json:"approvedArticlesArray"`
}

type DeduperService interface {
	// ApprovedArticlesDictionary maps article id to its report-ready fields
	// for every approved article.
	ApprovedArticlesDictionary() (map[uint]ApprovedArticleInfo, error)
	// ReferenceNumbersByArticle maps article id to the most recent reference
	// number it was ever assigned, across all reports.
	ReferenceNumbersByArticle() (map[uint]string, error)
	// ReportCheckerTable correlates every candidate of the report against
	// the approved-article history, keeping scores >= threshold.
	ReportCheckerTable(reportID uint, threshold float64) (map[uint]ReportArticleEntry, error)
}
