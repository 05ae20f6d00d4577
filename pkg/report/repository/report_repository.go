package repository

import "newsnexus/entities"

type ReportRepository interface {
	CreateReport(r *entities.Report) error
	SaveReport(r *entities.Report) error
	FindReport(id uint) (*entities.Report, error)
	AllReports() ([]entities.Report, error)
	DeleteReport(r *entities.Report) error

	CreateContract(c *entities.ArticleReportContract) error
	SaveContract(c *entities.ArticleReportContract) error
	FindContract(id uint) (*entities.ArticleReportContract, error)
	ContractsByReport(reportID uint) ([]entities.ArticleReportContract, error)

	// UnreportedApprovedArticleIDs returns ids of articles carrying a true
	// approval that are not linked to any report yet.
	UnreportedApprovedArticleIDs() ([]uint, error)
	ApprovedByArticleIDs(ids []uint) (map[uint]entities.ArticleApproved, error)
	// StateAbbreviationsByArticle returns every state abbreviation per
	// article, in state-contract insertion order.
	StateAbbreviationsByArticle() (map[uint][]string, error)
}
