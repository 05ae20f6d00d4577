package repository

import "newsnexus/entities"

type DeduperRepository interface {
	ApprovedArticles() ([]entities.ArticleApproved, error)
	StateContractsByArticle() (map[uint][]entities.ArticleStateContract, error)
	StatesByID() (map[uint]entities.State, error)
	ContractsByReport(reportID uint) ([]entities.ArticleReportContract, error)
	AllContractsNewestReportFirst() ([]entities.ArticleReportContract, error)
	NonSelfAnalysesByNewArticle(articleID uint) ([]entities.ArticleDuplicateAnalysis, error)
	AnyAnalysisReportID() (*uint, error)
}
