package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"newsnexus/entities"
	"newsnexus/pkg/deduper/repository"
)

type deduperRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DeduperRepository { return &deduperRepo{db} }

func (r *deduperRepo) ApprovedArticles() ([]entities.ArticleApproved, error) {
	var out []entities.ArticleApproved
	return out, r.db.Order("article_id ASC").Find(&out).Error
}

func (r *deduperRepo) StateContractsByArticle() (map[uint][]entities.ArticleStateContract, error) {
	var rows []entities.ArticleStateContract
	if err := r.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	m := make(map[uint][]entities.ArticleStateContract)
	for _, row := range rows {
		m[row.ArticleID] = append(m[row.ArticleID], row)
	}
	return m, nil
}

func (r *deduperRepo) StatesByID() (map[uint]entities.State, error) {
	var rows []entities.State
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.State, len(rows))
	for _, s := range rows {
		m[s.ID] = s
	}
	return m, nil
}

func (r *deduperRepo) ContractsByReport(reportID uint) ([]entities.ArticleReportContract, error) {
	var out []entities.ArticleReportContract
	return out, r.db.Where("report_id = ?", reportID).Order("id ASC").Find(&out).Error
}

func (r *deduperRepo) AllContractsNewestReportFirst() ([]entities.ArticleReportContract, error) {
	var out []entities.ArticleReportContract
	return out, r.db.Order("report_id DESC, id ASC").Find(&out).Error
}

func (r *deduperRepo) NonSelfAnalysesByNewArticle(articleID uint) ([]entities.ArticleDuplicateAnalysis, error) {
	var out []entities.ArticleDuplicateAnalysis
	return out, r.db.
		Where("article_id_new = ? AND same_article_id_flag = ?", articleID, false).
		Order("id ASC").Find(&out).Error
}

func (r *deduperRepo) AnyAnalysisReportID() (*uint, error) {
	var row entities.ArticleDuplicateAnalysis
	err := r.db.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.ReportID, nil
}
