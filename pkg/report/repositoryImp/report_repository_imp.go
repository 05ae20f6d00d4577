package repositoryImp

import (
	"gorm.io/gorm"

	"newsnexus/entities"
	"newsnexus/pkg/report/repository"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

func (r *reportRepo) CreateReport(rep *entities.Report) error { return r.db.Create(rep).Error }
func (r *reportRepo) SaveReport(rep *entities.Report) error   { return r.db.Save(rep).Error }

func (r *reportRepo) FindReport(id uint) (*entities.Report, error) {
	var out entities.Report
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reportRepo) AllReports() ([]entities.Report, error) {
	var out []entities.Report
	return out, r.db.Order("created_at ASC, id ASC").Find(&out).Error
}

func (r *reportRepo) DeleteReport(rep *entities.Report) error { return r.db.Delete(rep).Error }

func (r *reportRepo) CreateContract(c *entities.ArticleReportContract) error {
	return r.db.Create(c).Error
}
func (r *reportRepo) SaveContract(c *entities.ArticleReportContract) error {
	return r.db.Save(c).Error
}

func (r *reportRepo) FindContract(id uint) (*entities.ArticleReportContract, error) {
	var out entities.ArticleReportContract
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *reportRepo) ContractsByReport(reportID uint) ([]entities.ArticleReportContract, error) {
	var out []entities.ArticleReportContract
	return out, r.db.Where("report_id = ?", reportID).Order("id ASC").Find(&out).Error
}

func (r *reportRepo) UnreportedApprovedArticleIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.ArticleApproved{}).
		Where("is_approved = ?", true).
		Where("article_id NOT IN (?)", r.db.Model(&entities.ArticleReportContract{}).Select("article_id")).
		Order("article_id ASC").
		Pluck("article_id", &ids).Error
	return ids, err
}

func (r *reportRepo) ApprovedByArticleIDs(ids []uint) (map[uint]entities.ArticleApproved, error) {
	m := make(map[uint]entities.ArticleApproved, len(ids))
	if len(ids) == 0 {
		return m, nil
	}
	var rows []entities.ArticleApproved
	if err := r.db.Where("article_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		m[row.ArticleID] = row
	}
	return m, nil
}

func (r *reportRepo) StateAbbreviationsByArticle() (map[uint][]string, error) {
	var contracts []entities.ArticleStateContract
	if err := r.db.Order("id ASC").Find(&contracts).Error; err != nil {
		return nil, err
	}
	var states []entities.State
	if err := r.db.Find(&states).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]string, len(states))
	for _, s := range states {
		byID[s.ID] = s.Abbreviation
	}
	m := make(map[uint][]string)
	for _, c := range contracts {
		if abbrev, ok := byID[c.StateID]; ok {
			m[c.ArticleID] = append(m[c.ArticleID], abbrev)
		}
	}
	return m, nil
}
