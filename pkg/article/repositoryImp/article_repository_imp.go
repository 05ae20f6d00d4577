package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"newsnexus/entities"
	"newsnexus/pkg/article/repository"
)

type articleRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ArticleRepository { return &articleRepo{db} }

func (r *articleRepo) FindArticle(id uint) (*entities.Article, error) {
	var out entities.Article
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleRepo) ApprovalByArticle(articleID uint) (*entities.ArticleApproved, error) {
	var out entities.ArticleApproved
	err := r.db.Where("article_id = ?", articleID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleRepo) SaveApproval(a *entities.ArticleApproved) error { return r.db.Save(a).Error }

func (r *articleRepo) DeleteApproval(articleID uint) error {
	return r.db.Where("article_id = ?", articleID).Delete(&entities.ArticleApproved{}).Error
}

func (r *articleRepo) ReplaceStateContracts(articleID uint, stateIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&entities.ArticleStateContract{}).Error; err != nil {
			return err
		}
		for _, stateID := range stateIDs {
			if err := tx.Create(&entities.ArticleStateContract{ArticleID: articleID, StateID: stateID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
