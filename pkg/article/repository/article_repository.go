package repository

import "newsnexus/entities"

type ArticleRepository interface {
	FindArticle(id uint) (*entities.Article, error)
	ApprovalByArticle(articleID uint) (*entities.ArticleApproved, error)
	SaveApproval(a *entities.ArticleApproved) error
	DeleteApproval(articleID uint) error
	// ReplaceStateContracts resets an article's state associations:
	// delete-all-then-insert.
	ReplaceStateContracts(articleID uint, stateIDs []uint) error
}
