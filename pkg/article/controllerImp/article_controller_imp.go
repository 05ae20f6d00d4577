package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"newsnexus/entities"
	"newsnexus/pkg/article/repository"
	"newsnexus/pkg/middleware"
	"newsnexus/pkg/scrape"
)

type ArticleCtrl struct{ repo repository.ArticleRepository }

func New(repo repository.ArticleRepository) *ArticleCtrl { return &ArticleCtrl{repo} }

type approveReq struct {
	ApprovedStatus              string `json:"approvedStatus"` // Approve | Un-approve
	HeadlineForPdfReport        string `json:"headlineForPdfReport"`
	PublicationNameForPdfReport string `json:"publicationNameForPdfReport"`
	PublicationDateForPdfReport string `json:"publicationDateForPdfReport"`
	TextForPdfReport            string `json:"textForPdfReport"`
	URLForPdfReport             string `json:"urlForPdfReport"`
}

// Approve upserts the review snapshot for an article; Un-approve deletes it.
func (h *ArticleCtrl) Approve(c echo.Context) error {
	articleID, err := parseUint(c.Param("articleId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid articleId"})
	}
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid json"})
	}

	switch req.ApprovedStatus {
	case "Approve":
		existing, err := h.repo.ApprovalByArticle(uint(articleID))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
		}
		approval := existing
		if approval == nil {
			approval = &entities.ArticleApproved{ArticleID: uint(articleID)}
		}
		approval.UserID = middleware.UserID(c)
		approval.IsApproved = true
		approval.HeadlineForPdfReport = req.HeadlineForPdfReport
		approval.PublicationNameForPdfReport = req.PublicationNameForPdfReport
		approval.PublicationDateForPdfReport = req.PublicationDateForPdfReport
		approval.TextForPdfReport = req.TextForPdfReport
		approval.URLForPdfReport = req.URLForPdfReport
		if err := h.repo.SaveApproval(approval); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
		}
	case "Un-approve":
		if err := h.repo.DeleteApproval(uint(articleID)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
		}
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "approvedStatus must be Approve or Un-approve"})
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true, "status": "articleId " + c.Param("articleId") + " is " + req.ApprovedStatus + "d"})
}

type statesReq struct {
	StateIDs []uint `json:"stateIds"`
}

func (h *ArticleCtrl) ReplaceStates(c echo.Context) error {
	articleID, err := parseUint(c.Param("articleId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid articleId"})
	}
	var req statesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid json"})
	}
	if err := h.repo.ReplaceStateContracts(uint(articleID), req.StateIDs); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "message": "Article states updated."})
}

func (h *ArticleCtrl) FetchText(c echo.Context) error {
	articleID, err := parseUint(c.Param("articleId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid articleId"})
	}
	article, err := h.repo.FindArticle(uint(articleID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "Article not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	text, err := scrape.FetchArticleText(article.URL)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"result": false, "message": "Error fetching article text", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "articleId": article.ID, "text": text})
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
