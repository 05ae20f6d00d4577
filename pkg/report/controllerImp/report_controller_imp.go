package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"newsnexus/pkg/middleware"
	"newsnexus/pkg/report/service"
)

type ReportCtrl struct {
	svc        service.ReportService
	reportsDir string
}

func New(svc service.ReportService, reportsDir string) *ReportCtrl {
	return &ReportCtrl{svc: svc, reportsDir: reportsDir}
}

func (h *ReportCtrl) List(c echo.Context) error {
	groups, err := h.svc.GroupedByCrName()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"reportsArrayByCrName": groups})
}

type createReq struct {
	ArticlesIDArrayForReport []uint `json:"articlesIdArrayForReport"`
}

func (h *ReportCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	log.Printf("- in POST /reports/create - %d article ids", len(req.ArticlesIDArrayForReport))

	report, err := h.svc.Create(middleware.UserID(c), req.ArticlesIDArrayForReport)
	if err != nil {
		if errors.Is(err, service.ErrNoCandidates) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "No approved articles found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creating report: " + err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Report created", "zipFilename": report.NameZipFile})
}

func (h *ReportCtrl) Recreate(c echo.Context) error {
	reportID, err := parseUint(c.Param("reportId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid reportId"})
	}

	result, err := h.svc.Recreate(uint(reportID), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "Report not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creating report: " + err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":                      true,
		"message":                     "Report recreated successfully.",
		"newReportId":                 result.New.ID,
		"originalReportId":            result.Original.ID,
		"originalReportSubmittedDate": result.OriginalSubmittedDate,
	})
}

func (h *ReportCtrl) ListBundleFiles(c echo.Context) error {
	if h.reportsDir == "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Reports directory not configured."})
	}
	entries, err := os.ReadDir(h.reportsDir)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	zips := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".zip") {
			zips = append(zips, e.Name())
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "reports": zips})
}

func (h *ReportCtrl) Download(c echo.Context) error {
	reportID, err := parseUint(c.Param("reportId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid reportId"})
	}
	filename, err := h.svc.BundleFilename(uint(reportID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "Report not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	if h.reportsDir == "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Reports directory not configured."})
	}
	path := filepath.Join(h.reportsDir, filename)
	if _, err := os.Stat(path); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "File not found."})
	}
	c.Response().Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
	return c.Attachment(path, filename)
}

func (h *ReportCtrl) Delete(c echo.Context) error {
	reportID, err := parseUint(c.Param("reportId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid reportId"})
	}
	zipFilename, err := h.svc.Delete(uint(reportID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "Report not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	if h.reportsDir != "" && zipFilename != "" {
		path := filepath.Join(h.reportsDir, zipFilename)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("delete report file %s: %v", path, err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "message": "Report deleted successfully."})
}

type toggleReq struct {
	ArticleRejectionReason string `json:"articleRejectionReason"`
}

func (h *ReportCtrl) ToggleArticleRejection(c echo.Context) error {
	contractID, err := parseUint(c.Param("articleReportContractId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid articleReportContractId"})
	}
	var req toggleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid json"})
	}
	contract, err := h.svc.ToggleArticleRejection(uint(contractID), req.ArticleRejectionReason)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "Article Report Contract not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":                true,
		"message":               "Article rejection toggled successfully.",
		"articleReportContract": contract,
	})
}

type refNumberReq struct {
	ArticleReferenceNumberInReport string `json:"articleReferenceNumberInReport"`
}

func (h *ReportCtrl) UpdateReferenceNumber(c echo.Context) error {
	contractID, err := parseUint(c.Param("articleReportContractId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid articleReportContractId"})
	}
	var req refNumberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid json"})
	}
	contract, err := h.svc.UpdateReferenceNumber(uint(contractID), req.ArticleReferenceNumberInReport)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "Article Report Contract not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":                true,
		"message":               "Article report reference number updated successfully.",
		"articleReportContract": contract,
	})
}

type submittedDateReq struct {
	DateSubmittedToClient string `json:"dateSubmittedToClient"`
}

func (h *ReportCtrl) UpdateSubmittedDate(c echo.Context) error {
	reportID, err := parseUint(c.Param("reportId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid reportId"})
	}
	var req submittedDateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid json"})
	}
	if err := h.svc.UpdateSubmittedDate(uint(reportID), req.DateSubmittedToClient); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "Report not found."})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "message": "Submissions status updated successfully."})
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
