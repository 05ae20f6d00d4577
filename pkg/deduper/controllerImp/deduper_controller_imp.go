package controllerImp

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"newsnexus/pkg/artifact"
	"newsnexus/pkg/deduper/repository"
	"newsnexus/pkg/deduper/service"
	"newsnexus/pkg/queuer"
)

type DeduperCtrl struct {
	svc        service.DeduperService
	repo       repository.DeduperRepository
	q          *queuer.Client
	reportsDir string
}

func New(svc service.DeduperService, repo repository.DeduperRepository, q *queuer.Client, reportsDir string) *DeduperCtrl {
	return &DeduperCtrl{svc: svc, repo: repo, q: q, reportsDir: reportsDir}
}

type checkerTableReq struct {
	ReportID                  uint    `json:"reportId"`
	EmbeddingThresholdMinimum float64 `json:"embeddingThresholdMinimum"`
	SpacerRow                 bool    `json:"spacerRow"`
}

func (h *DeduperCtrl) ReportCheckerTable(c echo.Context) error {
	var req checkerTableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid json"})
	}
	log.Printf("- in POST /deduper/report-checker-table reportId=%d threshold=%v", req.ReportID, req.EmbeddingThresholdMinimum)

	table, err := h.svc.ReportCheckerTable(req.ReportID, req.EmbeddingThresholdMinimum)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}

	// The spreadsheet is a convenience artifact; failing to write it must
	// not fail the request.
	if filename, err := artifact.CreateDeduperAnalysisXlsx(h.reportsDir, req.ReportID, table, req.SpacerRow); err != nil {
		log.Printf("deduper analysis xlsx failed: %v", err)
	} else {
		log.Printf("deduper analysis xlsx created: %s", filename)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"length":                  len(table),
		"reportArticleDictionary": table,
	})
}

func (h *DeduperCtrl) RequestJob(c echo.Context) error {
	reportID, err := strconv.ParseUint(c.Param("reportId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"result": false, "message": "invalid reportId"})
	}

	contracts, err := h.repo.ContractsByReport(uint(reportID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	if len(contracts) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"result": false, "message": "No articles found for reportId: " + c.Param("reportId")})
	}

	if !h.q.Configured() {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "URL_QUEUER_BASE environment variable not configured"})
	}

	status, body, err := h.q.RequestJob(uint(reportID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Error creating job via scorer queue", "error": err.Error()})
	}
	if status < 200 || status >= 300 {
		return c.JSON(status, echo.Map{"result": false, "message": "Error creating job via scorer queue", "queuerResponse": rawJSON(body)})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"result":         true,
		"message":        "Job request successful",
		"articleCount":   len(contracts),
		"queuerResponse": rawJSON(body),
	})
}

func (h *DeduperCtrl) JobListStatus(c echo.Context) error {
	if !h.q.Configured() {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "URL_QUEUER_BASE environment variable not configured"})
	}
	status, body, err := h.q.JobList()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Error fetching job list from scorer queue", "error": err.Error()})
	}
	if status < 200 || status >= 300 {
		return c.JSON(status, echo.Map{"result": false, "message": "Error fetching job list from scorer queue", "queuerResponse": rawJSON(body)})
	}
	return c.JSONBlob(http.StatusOK, body)
}

func (h *DeduperCtrl) ClearAnalysesTable(c echo.Context) error {
	if !h.q.Configured() {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "URL_QUEUER_BASE environment variable not configured"})
	}
	status, body, err := h.q.ClearAnalysesTable()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Error clearing table via scorer queue", "error": err.Error()})
	}
	if status < 200 || status >= 300 {
		return c.JSON(status, echo.Map{"result": false, "message": "Error clearing table via scorer queue", "queuerResponse": rawJSON(body)})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"result":         true,
		"message":        "Article duplicate analyses table cleared successfully",
		"queuerResponse": rawJSON(body),
	})
}

func (h *DeduperCtrl) AnalysesStatus(c echo.Context) error {
	reportID, err := h.repo.AnyAnalysisReportID()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"result": false, "message": "Internal server error", "error": err.Error()})
	}
	if reportID == nil {
		return c.JSON(http.StatusOK, echo.Map{"status": "empty", "reportId": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "populated", "reportId": *reportID})
}

// rawJSON keeps upstream bodies as-is in our JSON responses when they parse,
// falling back to a plain string otherwise.
func rawJSON(body []byte) interface{} {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
