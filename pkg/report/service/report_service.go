package service

import (
	"errors"

	"newsnexus/entities"
)

// ErrNoCandidates means a compilation run found no approved, unreported
// articles to put in a report.
var ErrNoCandidates = errors.New("no approved articles found for report")

type ReportWithContracts struct {
	entities.Report
	ArticleReportContracts []entities.ArticleReportContract `json:"articleReportContracts"`
}

// CrGroup collects a report and its recreated siblings under their shared
// cr-format name.
type CrGroup struct {
	CrName       string                `json:"crName"`
	ReportsArray []ReportWithContracts `json:"reportsArray"`
}

type RecreateResult struct {
	New                   *entities.Report
	Original              *entities.Report
	OriginalSubmittedDate string
}

type ReportService interface {
	// Create compiles a report from the given article ids, or from all
	// unreported approved articles when ids is empty. Reference numbers are
	// assigned in candidate order.
	Create(userID uint, articleIDs []uint) (*entities.Report, error)
	// Recreate builds a new report reusing the original's cr name and
	// reference numbers verbatim, with rows rebuilt from current approval
	// data and a fresh bundle.
	Recreate(reportID, userID uint) (*RecreateResult, error)
	ToggleArticleRejection(contractID uint, reason string) (*entities.ArticleReportContract, error)
	UpdateReferenceNumber(contractID uint, refNumber string) (*entities.ArticleReportContract, error)
	UpdateSubmittedDate(reportID uint, date string) error
	GroupedByCrName() ([]CrGroup, error)
	// Delete removes the report row and returns its bundle filename so the
	// caller can unlink the file.
	Delete(reportID uint) (string, error)
	// BundleFilename returns the persisted zip name for a report.
	BundleFilename(reportID uint) (string, error)
}
