package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"newsnexus/entities"
	"newsnexus/pkg/artifact"
	"newsnexus/pkg/report/repository"
	"newsnexus/pkg/report/service"
)

type reportSvc struct {
	repo      repository.ReportRepository
	assembler artifact.Assembler
	loc       *time.Location
	now       func() time.Time
}

func New(repo repository.ReportRepository, assembler artifact.Assembler, loc *time.Location) service.ReportService {
	return &reportSvc{repo: repo, assembler: assembler, loc: loc, now: time.Now}
}

func (s *reportSvc) Create(userID uint, articleIDs []uint) (*entities.Report, error) {
	ids := articleIDs
	if len(ids) == 0 {
		var err error
		ids, err = s.repo.UnreportedApprovedArticleIDs()
		if err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		return nil, service.ErrNoCandidates
	}

	approveds, err := s.repo.ApprovedByArticleIDs(ids)
	if err != nil {
		return nil, err
	}
	statesByArticle, err := s.repo.StateAbbreviationsByArticle()
	if err != nil {
		return nil, err
	}

	report := &entities.Report{UserID: userID}
	if err := s.repo.CreateReport(report); err != nil {
		return nil, err
	}

	nowET := s.now().In(s.loc)
	datePrefix := nowET.Format("060102")
	report.NameCrFormat = "cr" + datePrefix
	if err := s.repo.SaveReport(report); err != nil {
		return nil, err
	}

	submitted := nowET.Format("01/02/2006")
	rows := make([]artifact.ReportRow, 0, len(ids))
	for i, articleID := range ids {
		refNumber := fmt.Sprintf("%s%03d", datePrefix, i+1)
		contract := &entities.ArticleReportContract{
			ReportID:                       report.ID,
			ArticleID:                      articleID,
			ArticleReferenceNumberInReport: refNumber,
		}
		if err := s.repo.CreateContract(contract); err != nil {
			return nil, err
		}
		row, err := buildRow(articleID, refNumber, submitted, approveds, statesByArticle)
		if err != nil {
			return nil, fmt.Errorf("processing article id %d: %w", articleID, err)
		}
		rows = append(rows, row)
	}

	zipFilename := fmt.Sprintf("report_bundle_%d.zip", report.ID)
	if err := s.assembler.CreateReportBundle(rows, report.NameCrFormat+".xlsx", zipFilename); err != nil {
		return nil, fmt.Errorf("creating report bundle: %w", err)
	}
	report.NameZipFile = zipFilename
	if err := s.repo.SaveReport(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportSvc) Recreate(reportID, userID uint) (*service.RecreateResult, error) {
	original, err := s.repo.FindReport(reportID)
	if err != nil {
		return nil, err
	}

	originalSubmitted := ""
	if original.DateSubmittedToClient != nil {
		originalSubmitted = original.DateSubmittedToClient.In(s.loc).Format("1/2/2006")
	}

	contracts, err := s.repo.ContractsByReport(original.ID)
	if err != nil {
		return nil, err
	}
	articleIDs := make([]uint, 0, len(contracts))
	for _, c := range contracts {
		articleIDs = append(articleIDs, c.ArticleID)
	}
	approveds, err := s.repo.ApprovedByArticleIDs(articleIDs)
	if err != nil {
		return nil, err
	}
	statesByArticle, err := s.repo.StateAbbreviationsByArticle()
	if err != nil {
		return nil, err
	}

	recreated := &entities.Report{UserID: userID, NameCrFormat: original.NameCrFormat}
	if err := s.repo.CreateReport(recreated); err != nil {
		return nil, err
	}

	// Reference numbers are reused verbatim: external continuity matters
	// more than renumbering.
	rows := make([]artifact.ReportRow, 0, len(contracts))
	for _, c := range contracts {
		contract := &entities.ArticleReportContract{
			ReportID:                       recreated.ID,
			ArticleID:                      c.ArticleID,
			ArticleReferenceNumberInReport: c.ArticleReferenceNumberInReport,
		}
		if err := s.repo.CreateContract(contract); err != nil {
			return nil, err
		}
		row, err := buildRow(c.ArticleID, c.ArticleReferenceNumberInReport, originalSubmitted, approveds, statesByArticle)
		if err != nil {
			return nil, fmt.Errorf("processing article id %d: %w", c.ArticleID, err)
		}
		rows = append(rows, row)
	}

	zipFilename := fmt.Sprintf("report_bundle_%d.zip", recreated.ID)
	if err := s.assembler.CreateReportBundle(rows, recreated.NameCrFormat+".xlsx", zipFilename); err != nil {
		return nil, fmt.Errorf("creating report bundle: %w", err)
	}
	recreated.NameZipFile = zipFilename
	if err := s.repo.SaveReport(recreated); err != nil {
		return nil, err
	}

	return &service.RecreateResult{
		New:                   recreated,
		Original:              original,
		OriginalSubmittedDate: originalSubmitted,
	}, nil
}

// buildRow assembles one export row from the reviewer's approval snapshot.
// A candidate without an approval or without any state association aborts
// the whole compilation: silently dropping an approved article from a
// client report is worse than failing loudly.
func buildRow(articleID uint, refNumber, submitted string, approveds map[uint]entities.ArticleApproved, statesByArticle map[uint][]string) (artifact.ReportRow, error) {
	aa, ok := approveds[articleID]
	if !ok {
		return artifact.ReportRow{}, fmt.Errorf("no approval snapshot")
	}
	abbrevs := statesByArticle[articleID]
	if len(abbrevs) == 0 {
		return artifact.ReportRow{}, fmt.Errorf("no state association")
	}
	return artifact.ReportRow{
		RefNumber:     refNumber,
		Submitted:     submitted,
		Headline:      aa.HeadlineForPdfReport,
		Publication:   aa.PublicationNameForPdfReport,
		DatePublished: aa.PublicationDateForPdfReport,
		State:         strings.Join(abbrevs, ", "),
		Text:          aa.TextForPdfReport,
	}, nil
}

func (s *reportSvc) ToggleArticleRejection(contractID uint, reason string) (*entities.ArticleReportContract, error) {
	contract, err := s.repo.FindContract(contractID)
	if err != nil {
		return nil, err
	}
	accepted := contract.ArticleAcceptedByCpsc == nil || !*contract.ArticleAcceptedByCpsc
	contract.ArticleAcceptedByCpsc = &accepted
	contract.ArticleRejectionReason = reason
	if err := s.repo.SaveContract(contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *reportSvc) UpdateReferenceNumber(contractID uint, refNumber string) (*entities.ArticleReportContract, error) {
	contract, err := s.repo.FindContract(contractID)
	if err != nil {
		return nil, err
	}
	contract.ArticleReferenceNumberInReport = refNumber
	if err := s.repo.SaveContract(contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *reportSvc) UpdateSubmittedDate(reportID uint, date string) error {
	report, err := s.repo.FindReport(reportID)
	if err != nil {
		return err
	}
	parsed, err := parseClientDate(date)
	if err != nil {
		return err
	}
	report.DateSubmittedToClient = parsed
	return s.repo.SaveReport(report)
}

func parseClientDate(date string) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, date); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date: %s", date)
}

func (s *reportSvc) GroupedByCrName() ([]service.CrGroup, error) {
	reports, err := s.repo.AllReports()
	if err != nil {
		return nil, err
	}

	groups := []service.CrGroup{}
	index := map[string]int{}
	for _, rep := range reports {
		contracts, err := s.repo.ContractsByReport(rep.ID)
		if err != nil {
			return nil, err
		}
		entry := service.ReportWithContracts{Report: rep, ArticleReportContracts: contracts}
		if i, ok := index[rep.NameCrFormat]; ok {
			groups[i].ReportsArray = append(groups[i].ReportsArray, entry)
			continue
		}
		index[rep.NameCrFormat] = len(groups)
		groups = append(groups, service.CrGroup{CrName: rep.NameCrFormat, ReportsArray: []service.ReportWithContracts{entry}})
	}
	return groups, nil
}

func (s *reportSvc) Delete(reportID uint) (string, error) {
	report, err := s.repo.FindReport(reportID)
	if err != nil {
		return "", err
	}
	if err := s.repo.DeleteReport(report); err != nil {
		return "", err
	}
	return report.NameZipFile, nil
}

func (s *reportSvc) BundleFilename(reportID uint) (string, error) {
	report, err := s.repo.FindReport(reportID)
	if err != nil {
		return "", err
	}
	return report.NameZipFile, nil
}
