package serviceImp

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"newsnexus/database"
	"newsnexus/entities"
	"newsnexus/pkg/artifact"
	"newsnexus/pkg/report/repositoryImp"
	"newsnexus/pkg/report/service"
)

type fakeAssembler struct {
	rows    []artifact.ReportRow
	xlsx    string
	zip     string
	calls   int
	failErr error
}

func (f *fakeAssembler) CreateReportBundle(rows []artifact.ReportRow, xlsxFilename, zipFilename string) error {
	f.calls++
	if f.failErr != nil {
		return f.failErr
	}
	f.rows = rows
	f.xlsx = xlsxFilename
	f.zip = zipFilename
	return nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(t *testing.T, fake *fakeAssembler) (service.ReportService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return New(repositoryImp.New(db), fake, loc), db
}

func seedCandidate(t *testing.T, db *gorm.DB, articleID, stateID uint) {
	t.Helper()
	if err := db.Create(&entities.ArticleApproved{
		ArticleID:                   articleID,
		IsApproved:                  true,
		HeadlineForPdfReport:        fmt.Sprintf("headline %d", articleID),
		PublicationNameForPdfReport: "The Daily Probe",
		PublicationDateForPdfReport: "2026-08-15",
		TextForPdfReport:            "body text",
	}).Error; err != nil {
		t.Fatalf("seed approval %d: %v", articleID, err)
	}
	if stateID != 0 {
		if err := db.Create(&entities.ArticleStateContract{ArticleID: articleID, StateID: stateID}).Error; err != nil {
			t.Fatalf("seed state contract %d: %v", articleID, err)
		}
	}
}

func seedStates(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, s := range []entities.State{
		{ID: 1, Name: "California", Abbreviation: "CA"},
		{ID: 2, Name: "Nevada", Abbreviation: "NV"},
	} {
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("seed state: %v", err)
		}
	}
}

func TestCreateAssignsSequentialReferenceNumbers(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	seedStates(t, db)
	for i := uint(1); i <= 5; i++ {
		seedCandidate(t, db, i, 1)
	}

	report, err := svc.Create(9, []uint{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prefix := time.Now().In(mustLoc(t)).Format("060102")
	if report.NameCrFormat != "cr"+prefix {
		t.Errorf("expected report name cr%s, got %s", prefix, report.NameCrFormat)
	}
	if report.NameZipFile != fmt.Sprintf("report_bundle_%d.zip", report.ID) {
		t.Errorf("unexpected zip name %s", report.NameZipFile)
	}

	var contracts []entities.ArticleReportContract
	if err := db.Where("report_id = ?", report.ID).Order("id ASC").Find(&contracts).Error; err != nil {
		t.Fatalf("load contracts: %v", err)
	}
	if len(contracts) != 5 {
		t.Fatalf("expected 5 contracts, got %d", len(contracts))
	}
	for i, c := range contracts {
		want := fmt.Sprintf("%s%03d", prefix, i+1)
		if c.ArticleReferenceNumberInReport != want {
			t.Errorf("contract %d: expected reference %s, got %s", i, want, c.ArticleReferenceNumberInReport)
		}
	}
	if fake.xlsx != report.NameCrFormat+".xlsx" {
		t.Errorf("expected xlsx %s.xlsx, got %s", report.NameCrFormat, fake.xlsx)
	}
}

func TestCreateJoinsAllStatesWithComma(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	seedStates(t, db)
	seedCandidate(t, db, 1, 1)
	if err := db.Create(&entities.ArticleStateContract{ArticleID: 1, StateID: 2}).Error; err != nil {
		t.Fatalf("seed second state: %v", err)
	}

	if _, err := svc.Create(9, []uint{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fake.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(fake.rows))
	}
	if fake.rows[0].State != "CA, NV" {
		t.Errorf("expected comma-joined states, got %q", fake.rows[0].State)
	}
}

func TestCreateDefaultsToUnreportedApprovedArticles(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	seedStates(t, db)
	seedCandidate(t, db, 1, 1)
	seedCandidate(t, db, 2, 1)
	// Article 2 is already in a prior report and must not be selected.
	db.Create(&entities.ArticleReportContract{ReportID: 99, ArticleID: 2, ArticleReferenceNumberInReport: "250101001"})

	report, err := svc.Create(9, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var contracts []entities.ArticleReportContract
	db.Where("report_id = ?", report.ID).Find(&contracts)
	if len(contracts) != 1 || contracts[0].ArticleID != 1 {
		t.Fatalf("expected only unreported article 1, got %+v", contracts)
	}
}

func TestCreateNoCandidates(t *testing.T) {
	fake := &fakeAssembler{}
	svc, _ := newTestService(t, fake)
	if _, err := svc.Create(9, nil); !errors.Is(err, service.ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %v", err)
	}
}

func TestCreateAbortsOnMissingStateAssociation(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	seedStates(t, db)
	seedCandidate(t, db, 1, 1)
	seedCandidate(t, db, 2, 0) // no state

	_, err := svc.Create(9, []uint{1, 2})
	if err == nil {
		t.Fatal("expected compilation to abort")
	}
	if !strings.Contains(err.Error(), "article id 2") {
		t.Errorf("error should name the failing article: %v", err)
	}
	if fake.calls != 0 {
		t.Error("assembler must not run after a row-building failure")
	}
	assertNoBundlePersisted(t, db)
}

func TestCreateAbortsOnMissingApproval(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	seedStates(t, db)
	seedCandidate(t, db, 1, 1)

	_, err := svc.Create(9, []uint{1, 77})
	if err == nil {
		t.Fatal("expected compilation to abort")
	}
	if !strings.Contains(err.Error(), "article id 77") {
		t.Errorf("error should name the failing article: %v", err)
	}
	assertNoBundlePersisted(t, db)
}

func TestCreateBundleFailureLeavesNoZipReference(t *testing.T) {
	fake := &fakeAssembler{failErr: errors.New("disk full")}
	svc, db := newTestService(t, fake)
	seedStates(t, db)
	seedCandidate(t, db, 1, 1)

	if _, err := svc.Create(9, []uint{1}); err == nil {
		t.Fatal("expected bundle failure to be fatal")
	}
	assertNoBundlePersisted(t, db)
}

func assertNoBundlePersisted(t *testing.T, db *gorm.DB) {
	t.Helper()
	var reports []entities.Report
	if err := db.Find(&reports).Error; err != nil {
		t.Fatalf("load reports: %v", err)
	}
	for _, r := range reports {
		if r.NameZipFile != "" {
			t.Errorf("report %d has a bundle reference after failed compilation: %s", r.ID, r.NameZipFile)
		}
	}
}

func TestRecreatePreservesReferenceNumbers(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	seedStates(t, db)
	seedCandidate(t, db, 1, 1)
	seedCandidate(t, db, 2, 2)

	original, err := svc.Create(9, []uint{1, 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var originalContracts []entities.ArticleReportContract
	db.Where("report_id = ?", original.ID).Order("id ASC").Find(&originalContracts)

	// Reviewer edits the snapshot between runs; the recreated rows must
	// pick it up.
	db.Model(&entities.ArticleApproved{}).Where("article_id = ?", 1).
		Update("headline_for_pdf_report", "corrected headline")

	result, err := svc.Recreate(original.ID, 9)
	if err != nil {
		t.Fatalf("recreate: %v", err)
	}
	if result.New.ID == original.ID {
		t.Fatal("recreate must create a new report row")
	}
	if result.New.NameCrFormat != original.NameCrFormat {
		t.Errorf("recreated report must reuse cr name: %s vs %s", result.New.NameCrFormat, original.NameCrFormat)
	}
	if result.New.NameZipFile == original.NameZipFile {
		t.Errorf("recreated bundle name must differ, both %s", result.New.NameZipFile)
	}

	var recreatedContracts []entities.ArticleReportContract
	db.Where("report_id = ?", result.New.ID).Order("id ASC").Find(&recreatedContracts)
	if len(recreatedContracts) != len(originalContracts) {
		t.Fatalf("expected %d contracts, got %d", len(originalContracts), len(recreatedContracts))
	}
	for i := range originalContracts {
		if recreatedContracts[i].ArticleReferenceNumberInReport != originalContracts[i].ArticleReferenceNumberInReport {
			t.Errorf("contract %d: reference changed from %s to %s", i,
				originalContracts[i].ArticleReferenceNumberInReport,
				recreatedContracts[i].ArticleReferenceNumberInReport)
		}
	}

	found := false
	for _, row := range fake.rows {
		if row.Headline == "corrected headline" {
			found = true
		}
	}
	if !found {
		t.Error("recreated rows must reflect current approval data")
	}
}

func TestRecreateMissingReport(t *testing.T) {
	fake := &fakeAssembler{}
	svc, _ := newTestService(t, fake)
	if _, err := svc.Recreate(123, 9); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found, got %v", err)
	}
}

func TestToggleArticleRejection(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	db.Create(&entities.ArticleReportContract{ReportID: 1, ArticleID: 1, ArticleReferenceNumberInReport: "260101001"})

	// Pending -> accepted.
	contract, err := svc.ToggleArticleRejection(1, "")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if contract.ArticleAcceptedByCpsc == nil || !*contract.ArticleAcceptedByCpsc {
		t.Fatal("expected pending contract to become accepted")
	}

	// Accepted -> rejected with reason.
	contract, err = svc.ToggleArticleRejection(1, "duplicate of 251110003")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if contract.ArticleAcceptedByCpsc == nil || *contract.ArticleAcceptedByCpsc {
		t.Fatal("expected accepted contract to become rejected")
	}
	if contract.ArticleRejectionReason != "duplicate of 251110003" {
		t.Errorf("unexpected rejection reason %q", contract.ArticleRejectionReason)
	}
}

func TestUpdateReferenceNumber(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	db.Create(&entities.ArticleReportContract{ReportID: 1, ArticleID: 1, ArticleReferenceNumberInReport: "260101001"})

	contract, err := svc.UpdateReferenceNumber(1, "260101009")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if contract.ArticleReferenceNumberInReport != "260101009" {
		t.Errorf("expected 260101009, got %s", contract.ArticleReferenceNumberInReport)
	}
}

func TestGroupedByCrName(t *testing.T) {
	fake := &fakeAssembler{}
	svc, db := newTestService(t, fake)
	db.Create(&entities.Report{NameCrFormat: "cr260101", NameZipFile: "report_bundle_1.zip"})
	db.Create(&entities.Report{NameCrFormat: "cr260101", NameZipFile: "report_bundle_2.zip"})
	db.Create(&entities.Report{NameCrFormat: "cr260215", NameZipFile: "report_bundle_3.zip"})

	groups, err := svc.GroupedByCrName()
	if err != nil {
		t.Fatalf("grouped: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].CrName != "cr260101" || len(groups[0].ReportsArray) != 2 {
		t.Errorf("unexpected first group %+v", groups[0])
	}
}

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}
