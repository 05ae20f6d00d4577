package router

import (
	"github.com/labstack/echo/v4"

	dedCtrl "newsnexus/pkg/deduper/controller"
	"newsnexus/pkg/middleware"
	repCtrl "newsnexus/pkg/report/controller"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	articleCtrl interface {
		Approve(echo.Context) error
		ReplaceStates(echo.Context) error
		FetchText(echo.Context) error
	},
	deduperCtrl dedCtrl.DeduperController,
	reportCtrl repCtrl.ReportController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("", middleware.AuthenticateToken(jwtSecret))

	api.POST("/articles/approve/:articleId", articleCtrl.Approve)
	api.POST("/articles/:articleId/states", articleCtrl.ReplaceStates)
	api.GET("/articles/fetch-text/:articleId", articleCtrl.FetchText)

	api.POST("/deduper/report-checker-table", deduperCtrl.ReportCheckerTable)
	api.GET("/deduper/request-job/:reportId", deduperCtrl.RequestJob)
	api.GET("/deduper/job-list-status", deduperCtrl.JobListStatus)
	api.DELETE("/deduper/clear-article-duplicate-analyses-table", deduperCtrl.ClearAnalysesTable)
	api.GET("/deduper/article-duplicate-analyses-status", deduperCtrl.AnalysesStatus)

	api.GET("/reports", reportCtrl.List)
	api.POST("/reports/create", reportCtrl.Create)
	api.GET("/reports/recreate/:reportId", reportCtrl.Recreate)
	api.GET("/reports/list", reportCtrl.ListBundleFiles)
	api.GET("/reports/download/:reportId", reportCtrl.Download)
	api.DELETE("/reports/:reportId", reportCtrl.Delete)
	api.POST("/reports/toggle-article-rejection/:articleReportContractId", reportCtrl.ToggleArticleRejection)
	api.POST("/reports/update-article-report-reference-number/:articleReportContractId", reportCtrl.UpdateReferenceNumber)
	api.POST("/reports/update-submitted-to-client-date/:reportId", reportCtrl.UpdateSubmittedDate)

	return e
}
