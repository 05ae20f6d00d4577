package controller

import "github.com/labstack/echo/v4"

type DeduperController interface {
	ReportCheckerTable(c echo.Context) error
	RequestJob(c echo.Context) error
	JobListStatus(c echo.Context) error
	ClearAnalysesTable(c echo.Context) error
	AnalysesStatus(c echo.Context) error
}
