package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Recreate(c echo.Context) error
	ListBundleFiles(c echo.Context) error
	Download(c echo.Context) error
	Delete(c echo.Context) error
	ToggleArticleRejection(c echo.Context) error
	UpdateReferenceNumber(c echo.Context) error
	UpdateSubmittedDate(c echo.Context) error
}
