package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "hospital_billing/internal/adapter/http/dto/request"
	response "hospital_billing/internal/adapter/http/dto/response"
	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase"
	"hospital_billing/pkg"
)

var (
	errInvalidReportQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ReportHandler serves the invoice list, its totals and the revenue overview.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// ListInvoices godoc
// @Summary      List invoices
// @Description  Filtered and sorted invoice list with totals over the filtered set.
// @Tags         invoices
// @Produce      json
// @Param        from  query  string  false  "Start date (yyyy-mm-dd or dd/mm/yyyy)"
// @Param        to    query  string  false  "End date (yyyy-mm-dd or dd/mm/yyyy)"
// @Param        type  query  string  false  "Patient type (All, Cash Patient, Insurance Patient, Corporate, Charity, Other)"
// @Param        sort  query  string  false  "Sort key (date_desc, date_asc, name_asc, name_desc, amount_desc, amount_asc, net_desc, net_asc, discount_desc, due_desc, type_asc)"
// @Param        q     query  string  false  "Search on patient name, invoice number or doctor"
// @Success      200  {object}  response.ReportResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /invoices [get]
func (h *ReportHandler) ListInvoices(c *gin.Context) {
	q, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}

	report, err := h.usecase.List(c.Request.Context(), criteria, q.SortKey())
	if err != nil {
		log.Printf("[report][handler] list failed err=%v", err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

// GetTotals godoc
// @Summary      Invoice totals
// @Tags         invoices
// @Produce      json
// @Param        from  query  string  false  "Start date"
// @Param        to    query  string  false  "End date"
// @Param        type  query  string  false  "Patient type"
// @Param        q     query  string  false  "Search text"
// @Success      200  {object}  response.TotalsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /invoices/totals [get]
func (h *ReportHandler) GetTotals(c *gin.Context) {
	_, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}

	totals, err := h.usecase.Totals(c.Request.Context(), criteria)
	if err != nil {
		log.Printf("[report][handler] totals failed err=%v", err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// GetOverview godoc
// @Summary      Revenue overview
// @Description  Revenue grouped by day and patient type.
// @Tags         invoices
// @Produce      json
// @Param        from  query  string  false  "Start date"
// @Param        to    query  string  false  "End date"
// @Param        type  query  string  false  "Patient type"
// @Param        sort  query  string  false  "revenue (default), patients or discount"
// @Success      200  {object}  response.OverviewResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /invoices/overview [get]
func (h *ReportHandler) GetOverview(c *gin.Context) {
	q, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}

	overview, err := h.usecase.Overview(c.Request.Context(), criteria, q.OverviewSortKey())
	if err != nil {
		log.Printf("[report][handler] overview failed err=%v", err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOverview(overview))
}

// bindReportQuery writes the 400 response itself and reports ok=false when
// the query string is invalid.
func bindReportQuery(c *gin.Context) (request.ReportQuery, entities.FilterCriteria, bool) {
	var q request.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidReportQuery.HTTPStatus, errInvalidReportQuery.ToHTTPError())
		return q, entities.FilterCriteria{}, false
	}
	criteria, err := q.Criteria()
	if err != nil {
		log.Printf("[report][handler] invalid query err=%v", err)
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return q, entities.FilterCriteria{}, false
	}
	return q, criteria, true
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "From date is after to date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Unsupported export format", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
