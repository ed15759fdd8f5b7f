package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hospital_billing/internal/usecase"
	"hospital_billing/pkg"
)

// ExportHandler streams the current invoice list as a file.

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportInvoices godoc
// @Summary      Export invoices
// @Description  Exports the filtered and sorted list. An empty result returns 204.
// @Tags         invoices
// @Produce      octet-stream
// @Param        format  path   string  true   "csv, pdf or xlsx"
// @Param        from    query  string  false  "Start date"
// @Param        to      query  string  false  "End date"
// @Param        type    query  string  false  "Patient type"
// @Param        sort    query  string  false  "Sort key"
// @Param        q       query  string  false  "Search text"
// @Success      200  {file}    file
// @Success      204
// @Failure      400  {object}  pkg.HTTPError
// @Router       /invoices/export/{format} [get]
func (h *ExportHandler) ExportInvoices(c *gin.Context) {
	q, criteria, ok := bindReportQuery(c)
	if !ok {
		return
	}
	exportFormat := c.Param("format")

	res, err := h.usecase.Export(c.Request.Context(), exportFormat, criteria, q.SortKey())
	if err != nil {
		log.Printf("[export][handler] export failed format=%s err=%v", exportFormat, err)
		appErr := h.mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(res.Data) == 0 {
		log.Printf("[export][handler] nothing to export format=%s", exportFormat)
		c.Status(http.StatusNoContent)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	c.Data(http.StatusOK, res.ContentType, res.Data)
}

func (h *ExportHandler) mapExportError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrUnsupportedExportFormat) {
		msg := fmt.Sprintf("Unsupported export format, use one of: %s", strings.Join(h.usecase.Formats(), ", "))
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", msg, http.StatusBadRequest)
	}
	return mapReportError(err)
}
