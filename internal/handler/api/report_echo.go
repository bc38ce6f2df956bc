package api

import (
	"errors"
	"net/http"
	"time"

	"InsiderPull/internal/domain/models"
	domrepo "InsiderPull/internal/domain/repository"
	"InsiderPull/internal/repository"
	svcmetrics "InsiderPull/internal/service/metrics"
	"InsiderPull/internal/usecase"
	xhttp "InsiderPull/pkg/http"
	xlogger "InsiderPull/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReportEchoHandler serves the latest published report and filtered views of it.
type ReportEchoHandler struct {
	logger *xlogger.Logger
	reader domrepo.ReportReader
	now    func() time.Time
}

func NewReportEchoHandler(logger *xlogger.Logger, reader domrepo.ReportReader) *ReportEchoHandler {
	svcmetrics.Register()
	return &ReportEchoHandler{logger: logger, reader: reader, now: time.Now}
}

func (h *ReportEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	e.GET("/insider.json", h.Document)

	g := e.Group("/api/insider")
	g.GET("/summary", h.Summary)
	g.GET("/hot", h.HotStocks)
	g.GET("/big", h.BigPlayers)
	g.GET("/sectors", h.Sectors)
	g.GET("/trades", h.Trades)
	g.GET("/daily", h.Daily)
}

func (h *ReportEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Document returns the report exactly as published, without the envelope.
func (h *ReportEchoHandler) Document(c echo.Context) error {
	report, err := h.latest(c, "document")
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	b, err := repository.EncodeReport(report)
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=300")
	return c.JSONBlob(http.StatusOK, b)
}

func (h *ReportEchoHandler) Summary(c echo.Context) error {
	report, err := h.latest(c, "summary")
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"lastUpdated": report.LastUpdated,
		"period":      report.Period,
		"summary":     report.Summary,
	})
}

func (h *ReportEchoHandler) HotStocks(c echo.Context) error {
	report, err := h.latest(c, "hot")
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, report.HotStocks, len(report.HotStocks))
}

func (h *ReportEchoHandler) BigPlayers(c echo.Context) error {
	report, err := h.latest(c, "big")
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, report.BigPlayers, len(report.BigPlayers))
}

func (h *ReportEchoHandler) Sectors(c echo.Context) error {
	report, err := h.latest(c, "sectors")
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, report.SectorSentiment, len(report.SectorSentiment))
}

func (h *ReportEchoHandler) Trades(c echo.Context) error {
	req := &models.TradesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	report, err := h.latest(c, "trades")
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}

	rows, total := usecase.FilterTrades(report.Trades, usecase.TradeFilter{
		Since:     usecase.SinceForPeriod(h.now(), req.Period),
		Direction: models.DirectionFilter(req.Type),
		Query:     req.Query,
		Limit:     req.Limit,
	})
	return xhttp.ListResponse(c, rows, total)
}

func (h *ReportEchoHandler) Daily(c echo.Context) error {
	req := &models.DailyRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	report, err := h.latest(c, "daily")
	if err != nil {
		return xhttp.AppErrorResponse(c, err)
	}
	points := usecase.FilterDaily(report.DailyData, usecase.SinceForPeriod(h.now(), req.Period))
	return xhttp.ListResponse(c, points, len(points))
}

// latest loads the report and maps reader failures onto API errors.
func (h *ReportEchoHandler) latest(c echo.Context, endpoint string) (*models.Report, error) {
	start := time.Now()
	defer func() {
		svcmetrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	report, err := h.reader.Latest(c.Request().Context())
	if err == nil {
		return report, nil
	}
	svcmetrics.APIErrors.WithLabelValues(endpoint).Inc()
	if errors.Is(err, repository.ErrReportNotFound) {
		return nil, xhttp.NotFoundError("no report has been published yet")
	}
	h.logger.Error("load report failed", xlogger.String("endpoint", endpoint), xlogger.Error(err))
	return nil, xhttp.InternalError("failed to load report").WithError(err)
}
