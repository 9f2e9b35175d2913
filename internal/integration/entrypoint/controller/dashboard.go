// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSalesChartUseCase *dashboard.GetSalesChartUseCase
	getKPIUseCase        *dashboard.GetKPIUseCase
	getPeriodsUseCase    *dashboard.GetPeriodsUseCase
	classifier           *dashboard.RelativeDayClassifier
	clock                dashboard.Clock
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getSalesChartUseCase *dashboard.GetSalesChartUseCase,
	getKPIUseCase *dashboard.GetKPIUseCase,
	getPeriodsUseCase *dashboard.GetPeriodsUseCase,
	classifier *dashboard.RelativeDayClassifier,
	clock dashboard.Clock,
) *DashboardController {
	return &DashboardController{
		getSalesChartUseCase: getSalesChartUseCase,
		getKPIUseCase:        getKPIUseCase,
		getPeriodsUseCase:    getPeriodsUseCase,
		classifier:           classifier,
		clock:                clock,
	}
}

// GetSalesChart handles GET /dashboard/sales-chart requests.
func (c *DashboardController) GetSalesChart(ctx *gin.Context) {
	input := dashboard.GetSalesChartInput{
		Frequency: entity.Frequency(strings.ToLower(strings.TrimSpace(ctx.Query("frequency")))),
	}

	output, err := c.getSalesChartUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesChartResponse(output))
}

// ShapeChart handles POST /dashboard/sales-chart/shape requests.
// The caller supplies the raw sales; nothing is fetched.
func (c *DashboardController) ShapeChart(ctx *gin.Context) {
	var req dto.ShapeChartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidBody(ctx, err)
		return
	}

	frequency := entity.Frequency(strings.ToLower(strings.TrimSpace(req.Frequency)))
	raw := entity.RawSales{Yearly: req.Yearly, Quarterly: req.Quarterly}

	chart, err := dashboard.ShapeSeries(raw, frequency)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToChartResponse(frequency, chart))
}

// Rollup handles POST /dashboard/sales/rollup requests.
func (c *DashboardController) Rollup(ctx *gin.Context) {
	var req dto.RollupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidBody(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRollupResponse(dashboard.RollupQuarterly(req.Yearly)))
}

// GetKPI handles GET /dashboard/kpi requests.
func (c *DashboardController) GetKPI(ctx *gin.Context) {
	input := dashboard.GetKPIInput{
		Timezone: ctx.Query("timezone"),
		From:     ctx.Query("from"),
		To:       ctx.Query("to"),
	}

	output, err := c.getKPIUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToKPIResponse(output))
}

// GetPeriods handles GET /dashboard/periods requests.
func (c *DashboardController) GetPeriods(ctx *gin.Context) {
	output, err := c.getPeriodsUseCase.Execute(dashboard.GetPeriodsInput{
		Timezone: ctx.Query("timezone"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodsResponse(output))
}

// GetYears handles GET /dashboard/years requests.
// start defaults to the first sales year and end to the current year.
func (c *DashboardController) GetYears(ctx *gin.Context) {
	start, err := parseYearParam(ctx, "start", dashboard.DefaultStartYear)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	end, err := parseYearParam(ctx, "end", c.clock.Now().Year())
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	var years []int
	if strict, _ := strconv.ParseBool(ctx.Query("strict")); strict {
		years, err = dashboard.YearRangeStrict(start, end)
		if err != nil {
			c.handleDashboardError(ctx, err)
			return
		}
	} else {
		years = dashboard.YearRange(start, end)
	}

	ctx.JSON(http.StatusOK, dto.YearsResponse{Data: dto.YearsData{Years: years}})
}

// GetRelativeDay handles GET /dashboard/relative-day requests.
func (c *DashboardController) GetRelativeDay(ctx *gin.Context) {
	date := ctx.Query("date")

	ctx.JSON(http.StatusOK, dto.RelativeDayResponse{
		Data: dto.RelativeDayData{
			Date:        date,
			RelativeDay: c.classifier.Classify(date, c.clock.Now()),
		},
	})
}

func parseYearParam(ctx *gin.Context, name string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return defaultValue, nil
	}

	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidYear,
			name+" must be an integer",
			domainerror.ErrInvalidYear,
		)
	}
	if !dashboard.ValidYear(year) {
		return 0, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidYear,
			name+" must be between "+strconv.Itoa(dashboard.MinYear)+" and "+strconv.Itoa(dashboard.MaxYear),
			domainerror.ErrInvalidYear,
		)
	}
	return year, nil
}

func (c *DashboardController) invalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidRequestBody),
		Details: err.Error(),
	})
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		statusCode := c.getStatusCodeForDashboardError(dashErr.Code)
		if statusCode >= http.StatusInternalServerError {
			requestID, _ := middleware.GetRequestIDFromContext(ctx)
			slog.Error("dashboard request failed",
				"request_id", requestID,
				"path", ctx.Request.URL.Path,
				"code", dashErr.Code,
				"error", err,
			)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	requestID, _ := middleware.GetRequestIDFromContext(ctx)
	slog.Error("unexpected dashboard error",
		"request_id", requestID,
		"path", ctx.Request.URL.Path,
		"error", err,
	)

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeMissingFrequency,
		domainerror.ErrCodeInvalidRange,
		domainerror.ErrCodeUnknownTimezone,
		domainerror.ErrCodeInvalidYear,
		domainerror.ErrCodeInvalidRequestBody:
		return http.StatusBadRequest
	case domainerror.ErrCodeUpstreamUnavailable:
		return http.StatusBadGateway
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
