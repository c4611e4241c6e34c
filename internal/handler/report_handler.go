package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"general-ledger/internal/service"
	"general-ledger/internal/utils"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetTrialBalance accepts optional start_date and end_date query params;
// end_date defaults to today.
func (h *ReportHandler) GetTrialBalance(c *fiber.Ctx) error {
	end, err := queryDate(c, "end_date", time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "end_date must be YYYY-MM-DD", err)
	}

	var start *time.Time
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse(entryDateFormat, raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD", err)
		}
		start = &parsed
	}

	report := h.reports.TrialBalance(start, end)
	return utils.SuccessResponse(c, "Trial balance generated successfully", report)
}

func (h *ReportHandler) GetBalanceSheet(c *fiber.Ctx) error {
	asOf, err := queryDate(c, "as_of_date", time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "as_of_date must be YYYY-MM-DD", err)
	}

	report := h.reports.BalanceSheet(asOf)
	return utils.SuccessResponse(c, "Balance sheet generated successfully", report)
}

func (h *ReportHandler) GetIncomeStatement(c *fiber.Ctx) error {
	start, end, err := requireDateRange(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "start_date and end_date must be YYYY-MM-DD", err)
	}

	report := h.reports.IncomeStatement(start, end)
	return utils.SuccessResponse(c, "Income statement generated successfully", report)
}

func (h *ReportHandler) GetCashFlowStatement(c *fiber.Ctx) error {
	start, end, err := requireDateRange(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "start_date and end_date must be YYYY-MM-DD", err)
	}

	report := h.reports.CashFlow(start, end)
	return utils.SuccessResponse(c, "Cash flow statement generated successfully", report)
}

func queryDate(c *fiber.Ctx, name string, fallback time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback.Truncate(24 * time.Hour), nil
	}
	return time.Parse(entryDateFormat, raw)
}

func requireDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := time.Parse(entryDateFormat, c.Query("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(entryDateFormat, c.Query("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
