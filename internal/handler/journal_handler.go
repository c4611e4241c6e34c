package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"general-ledger/internal/models"
	"general-ledger/internal/service"
	"general-ledger/internal/utils"
)

const entryDateFormat = "2006-01-02"

type JournalHandler struct {
	ledger *service.LedgerService
}

func NewJournalHandler(ledger *service.LedgerService) *JournalHandler {
	return &JournalHandler{ledger: ledger}
}

func (h *JournalHandler) GetEntries(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)

	entries, total, err := h.ledger.ListEntries(params.Limit, offset, params.Search)
	if err != nil {
		return utils.DomainErrorResponse(c, "Failed to retrieve journal entries", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"entries":    entries,
		"pagination": pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Journal entries retrieved successfully", responseData, pagination)
}

func (h *JournalHandler) GetEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid entry ID", err)
	}

	entry, err := h.ledger.GetEntry(id)
	if err != nil {
		return utils.DomainErrorResponse(c, "Journal entry not found", err)
	}

	return utils.SuccessResponse(c, "Journal entry retrieved successfully", entry)
}

func (h *JournalHandler) CreateEntry(c *fiber.Ctx) error {
	var req models.JournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	date, err := time.Parse(entryDateFormat, req.EntryDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Entry date must be YYYY-MM-DD", err)
	}

	entry, err := h.ledger.CreateEntry(date, req.Description, req.Lines)
	if err != nil {
		return utils.DomainErrorResponse(c, "Failed to create journal entry", err)
	}

	return utils.CreatedResponse(c, "Journal entry created successfully", entry)
}

func (h *JournalHandler) UpdateEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid entry ID", err)
	}

	var req models.JournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	date, err := time.Parse(entryDateFormat, req.EntryDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Entry date must be YYYY-MM-DD", err)
	}

	entry, err := h.ledger.UpdateEntry(id, date, req.Description, req.Lines)
	if err != nil {
		return utils.DomainErrorResponse(c, "Failed to update journal entry", err)
	}

	return utils.SuccessResponse(c, "Journal entry updated successfully", entry)
}

func (h *JournalHandler) ReverseEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid entry ID", err)
	}

	entry, err := h.ledger.ReverseEntry(id)
	if err != nil {
		return utils.DomainErrorResponse(c, "Failed to reverse journal entry", err)
	}

	return utils.SuccessResponse(c, "Journal entry reversed successfully", entry)
}
