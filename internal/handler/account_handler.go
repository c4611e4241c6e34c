package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"general-ledger/internal/models"
	"general-ledger/internal/repository"
	"general-ledger/internal/service"
	"general-ledger/internal/utils"
)

type AccountHandler struct {
	tree        *service.AccountTreeService
	accountRepo *repository.AccountRepository
	typeRepo    *repository.AccountTypeRepository
	openingRepo *repository.OpeningBalanceRepository
}

func NewAccountHandler(
	tree *service.AccountTreeService,
	accountRepo *repository.AccountRepository,
	typeRepo *repository.AccountTypeRepository,
	openingRepo *repository.OpeningBalanceRepository,
) *AccountHandler {
	return &AccountHandler{
		tree:        tree,
		accountRepo: accountRepo,
		typeRepo:    typeRepo,
		openingRepo: openingRepo,
	}
}

func (h *AccountHandler) GetAccounts(c *fiber.Ctx) error {
	params := utils.GetPaginationParams(c)
	offset := utils.GetOffset(params.Page, params.Limit)

	accounts, total, err := h.accountRepo.FindAll(params.Limit, offset, params.Search)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve accounts", err)
	}

	pagination := utils.CalculatePagination(params.Page, params.Limit, int64(total))

	responseData := fiber.Map{
		"accounts":   accounts,
		"pagination": pagination,
	}

	return utils.PaginatedResponseBuilder(c, "Accounts retrieved successfully", responseData, pagination)
}

func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	account, err := h.tree.Get(id)
	if err != nil {
		return utils.DomainErrorResponse(c, "Account not found", err)
	}

	return utils.SuccessResponse(c, "Account retrieved successfully", account)
}

// GetRoots returns the active top-level accounts; statements report at
// this level since roots already include all descendants.
func (h *AccountHandler) GetRoots(c *fiber.Ctx) error {
	roots, err := h.tree.Roots()
	if err != nil {
		return utils.DomainErrorResponse(c, "Failed to retrieve root accounts", err)
	}

	return utils.SuccessResponse(c, "Root accounts retrieved successfully", roots)
}

func (h *AccountHandler) GetChildren(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	children, err := h.tree.Children(id)
	if err != nil {
		return utils.DomainErrorResponse(c, "Failed to retrieve children", err)
	}

	return utils.SuccessResponse(c, "Children retrieved successfully", children)
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req models.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	account, err := h.tree.Create(req)
	if err != nil {
		return utils.DomainErrorResponse(c, "Failed to create account", err)
	}

	return utils.CreatedResponse(c, "Account created successfully", account)
}

func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	var req models.AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	account, err := h.tree.Update(id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, "Failed to update account", err)
	}

	return utils.SuccessResponse(c, "Account updated successfully", account)
}

func (h *AccountHandler) ReparentAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	var req models.ReparentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := h.tree.Reparent(id, req.ParentAccountID); err != nil {
		return utils.DomainErrorResponse(c, "Failed to move account", err)
	}

	return utils.SuccessResponse(c, "Account moved successfully", nil)
}

func (h *AccountHandler) DeactivateAccount(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	if err := h.tree.Deactivate(id); err != nil {
		return utils.DomainErrorResponse(c, "Failed to deactivate account", err)
	}

	return utils.SuccessResponse(c, "Account deactivated successfully", nil)
}

func (h *AccountHandler) SetOpeningBalance(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	var req models.OpeningBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if _, err := h.tree.Get(id); err != nil {
		return utils.DomainErrorResponse(c, "Account not found", err)
	}
	if err := h.openingRepo.Upsert(id, req.Balance); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to set opening balance", err)
	}

	return utils.SuccessResponse(c, "Opening balance saved successfully", nil)
}

func (h *AccountHandler) GetAccountTypes(c *fiber.Ctx) error {
	types, err := h.typeRepo.FindAll()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve account types", err)
	}

	return utils.SuccessResponse(c, "Account types retrieved successfully", types)
}

func (h *AccountHandler) CreateAccountType(c *fiber.Ctx) error {
	var req models.AccountTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if req.Name == "" || req.NormalBalance == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Name and normal balance are required", nil)
	}
	if req.NormalBalance != models.NormalDebit && req.NormalBalance != models.NormalCredit {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Normal balance must be debit or credit", nil)
	}
	if req.CashFlowCategory == "" {
		req.CashFlowCategory = models.CashFlowNone
	}

	accountType := &models.AccountType{
		Name:             req.Name,
		NormalBalance:    req.NormalBalance,
		CashFlowCategory: req.CashFlowCategory,
		IsActive:         true,
	}
	if err := h.typeRepo.Create(accountType); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create account type", err)
	}

	return utils.CreatedResponse(c, "Account type created successfully", accountType)
}

func (h *AccountHandler) GetOpeningBalance(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid account ID", err)
	}

	ob, err := h.openingRepo.FindByAccount(id)
	if errors.Is(err, sql.ErrNoRows) {
		// Absent row means zero; answer with a shaped default.
		return utils.SuccessResponse(c, "Opening balance retrieved successfully", models.OpeningBalance{AccountID: id})
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve opening balance", err)
	}

	return utils.SuccessResponse(c, "Opening balance retrieved successfully", ob)
}
