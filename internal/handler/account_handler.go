package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/silverbank/account-service/internal/cqrs"
	"github.com/silverbank/account-service/internal/middleware"
	"github.com/silverbank/account-service/internal/models"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(cqrs.CreateAccountCommand) (*models.Account, error)
	UpdateAccount(cqrs.UpdateAccountCommand) (*models.Account, error)
	DeleteAccount(cqrs.DeleteAccountCommand) error
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetAccount(cqrs.GetAccountQuery) (*models.Account, error)
	ListAccounts(cqrs.ListAccountsQuery) ([]models.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

// AccountRequest is the payload for both create and full-replace update.
// Unknown extra keys are ignored; a missing date_joined is defaulted.
type AccountRequest struct {
	Name        string      `json:"name" validate:"required"`
	Email       string      `json:"email" validate:"required"`
	Address     string      `json:"address" validate:"required"`
	PhoneNumber string      `json:"phone_number" validate:"required"`
	DateJoined  models.Date `json:"date_joined"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.commands.CreateAccount(cqrs.CreateAccountCommand{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		DateJoined:  req.DateJoined,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to create account")
		return
	}

	c.Header("Location", fmt.Sprintf("/accounts/%d", account.ID))
	c.JSON(http.StatusCreated, account)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.queries.ListAccounts(cqrs.ListAccountsQuery{})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
		return
	}

	account, err := h.queries.GetAccount(cqrs.GetAccountQuery{AccountID: id})
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound,
				fmt.Sprintf("Account with id [%d] could not be found", id))
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
		return
	}

	var req AccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	account, err := h.commands.UpdateAccount(cqrs.UpdateAccountCommand{
		AccountID:   id,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		DateJoined:  req.DateJoined,
	})
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			middleware.RespondWithError(c, http.StatusNotFound,
				fmt.Sprintf("Account with id [%d] could not be found", id))
			return
		}
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// DeleteAccount always answers 204: deleting an unknown id is a success.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.commands.DeleteAccount(cqrs.DeleteAccountCommand{AccountID: id}); err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	c.Status(http.StatusNoContent)
}

// accountID parses the :id path segment. A non-numeric segment behaves like
// an unknown id.
func accountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
