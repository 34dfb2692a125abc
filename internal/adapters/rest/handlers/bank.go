package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/akbarw/onlinebank/internal/core/accounts"
	"github.com/akbarw/onlinebank/internal/core/cards"
	"github.com/akbarw/onlinebank/internal/models"
	"github.com/akbarw/onlinebank/internal/services/bank"
	"github.com/akbarw/onlinebank/pkg/encode"
)

type TransferReq struct {
	SenderID       int     `json:"sender_id" binding:"required"`
	RecipientEmail string  `json:"recipient_email" binding:"required,email"`
	Sum            float64 `json:"sum" binding:"required,gt=0"`
}

type TransferResp struct {
	SenderID         int     `json:"sender_id"`
	RecipientID      int     `json:"recipient_id"`
	Sum              float64 `json:"sum"`
	Fee              float64 `json:"fee"`
	SenderBalance    float64 `json:"sender_balance"`
	RecipientBalance float64 `json:"recipient_balance"`
}

func (h *Handler) TransferFunds(c *gin.Context) {
	var json TransferReq
	if err := c.ShouldBindJSON(&json); err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("unable to parse transfer request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.app.BankService.Transfer(
		c.Request.Context(), json.SenderID, json.RecipientEmail, decimal.NewFromFloat(json.Sum),
	)
	if err != nil {
		log.Warn().
			Err(err).Str("path", c.FullPath()).
			Int("senderID", json.SenderID).Str("recipient", json.RecipientEmail).Float64("sum", json.Sum).
			Msg("Failed to transfer funds")
		switch {
		case errors.Is(err, accounts.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, bank.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, bank.ErrTransferInvalidSum):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": TransferResp{
		SenderID:         receipt.Sender.ID,
		RecipientID:      receipt.Recipient.ID,
		Sum:              encode.DecimalToFloat(receipt.Sum),
		Fee:              encode.DecimalToFloat(receipt.Fee),
		SenderBalance:    encode.DecimalToFloat(receipt.Sender.Balance),
		RecipientBalance: encode.DecimalToFloat(receipt.Recipient.Balance),
	}})
}

type DepositReq struct {
	AccountID int     `json:"account_id" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Sum       float64 `json:"sum" binding:"required,gt=0"`
}

type DepositResp struct {
	AccountID int     `json:"account_id"`
	Sum       float64 `json:"sum"`
	Balance   float64 `json:"balance"`
}

func (h *Handler) DepositFunds(c *gin.Context) {
	var json DepositReq
	if err := c.ShouldBindJSON(&json); err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("unable to parse deposit request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.app.BankService.Deposit(
		c.Request.Context(), json.AccountID, json.Email, decimal.NewFromFloat(json.Sum),
	)
	if err != nil {
		log.Warn().
			Err(err).Str("path", c.FullPath()).Int("accountID", json.AccountID).Float64("sum", json.Sum).
			Msg("Failed to deposit funds")
		switch {
		case errors.Is(err, accounts.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, bank.ErrEmailMismatch), errors.Is(err, bank.ErrDepositInvalidSum):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": DepositResp{
		AccountID: updated.ID,
		Sum:       json.Sum,
		Balance:   encode.DecimalToFloat(updated.Balance),
	}})
}

type WithdrawReq struct {
	AccountID int     `json:"account_id" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Card      string  `json:"card" binding:"required"`
	Sum       float64 `json:"sum" binding:"required,gt=0"`
}

type WithdrawResp struct {
	AccountID int     `json:"account_id"`
	Sum       float64 `json:"sum"`
	Fee       float64 `json:"fee"`
	Balance   float64 `json:"balance"`
}

func (h *Handler) WithdrawFunds(c *gin.Context) {
	var json WithdrawReq
	if err := c.ShouldBindJSON(&json); err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("unable to parse withdrawal request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.app.BankService.Withdraw(
		c.Request.Context(),
		json.AccountID, json.Email, models.CardType(json.Card), decimal.NewFromFloat(json.Sum),
	)
	if err != nil {
		log.Warn().
			Err(err).Str("path", c.FullPath()).
			Int("accountID", json.AccountID).Str("card", json.Card).Float64("sum", json.Sum).
			Msg("Failed to withdraw funds")
		switch {
		case errors.Is(err, accounts.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, bank.ErrInsufficientFunds):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, bank.ErrEmailMismatch),
			errors.Is(err, cards.ErrCardTypeMismatch),
			errors.Is(err, bank.ErrWithdrawInvalidSum):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": WithdrawResp{
		AccountID: receipt.Account.ID,
		Sum:       encode.DecimalToFloat(receipt.Sum),
		Fee:       encode.DecimalToFloat(receipt.Fee),
		Balance:   encode.DecimalToFloat(receipt.Account.Balance),
	}})
}
