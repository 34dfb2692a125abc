package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/akbarw/onlinebank/internal/core/accounts"
	"github.com/akbarw/onlinebank/internal/core/cards"
	"github.com/akbarw/onlinebank/internal/models"
	"github.com/akbarw/onlinebank/internal/services/account"
	"github.com/akbarw/onlinebank/pkg/encode"
)

type RegisterAccountReq struct {
	Name     string  `json:"name" binding:"required,notblank"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,notblank"`
	Balance  float64 `json:"balance" binding:"gte=0"`
	Card     string  `json:"card" binding:"required"`
}

type AccountResp struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
	Card    string  `json:"card"`
}

func newAccountResp(a models.Account) AccountResp {
	return AccountResp{
		ID:      a.ID,
		Name:    a.Name,
		Email:   a.Email,
		Balance: encode.DecimalToFloat(a.Balance),
		Card:    string(a.Card),
	}
}

func (h *Handler) RegisterAccount(c *gin.Context) {
	var json RegisterAccountReq
	if err := c.ShouldBindJSON(&json); err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("unable to parse register request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.app.AccountService.Register(
		c.Request.Context(),
		strings.TrimSpace(json.Name),
		strings.TrimSpace(json.Email),
		json.Password,
		decimal.NewFromFloat(json.Balance),
		models.CardType(json.Card),
	)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrAccountEmailIsTaken):
			log.Debug().
				Err(err).Str("path", c.FullPath()).Str("email", json.Email).
				Msg("unable to register account due to conflict")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, cards.ErrUnknownCardType),
			errors.Is(err, cards.ErrPremiumOpeningTooLow),
			errors.Is(err, cards.ErrNonPremiumOpeningTooHigh),
			errors.Is(err, account.ErrRegisterEmptyPassword):
			log.Debug().
				Err(err).Str("path", c.FullPath()).Str("email", json.Email).Str("card", json.Card).
				Msg("unable to register account with these details")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Error().
				Err(err).Str("path", c.FullPath()).Str("email", json.Email).
				Msg("unable to register account due to error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Info().
		Str("path", c.FullPath()).Int("id", a.ID).Str("email", a.Email).
		Msg("registered new account")
	c.JSON(http.StatusOK, gin.H{"result": newAccountResp(a)})
}

type LoginAccountReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,notblank"`
}

func (h *Handler) LoginAccount(c *gin.Context) {
	var json LoginAccountReq

	if err := c.ShouldBindJSON(&json); err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("unable to parse login request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.app.AccountService.Authenticate(c.Request.Context(), json.Email, json.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAuthenticateInvalidCredentials):
			log.Debug().
				Err(err).Str("path", c.FullPath()).Str("email", json.Email).
				Msg("unable to login account due to email/password mismatch")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, account.ErrAuthenticateEmptyPassword):
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("unable to login account with empty password")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Error().
				Err(err).Str("path", c.FullPath()).Str("email", json.Email).
				Msg("unable to login account due to error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Info().
		Str("path", c.FullPath()).Int("id", a.ID).Str("email", a.Email).
		Msg("account logged in")
	c.JSON(http.StatusOK, gin.H{"result": newAccountResp(a)})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("unable to parse account id")
		c.JSON(http.StatusBadRequest, gin.H{"error": "account id must be an integer"})
		return
	}

	if err := h.app.AccountService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, accounts.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Error().
				Err(err).Str("path", c.FullPath()).Int("id", id).
				Msg("unable to delete account due to error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	log.Info().Str("path", c.FullPath()).Int("id", id).Msg("account deleted")
	c.Status(http.StatusNoContent)
}
