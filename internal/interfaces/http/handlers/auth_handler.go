package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	domainerrors "github.com/RozoAI/rozo-app-backend-sub000/internal/domain/errors"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/repositories"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/response"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/crypto"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/jwt"
)

// AuthHandler handles merchant registration and login
type AuthHandler struct {
	merchantRepo repositories.MerchantRepository
	jwtService   *jwt.JWTService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(merchantRepo repositories.MerchantRepository, jwtService *jwt.JWTService) *AuthHandler {
	return &AuthHandler{merchantRepo: merchantRepo, jwtService: jwtService}
}

type registerInput struct {
	Email          string `json:"email" binding:"required,email"`
	BusinessName   string `json:"businessName" binding:"required"`
	PIN            string `json:"pin" binding:"required,min=4"`
	DefaultChainID string `json:"defaultChainId"`
	DefaultAddress string `json:"defaultAddress"`
	DefaultToken   string `json:"defaultToken"`
}

// Register creates a merchant account
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.merchantRepo.GetByEmail(c.Request.Context(), input.Email); err == nil {
		response.Error(c, domainerrors.NewAppError(http.StatusConflict, "ERR_ALREADY_EXISTS",
			"merchant already registered", domainerrors.ErrAlreadyExists))
		return
	}

	pinHash, err := crypto.HashPIN(input.PIN)
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	merchant := &entities.Merchant{
		ID:             uuid.New(),
		Email:          input.Email,
		BusinessName:   input.BusinessName,
		Status:         entities.MerchantStatusActive,
		DefaultChainID: input.DefaultChainID,
		DefaultAddress: input.DefaultAddress,
		DefaultToken:   input.DefaultToken,
		PinHash:        pinHash,
	}
	if err := h.merchantRepo.Create(c.Request.Context(), merchant); err != nil {
		response.Error(c, domainerrors.StorageError(err))
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":    merchant.ID,
		"email": merchant.Email,
	})
}

type loginInput struct {
	Email string `json:"email" binding:"required,email"`
	PIN   string `json:"pin" binding:"required"`
}

// Login exchanges email + PIN for a token pair
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merchant, err := h.merchantRepo.GetByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, domainerrors.Unauthorized("invalid credentials"))
			return
		}
		response.Error(c, domainerrors.StorageError(err))
		return
	}

	if !crypto.CheckPIN(input.PIN, merchant.PinHash) {
		response.Error(c, domainerrors.Unauthorized("invalid credentials"))
		return
	}
	if merchant.Status != entities.MerchantStatusActive {
		response.Error(c, domainerrors.Forbidden("merchant not active"))
		return
	}

	pair, err := h.jwtService.GenerateTokenPair(merchant.ID, merchant.Email)
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}
	response.Success(c, http.StatusOK, pair)
}
