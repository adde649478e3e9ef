package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/middleware"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/response"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
)

// RecordHandler handles order/deposit creation and reads. One handler serves
// both kinds; the wiring in routes decides which usecase it gets.
type RecordHandler struct {
	recordUsecase *usecases.RecordUsecase
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordUsecase *usecases.RecordUsecase) *RecordHandler {
	return &RecordHandler{recordUsecase: recordUsecase}
}

// Create creates a PENDING record for the authenticated merchant
// POST /api/v1/orders and POST /api/v1/deposits
func (h *RecordHandler) Create(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "merchant not authenticated"})
		return
	}

	var input entities.CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.MerchantID = merchantID

	result, err := h.recordUsecase.CreateRecord(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

// GetByNumber returns one record by its number
// GET /api/v1/orders/:number and GET /api/v1/deposits/:number
func (h *RecordHandler) GetByNumber(c *gin.Context) {
	record, err := h.recordUsecase.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// List returns the authenticated merchant's records, paginated
// GET /api/v1/orders and GET /api/v1/deposits
func (h *RecordHandler) List(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "merchant not authenticated"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, meta, err := h.recordUsecase.ListByMerchant(c.Request.Context(), merchantID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"data":       records,
		"pagination": meta,
	})
}
