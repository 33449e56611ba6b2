// internal/handlers/deal.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/burim/garant-backend/internal/models"
	"github.com/burim/garant-backend/internal/services"
	"github.com/burim/garant-backend/internal/utils"
)

type DealHandler struct {
	dealService *services.DealService
}

func NewDealHandler(dealService *services.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

// POST /deals
func (h *DealHandler) Create(c *gin.Context) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	deal, err := h.dealService.Create(c.Request.Context(), identity, &req)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"deal": deal,
	})
}

// GET /deals/:id
func (h *DealHandler) Get(c *gin.Context) {
	h.withDeal(c, h.dealService.Get)
}

// GET /deals
func (h *DealHandler) List(c *gin.Context) {
	h.list(c, services.DealScopeAll)
}

// GET /deals/sells
func (h *DealHandler) ListSells(c *gin.Context) {
	h.list(c, services.DealScopeSells)
}

// GET /deals/purchases
func (h *DealHandler) ListPurchases(c *gin.Context) {
	h.list(c, services.DealScopePurchases)
}

// POST /deals/:id/pay
func (h *DealHandler) Pay(c *gin.Context) {
	h.withDeal(c, h.dealService.Pay)
}

// POST /deals/:id/cancel
func (h *DealHandler) Cancel(c *gin.Context) {
	h.withDeal(c, h.dealService.Cancel)
}

// POST /deals/:id/supply
func (h *DealHandler) Supply(c *gin.Context) {
	h.withDeal(c, h.dealService.Supply)
}

// POST /deals/:id/submit
func (h *DealHandler) Submit(c *gin.Context) {
	h.withDeal(c, h.dealService.Submit)
}

// POST /deals/:id/arbitration
func (h *DealHandler) Arbitration(c *gin.Context) {
	h.withDeal(c, h.dealService.RaiseArbitration)
}

// withDeal runs a single-deal operation behind the shared auth and id
// plumbing every lifecycle endpoint needs.
func (h *DealHandler) withDeal(c *gin.Context, op func(ctx context.Context, identity services.Identity, dealID uint) (*models.Deal, error)) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deal, err := op(c.Request.Context(), identity, id)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deal": deal,
	})
}

func (h *DealHandler) list(c *gin.Context, scope services.DealScope) {
	identity, ok := identityFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	deals, err := h.dealService.List(c.Request.Context(), identity, scope, c.Query("status"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deals": deals,
	})
}
