package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/middleware"
)

// TenantHandler serves the tenant pages. A tenant only ever sees its own
// records; the tenant id is the caller's user id.
type TenantHandler struct {
	tenant portssvc.TenantSvcFacade
}

func NewTenantHandler(tenant portssvc.TenantSvcFacade) *TenantHandler {
	return &TenantHandler{tenant: tenant}
}

func registerTenantRoutes(v1 *gin.RouterGroup, h *TenantHandler) {
	tenant := v1.Group("/tenant", middleware.RequireRole(domain.RoleTenant))
	{
		tenant.GET("/dashboard", h.Dashboard)
		tenant.GET("/invoices", h.ListInvoices)
		tenant.GET("/payments", h.ListPayments)
		tenant.GET("/credits", h.ListCredits)
		tenant.GET("/statement", h.Statement)
		tenant.GET("/profile", h.Profile)
	}
}

func tenantID(c *gin.Context) (string, bool) {
	id, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, "Missing identity", apperrors.ErrUnauthorized)
	}
	return id, ok
}

// Dashboard godoc
// @Summary Tenant dashboard
// @Tags tenant
// @Produce json
// @Success 200 {object} domain.TenantDashboard
// @Failure 404 {object} dto.ErrorResponse "No tenant record for the caller"
// @Security BearerAuth
// @Router /tenant/dashboard [get]
func (h *TenantHandler) Dashboard(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	dash, err := h.tenant.Dashboard(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to build tenant dashboard", err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// ListInvoices godoc
// @Summary Tenant invoices
// @Tags tenant
// @Produce json
// @Param status query string false "Invoice status; all keeps everything"
// @Success 200 {object} domain.InvoiceList
// @Security BearerAuth
// @Router /tenant/invoices [get]
func (h *TenantHandler) ListInvoices(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	list, err := h.tenant.ListInvoices(c.Request.Context(), id, c.DefaultQuery("status", "all"))
	if err != nil {
		respondError(c, "Failed to list tenant invoices", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListPayments godoc
// @Summary Tenant payments
// @Tags tenant
// @Produce json
// @Success 200 {object} domain.PaymentList
// @Security BearerAuth
// @Router /tenant/payments [get]
func (h *TenantHandler) ListPayments(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	list, err := h.tenant.ListPayments(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to list tenant payments", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListCredits godoc
// @Summary Tenant credit notes
// @Tags tenant
// @Produce json
// @Success 200 {object} domain.CreditSummary
// @Security BearerAuth
// @Router /tenant/credits [get]
func (h *TenantHandler) ListCredits(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	credits, err := h.tenant.ListCredits(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to list tenant credits", err)
		return
	}
	c.JSON(http.StatusOK, credits)
}

// Statement godoc
// @Summary Tenant statement
// @Description Chronological ledger of invoices, payments and credits with a running balance.
// @Tags tenant
// @Produce json
// @Success 200 {object} domain.Statement
// @Security BearerAuth
// @Router /tenant/statement [get]
func (h *TenantHandler) Statement(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	stmt, err := h.tenant.Statement(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to build tenant statement", err)
		return
	}
	c.JSON(http.StatusOK, stmt)
}

// Profile godoc
// @Summary Tenant profile
// @Tags tenant
// @Produce json
// @Success 200 {object} domain.TenantProfile
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tenant/profile [get]
func (h *TenantHandler) Profile(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	profile, err := h.tenant.Profile(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to load tenant profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
