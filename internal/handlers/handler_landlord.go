package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/dto"
	"github.com/SscSPs/rental_management_app/internal/middleware"
)

// LandlordHandler serves the landlord pages.
type LandlordHandler struct {
	landlord  portssvc.LandlordSvcFacade
	reporting portssvc.ReportingSvcFacade
	profiles  portssvc.ProfileSvcFacade
}

func NewLandlordHandler(landlord portssvc.LandlordSvcFacade, reporting portssvc.ReportingSvcFacade, profiles portssvc.ProfileSvcFacade) *LandlordHandler {
	return &LandlordHandler{landlord: landlord, reporting: reporting, profiles: profiles}
}

func registerLandlordRoutes(v1 *gin.RouterGroup, h *LandlordHandler) {
	landlord := v1.Group("/landlord", middleware.RequireRole(domain.RoleLandlord))
	{
		landlord.GET("/dashboard", h.Dashboard)
		landlord.GET("/properties", h.ListProperties)
		landlord.GET("/tenants", h.ListTenants)
		landlord.GET("/invoices", h.ListInvoices)
		landlord.GET("/payments", h.ListPayments)
		landlord.GET("/expenses", h.ListExpenses)
		landlord.GET("/reports/:type", h.Report)
		landlord.GET("/settings", h.Settings)
	}
}

// Dashboard godoc
// @Summary Landlord dashboard
// @Description Portfolio totals, collection rate, recent activity and upcoming lease expiries.
// @Tags landlord
// @Produce json
// @Success 200 {object} domain.LandlordDashboard
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /landlord/dashboard [get]
func (h *LandlordHandler) Dashboard(c *gin.Context) {
	dash, err := h.landlord.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to build landlord dashboard", err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// ListProperties godoc
// @Summary Properties
// @Tags landlord
// @Produce json
// @Success 200 {array} domain.PropertyOverview
// @Security BearerAuth
// @Router /landlord/properties [get]
func (h *LandlordHandler) ListProperties(c *gin.Context) {
	props, err := h.landlord.ListProperties(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list properties", err)
		return
	}
	c.JSON(http.StatusOK, props)
}

// ListTenants godoc
// @Summary Tenants
// @Tags landlord
// @Produce json
// @Param status query string false "Lease status filter; all keeps everyone"
// @Success 200 {object} domain.TenantList
// @Security BearerAuth
// @Router /landlord/tenants [get]
func (h *LandlordHandler) ListTenants(c *gin.Context) {
	list, err := h.landlord.ListTenants(c.Request.Context(), c.DefaultQuery("status", "all"))
	if err != nil {
		respondError(c, "Failed to list tenants", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListInvoices godoc
// @Summary Invoices
// @Tags landlord
// @Produce json
// @Param status query string false "Invoice status"
// @Param propertyId query string false "Property"
// @Param tenantId query string false "Tenant"
// @Param limit query int false "Page size"
// @Param pageToken query string false "Opaque page token"
// @Success 200 {object} domain.InvoiceList
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /landlord/invoices [get]
func (h *LandlordHandler) ListInvoices(c *gin.Context) {
	var params dto.InvoiceListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.landlord.ListInvoices(c.Request.Context(), params.ToInvoiceFilter())
	if err != nil {
		respondError(c, "Failed to list invoices", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListPayments godoc
// @Summary Payments
// @Tags landlord
// @Produce json
// @Param method query string false "Payment method"
// @Param tenantId query string false "Tenant"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Param limit query int false "Page size"
// @Param pageToken query string false "Opaque page token"
// @Success 200 {object} domain.PaymentList
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /landlord/payments [get]
func (h *LandlordHandler) ListPayments(c *gin.Context) {
	var params dto.PaymentListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToPaymentFilter()
	if err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.landlord.ListPayments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "Failed to list payments", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListExpenses godoc
// @Summary Expenses
// @Tags landlord
// @Produce json
// @Param category query string false "Expense category"
// @Param propertyId query string false "Property"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} domain.ExpenseList
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /landlord/expenses [get]
func (h *LandlordHandler) ListExpenses(c *gin.Context) {
	var params dto.ExpenseListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := params.ToExpenseFilter()
	if err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.landlord.ListExpenses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "Failed to list expenses", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Report godoc
// @Summary Landlord report
// @Description Generates one of income-statement, rent-roll, tenant-payments, property-performance or expense-summary. Rent roll ignores the period.
// @Tags landlord
// @Produce json
// @Param type path string true "Report type"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown report type"
// @Security BearerAuth
// @Router /landlord/reports/{type} [get]
func (h *LandlordHandler) Report(c *gin.Context) {
	var params dto.PeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	period, err := params.Range()
	if err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	reportType := domain.ReportType(c.Param("type"))
	var report any
	switch reportType {
	case domain.ReportIncomeStatement:
		report, err = h.reporting.IncomeStatement(ctx, period)
	case domain.ReportRentRoll:
		report, err = h.reporting.RentRoll(ctx)
	case domain.ReportTenantPayments:
		report, err = h.reporting.TenantPaymentHistory(ctx, period)
	case domain.ReportPropertyPerformance:
		report, err = h.reporting.PropertyPerformance(ctx, period)
	case domain.ReportExpenseSummary:
		report, err = h.reporting.ExpenseSummary(ctx, period)
	default:
		appErr := apperrors.NewNotFoundError("Unknown report type")
		c.JSON(appErr.Code, appErr)
		return
	}
	if err != nil {
		respondError(c, "Failed to generate report", err)
		return
	}
	c.JSON(http.StatusOK, dto.ReportResponse{Type: reportType, Report: report})
}

// Settings godoc
// @Summary Landlord settings
// @Description Returns the landlord's own profile.
// @Tags landlord
// @Produce json
// @Success 200 {object} domain.Profile
// @Security BearerAuth
// @Router /landlord/settings [get]
func (h *LandlordHandler) Settings(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, "Missing identity", apperrors.ErrUnauthorized)
		return
	}
	profile, err := h.profiles.FetchProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to load settings", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
