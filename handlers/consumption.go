package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"quotes-api/models"
	"quotes-api/services"
)

type ConsumptionHandler struct {
	Calculations *services.ConsumptionService
	Catalog      *services.CatalogService
	Reports      *services.ReportService
}

// AddProduct adds a catalog product to a draft calculation. Each
// product can appear only once per calculation.
func (h *ConsumptionHandler) AddProduct(c *gin.Context) {
	var req models.AddConsumptionProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.Catalog.GetByID(req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	calc, err := h.Calculations.AddProduct(req.Calculation, *product)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calc)
}

// SetField updates the consumption rate or the unit of one product in
// a draft calculation.
func (h *ConsumptionHandler) SetField(c *gin.Context) {
	var req models.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	calc, err := h.Calculations.SetField(req.Calculation, req.ItemID, req.Field, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calc)
}

// SetHeadcount updates the headcount and recomputes every product.
func (h *ConsumptionHandler) SetHeadcount(c *gin.Context) {
	var req models.SetHeadcountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Calculations.SetHeadcount(req.Calculation, req.NumberOfPeople))
}

// RemoveProduct drops a product from a draft calculation.
func (h *ConsumptionHandler) RemoveProduct(c *gin.Context) {
	var req models.RemoveConsumptionProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.Calculations.RemoveProduct(req.Calculation, req.ItemID))
}

// CreateCalculation validates and persists a draft calculation.
func (h *ConsumptionHandler) CreateCalculation(c *gin.Context) {
	var draft models.ConsumptionCalculation
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	calc, err := h.Calculations.Save(draft)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, calc)
}

// ListCalculations returns all saved calculations.
func (h *ConsumptionHandler) ListCalculations(c *gin.Context) {
	calcs, err := h.Calculations.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, calcs)
}

// ListCalculationsGrouped returns saved calculations grouped by event.
func (h *ConsumptionHandler) ListCalculationsGrouped(c *gin.Context) {
	calcs, err := h.Calculations.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.GroupByEvent(calcs))
}

// DeleteCalculation removes a calculation. The confirmation gate runs
// before this handler.
func (h *ConsumptionHandler) DeleteCalculation(c *gin.Context) {
	if err := h.Calculations.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Calculation deleted"})
}

func (h *ConsumptionHandler) eventSummary(c *gin.Context) (*models.EventSummary, bool) {
	calcs, err := h.Calculations.List()
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	summary := services.Summarize(c.Param("name"), calcs)
	if len(summary.Calculations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return nil, false
	}
	return &summary, true
}

// EventSummary merges every calculation of one event.
func (h *ConsumptionHandler) EventSummary(c *gin.Context) {
	summary, ok := h.eventSummary(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, summary)
}

// EventReport renders the event cost report inline.
func (h *ConsumptionHandler) EventReport(c *gin.Context) {
	summary, ok := h.eventSummary(c)
	if !ok {
		return
	}

	html, err := h.Reports.RenderEventSummary(*summary)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// DownloadEventReport renders the same report as an attachment.
func (h *ConsumptionHandler) DownloadEventReport(c *gin.Context) {
	summary, ok := h.eventSummary(c)
	if !ok {
		return
	}

	html, err := h.Reports.RenderEventSummary(*summary)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.EventReportFilename(summary.EventName)))
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
