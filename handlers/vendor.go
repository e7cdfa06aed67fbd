package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"mehfil/models"
	"mehfil/services/catalog"
	"mehfil/utils"

	"github.com/gin-gonic/gin"
)

type VendorHandler struct {
	Catalog catalog.CatalogService
}

func NewVendorHandler(svc catalog.CatalogService) *VendorHandler {
	return &VendorHandler{Catalog: svc}
}

func parseInt64(c *gin.Context, key string) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, utils.NewValidationError(fmt.Sprintf("%s must be a whole number", key))
	}
	return v, nil
}

func browseQuery(c *gin.Context) (catalog.BrowseQuery, error) {
	q := catalog.BrowseQuery{
		Location: c.Query("location"),
		Date:     c.Query("date"),
		SortBy:   c.Query("sortBy"),
	}
	for _, slug := range c.QueryArray("category") {
		cat, ok := catalog.CategoryFromSlug(slug)
		if !ok {
			return q, utils.NewValidationError("Unknown category: " + slug)
		}
		q.Categories = append(q.Categories, cat)
	}

	var err error
	if q.BudgetMin, err = parseInt64(c, "budgetMin"); err != nil {
		return q, err
	}
	if q.BudgetMax, err = parseInt64(c, "budgetMax"); err != nil {
		return q, err
	}
	if raw := c.Query("minRating"); raw != "" {
		if q.MinRating, err = strconv.ParseFloat(raw, 64); err != nil {
			return q, utils.NewValidationError("minRating must be a number")
		}
	}
	if raw := c.Query("page"); raw != "" {
		if q.Page, err = strconv.Atoi(raw); err != nil {
			return q, utils.NewValidationError("page must be a whole number")
		}
	}
	return q, nil
}

func (h *VendorHandler) browse(c *gin.Context, q catalog.BrowseQuery) {
	page, err := h.Catalog.Browse(c.Request.Context(), q)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": page})
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	q, err := browseQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	h.browse(c, q)
}

// ListByCategory serves /api/vendors/category/:category with the plural URL names.
func (h *VendorHandler) ListByCategory(c *gin.Context) {
	cat, ok := catalog.CategoryFromSlug(c.Param("category"))
	if !ok {
		utils.RespondError(c, utils.NewNotFoundError("Category not found"))
		return
	}
	q, err := browseQuery(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	q.Categories = []models.VendorCategory{cat}
	h.browse(c, q)
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	v, err := h.Catalog.Get(c.Request.Context(), c.Param("vendorId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "vendor": v})
}
