package handlers

import (
	"net/http"

	"drdhobi/models"
	"drdhobi/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public service catalog and its admin CRUD.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
}

// GetServicesHandler handles GET /api/services. Public.
func (h *CatalogHandler) GetServicesHandler(c *gin.Context) {
	items, err := h.CatalogService.GetAll()
	if err != nil {
		getLogger(c).Error("Failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// SaveServiceHandler handles POST /api/admin/services. Creates or updates a
// catalog entry; a missing ID is derived from the name.
func (h *CatalogHandler) SaveServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	var item models.ServiceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.CatalogService.Save(item)
	if err != nil {
		logger.Error("Failed to save service", zap.String("name", item.Name), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "service": saved})
}

// DeleteServiceHandler handles DELETE /api/admin/services?id=.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Service ID is required"})
		return
	}

	if err := h.CatalogService.Delete(id); err != nil {
		logger.Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
