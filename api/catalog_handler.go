package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"carrent/pkg/logger"
	"carrent/pkg/models"
	"carrent/service"
)

type CatalogHandler struct {
	svc service.IServiceManager
	log logger.ILogger
}

func NewCatalogHandler(svc service.IServiceManager, log logger.ILogger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	cat, err := h.svc.Catalog().Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CatalogHandler) ListLocations(c *gin.Context) {
	cat, err := h.svc.Catalog().Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat.EnabledLocations())
}

func (h *CatalogHandler) ListCars(c *gin.Context) {
	cat, err := h.svc.Catalog().Snapshot(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat.EnabledCarTypes())
}

func (h *CatalogHandler) SaveCarType(c *gin.Context) {
	var ct models.CarType
	if err := c.ShouldBindJSON(&ct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.svc.Catalog().SaveCarType(c.Request.Context(), &ct)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *CatalogHandler) SetCarTypeEnabled(c *gin.Context) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Catalog().SetCarTypeEnabled(c.Request.Context(), c.Param("id"), body.Enabled); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteCarType(c *gin.Context) {
	if err := h.svc.Catalog().DeleteCarType(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) SaveLocation(c *gin.Context) {
	var l models.Location
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := h.svc.Catalog().SaveLocation(c.Request.Context(), &l)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *CatalogHandler) DeleteLocation(c *gin.Context) {
	if err := h.svc.Catalog().DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) SaveNationality(c *gin.Context) {
	h.saveFactor(c, h.svc.Catalog().SaveNationality)
}

func (h *CatalogHandler) DeleteNationality(c *gin.Context) {
	if err := h.svc.Catalog().DeleteNationality(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) SaveTourType(c *gin.Context) {
	h.saveFactor(c, h.svc.Catalog().SaveTourType)
}

func (h *CatalogHandler) DeleteTourType(c *gin.Context) {
	if err := h.svc.Catalog().DeleteTourType(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) UpdateSettings(c *gin.Context) {
	var s models.BookingSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Catalog().UpdateSettings(c.Request.Context(), &s); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

type saveFactorFn func(ctx context.Context, f *models.FactorEntry) (*models.FactorEntry, error)

func (h *CatalogHandler) saveFactor(c *gin.Context, save saveFactorFn) {
	var f models.FactorEntry
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := save(c.Request.Context(), &f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *CatalogHandler) fail(c *gin.Context, err error) {
	h.log.Error("catalog request failed", logger.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
