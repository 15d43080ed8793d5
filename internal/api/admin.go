package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
)

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetUnitStatus writes a status override to the remote store and
// invalidates the inventory snapshot. The unit does not have to exist
// in the inventory.
// PUT /api/units/:id/status
func (h *Handler) SetUnitStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.override.SetStatus(c.Request.Context(), id, status); err != nil {
		logrus.WithField("unit", id).WithError(err).Error("status override write failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "override store write failed"})
		return
	}

	snap := h.cache.Invalidate()

	c.JSON(http.StatusOK, gin.H{
		"unitId":          id,
		"status":          status,
		"snapshotVersion": snap.Version,
	})
}

// Refresh discards the memoized snapshot and rebuilds it from the
// source workbooks.
// POST /api/refresh
func (h *Handler) Refresh(c *gin.Context) {
	snap := h.cache.Invalidate()

	c.JSON(http.StatusOK, gin.H{
		"snapshotVersion": snap.Version,
		"totalUnits":      len(snap.Units),
	})
}
