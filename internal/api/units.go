package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/pricing"
)

// UnitResponse is one resolved unit, optionally with a quote preview.
type UnitResponse struct {
	Unit  model.UnitRecord   `json:"unit"`
	Quote *model.QuoteResult `json:"quote,omitempty"`
}

// GetUnit looks up a unit by id and reconciles its status against the
// override store. An optional ?discount= query adds a quote preview.
// GET /api/units/:id
func (h *Handler) GetUnit(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	snap := h.cache.Snapshot()
	unit, ok := snap.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unit not found"})
		return
	}

	unit.Status = h.reconcileStatus(c, unit)

	resp := UnitResponse{Unit: unit}

	if raw := c.Query("discount"); raw != "" {
		pct, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount"})
			return
		}
		pct = clampDiscount(pct)
		res := pricing.Quote(unit.Price, pct, h.officeFee)
		resp.Quote = &res
	}

	c.JSON(http.StatusOK, resp)
}

// reconcileStatus overlays the remote override, if any, onto the
// tabular-derived status. The override applies to this lookup only and
// is never written back into the snapshot.
func (h *Handler) reconcileStatus(c *gin.Context, unit model.UnitRecord) model.Status {
	if status, ok := h.override.Fetch(c.Request.Context(), unit.ID); ok {
		return status
	}
	return unit.Status
}

// clampDiscount enforces the 0..100 contract at the request boundary;
// the calculator itself does not defend against out-of-range values.
func clampDiscount(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
