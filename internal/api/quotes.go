package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/pricing"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/quote"
)

// QuoteResponse carries the computed amounts plus a one-shot download
// token for the rendered document.
type QuoteResponse struct {
	Unit     model.UnitRecord  `json:"unit"`
	Quote    model.QuoteResult `json:"quote"`
	Token    string            `json:"token"`
	FileName string            `json:"fileName"`
}

// CreateQuote prices a unit for a customer and renders the quote
// document. Only available units can be quoted.
// POST /api/quotes
func (h *Handler) CreateQuote(c *gin.Context) {
	var req model.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := h.cache.Snapshot()
	unit, ok := snap.Lookup(strings.TrimSpace(req.UnitID))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unit not found"})
		return
	}

	unit.Status = h.reconcileStatus(c, unit)
	if unit.Status != model.StatusAvailable {
		c.JSON(http.StatusConflict, gin.H{"error": "unit is not available"})
		return
	}

	res := pricing.Quote(unit.Price, req.DiscountPct, h.officeFee)
	context := quote.BuildContext(unit, res, req.Customer, time.Now())

	doc, err := h.renderer.Render(context)
	if err != nil {
		logrus.WithField("unit", unit.ID).WithError(err).Warn("quote document render failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not generate document"})
		return
	}

	fileName := fmt.Sprintf("quote_%s.xlsx", unit.ID)
	token := h.downloads.put(doc, fileName, h.downloadTTL)

	c.JSON(http.StatusOK, QuoteResponse{
		Unit:     unit,
		Quote:    res,
		Token:    token,
		FileName: fileName,
	})
}

// DownloadQuote serves a rendered document once.
// GET /api/quotes/download/:token
func (h *Handler) DownloadQuote(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}
	h.downloads.delete(token)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", item.fileName))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", item.data)
}
