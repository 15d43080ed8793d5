package api

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
)

// StatusResponse describes the current inventory state.
type StatusResponse struct {
	Initialized     bool     `json:"initialized"`    // any units loaded
	TotalUnits      int      `json:"totalUnits"`     // units in the snapshot
	AvailableUnits  int      `json:"availableUnits"` // tabular-derived, before overrides
	ReservedUnits   int      `json:"reservedUnits"`
	SoldUnits       int      `json:"soldUnits"`
	SnapshotVersion uint64   `json:"snapshotVersion"`
	SourceFiles     []string `json:"sourceFiles"`
	OverrideStore   bool     `json:"overrideStore"` // remote store configured
}

// GetStatus reports the inventory snapshot shape.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	snap := h.cache.Snapshot()
	counts := snap.CountByStatus()

	files := make([]string, 0, len(snap.Sources))
	for _, src := range snap.Sources {
		files = append(files, filepath.Base(src.Path))
	}

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:     len(snap.Units) > 0,
		TotalUnits:      len(snap.Units),
		AvailableUnits:  counts[model.StatusAvailable],
		ReservedUnits:   counts[model.StatusReserved],
		SoldUnits:       counts[model.StatusSold],
		SnapshotVersion: snap.Version,
		SourceFiles:     files,
		OverrideStore:   h.override.Configured(),
	})
}
