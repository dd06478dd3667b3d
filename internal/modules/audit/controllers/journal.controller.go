package controllers

import (
	"net/http"
	"strconv"

	"isti-portal-core/internal/modules/audit/services"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	journal *services.JournalService
}

func NewJournalController(journal *services.JournalService) *JournalController {
	return &JournalController{journal: journal}
}

// List GET /api/v1/admin/journal?limite=&utilisateur=
func (c *JournalController) List(ctx *gin.Context) {
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limite", "100"), 10, 64)
	userID := ctx.Query("utilisateur")

	var (
		entries []services.Entry
		err     error
	)
	if userID != "" {
		entries, err = c.journal.ListByUser(ctx.Request.Context(), userID, limit)
	} else {
		entries, err = c.journal.ListRecent(ctx.Request.Context(), limit)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erreur lors de la lecture du journal",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"entries": entries,
	})
}
