package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"alumniconnect-api/models"
	"alumniconnect-api/utils"
)

// HistoryFetcher returns the stored conversation between two users.
// Satisfied by realtime.Gateway.
type HistoryFetcher interface {
	History(ctx context.Context, userAID, userBID string) ([]models.Message, error)
}

type ChatController struct {
	history HistoryFetcher
}

func NewChatController(history HistoryFetcher) *ChatController {
	return &ChatController{history: history}
}

// GetHistory handles GET /api/chat/:otherUserId — the durable record behind
// the realtime chat, chronological, both directions.
func (cc *ChatController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")
	otherUserID := c.Param("otherUserId")

	messages, err := cc.history.History(c.Request.Context(), userID, otherUserID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch chat history")
		return
	}

	c.JSON(http.StatusOK, messages)
}
