package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cldops/trainroom-server/config"
	"github.com/cldops/trainroom-server/middleware"
	"github.com/cldops/trainroom-server/models"
)

func chatMessageJSON(m models.ChatMessage, viewerID uint) gin.H {
	sender := ""
	color := models.DefaultColor
	if m.Sender != nil {
		sender = m.Sender.Username
		color = m.Sender.DisplayColor()
	}
	return gin.H{
		"id":         m.ID,
		"sender":     sender,
		"message":    m.Message,
		"created_at": m.CreatedAt.Format("Jan 02, 15:04"),
		"color":      color,
		"is_me":      m.SenderID == viewerID,
	}
}

// GET /api/chat/messages?after=N
// Polling endpoint: only messages with id > after, soft-deleted rows never
// reappear, ascending creation order. The client re-requests on a timer.
func ChatMessages(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	after, err := strconv.Atoi(c.DefaultQuery("after", "0"))
	if err != nil || after < 0 {
		after = 0
	}

	var msgs []models.ChatMessage
	if err := config.DB.
		Preload("Sender.Profile").
		Where("id > ? AND is_deleted = ?", after, false).
		Order("created_at").
		Find(&msgs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load messages"})
		return
	}

	data := make([]gin.H, 0, len(msgs))
	for _, m := range msgs {
		data = append(data, chatMessageJSON(m, u.ID))
	}
	c.JSON(http.StatusOK, data)
}

type ChatSendReq struct {
	Message string `json:"message" binding:"required"`
}

// POST /api/chat/messages
func SendChatMessage(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req ChatSendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad JSON"})
		return
	}
	text := strings.TrimSpace(req.Message)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message cannot be empty"})
		return
	}

	msg := models.ChatMessage{SenderID: u.ID, Message: text}
	if err := config.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not send message"})
		return
	}
	msg.Sender = &u

	c.JSON(http.StatusCreated, chatMessageJSON(msg, u.ID))
}

// DELETE /api/chat/messages/:id
// Soft delete: the row stays, the flag hides it from every read.
func DeleteChatMessage(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message id"})
		return
	}

	var msg models.ChatMessage
	if err := config.DB.First(&msg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	if msg.SenderID != u.ID && !u.IsSuperuser {
		c.JSON(http.StatusForbidden, gin.H{"message": "You cannot delete this message"})
		return
	}

	if err := config.DB.Model(&msg).Update("is_deleted", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
