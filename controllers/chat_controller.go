package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/OtaoDavis/Tfit-app/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ChatController struct {
	Hub  *services.RealtimeHub
	Chat *services.ChatService
}

func NewChatController(hub *services.RealtimeHub, chat *services.ChatService) *ChatController {
	return &ChatController{Hub: hub, Chat: chat}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

type inboundChatMsg struct {
	Text string `json:"text"`
}

// GET /community/chat/ws: live connection to the shared room. Incoming
// frames are posted as messages; new messages from anyone are pushed
// back over the same socket.
func (cc *ChatController) Socket(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	senderName := "Member"
	senderAvatar := ""
	if user, err := services.FindUserByEmail(email); err == nil {
		if user.FirstName != "" {
			senderName = user.FirstName
		}
		senderAvatar = user.ProfilePicture
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	cc.Hub.Register(cl)

	// ping to keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Send(websocket.PingMessage, nil); err != nil {
				cc.Hub.Unregister(cl)
				return
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			cc.Hub.Unregister(cl)
			return
		}
		var in inboundChatMsg
		if err := json.Unmarshal(raw, &in); err != nil {
			continue
		}
		// broadcast happens inside Post; errors only affect this sender
		if _, err := cc.Chat.Post(uid, senderName, senderAvatar, in.Text); err != nil {
			payload, _ := json.Marshal(gin.H{"kind": "chat.error", "error": err.Error()})
			_ = cl.Send(websocket.TextMessage, payload)
		}
	}
}

// POST /community/chat: REST fallback for posting a message.
func (cc *ChatController) Post(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	var body inboundChatMsg
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	senderName := "Member"
	senderAvatar := ""
	if user, err := services.FindUserByEmail(email); err == nil {
		if user.FirstName != "" {
			senderName = user.FirstName
		}
		senderAvatar = user.ProfilePicture
	}

	msg, err := cc.Chat.Post(uid, senderName, senderAvatar, body.Text)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GET /community/chat
func (cc *ChatController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	msgs, err := cc.Chat.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}
