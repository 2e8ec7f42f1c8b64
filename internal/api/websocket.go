package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/quaydome/receipt-engine/internal/renderqueue"
	"github.com/quaydome/receipt-engine/pkg/receipt"
)

// WebSocket message types
const (
	EventRender       = "render"
	EventJobCompleted = "job_completed"
	EventJobFailed    = "job_failed"
	EventResponse     = "response"
	EventError        = "error"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

// WSClient represents a connected WebSocket client
type WSClient struct {
	conn   *websocket.Conn
	send   chan WSMessage
	server *Server
	mu     sync.Mutex
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		fmt.Printf("WebSocket upgrade failed: %v\n", err)
		return
	}

	client := &WSClient{
		conn:   conn,
		send:   make(chan WSMessage, 256),
		server: s,
	}

	// Start goroutines
	go client.readPump()
	go client.writePump()
}

func (c *WSClient) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		c.mu.Lock()
		err := c.conn.WriteJSON(msg)
		c.mu.Unlock()

		if err != nil {
			fmt.Printf("WebSocket write error: %v\n", err)
			return
		}
	}
}

func (c *WSClient) handleMessage(msg *WSMessage) {
	switch msg.Event {
	case EventRender:
		c.handleRenderEvent(msg.Data)
	default:
		c.sendError(fmt.Sprintf("unknown event: %s", msg.Event))
	}
}

// handleRenderEvent enqueues a render job for receipt data sent over the socket
func (c *WSClient) handleRenderEvent(data map[string]interface{}) {
	raw, ok := data["receipt"]
	if !ok {
		c.sendError("receipt is required")
		return
	}

	receiptBytes, _ := json.Marshal(raw)
	var receiptData receipt.ReceiptData
	if err := json.Unmarshal(receiptBytes, &receiptData); err != nil {
		c.sendError(fmt.Sprintf("invalid receipt: %v", err))
		return
	}

	if err := receipt.Validate(&receiptData); err != nil {
		c.sendError(fmt.Sprintf("receipt validation failed: %v", err))
		return
	}

	jobID := c.server.queue.Enqueue(&receiptData)

	c.sendResponse(map[string]interface{}{
		"success":        true,
		"job_id":         jobID,
		"receipt_number": receiptData.ReceiptNumber,
	})
}

func (c *WSClient) sendResponse(data map[string]interface{}) {
	c.send <- WSMessage{
		Event: EventResponse,
		Data:  data,
	}
}

// Client tracking for broadcasts
var (
	clients   = make(map[*WSClient]bool)
	clientsMu sync.RWMutex
)

func addClient(client *WSClient) {
	clientsMu.Lock()
	clients[client] = true
	clientsMu.Unlock()
}

func removeClient(client *WSClient) {
	clientsMu.Lock()
	delete(clients, client)
	clientsMu.Unlock()
}

func (c *WSClient) readPump() {
	defer func() {
		removeClient(c)
		c.conn.Close()
	}()

	addClient(c)

	for {
		var msg WSMessage
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				fmt.Printf("WebSocket error: %v\n", err)
			}
			break
		}

		c.handleMessage(&msg)
	}
}

func (c *WSClient) sendError(message string) {
	c.send <- WSMessage{
		Event: EventError,
		Data: map[string]interface{}{
			"error": message,
		},
	}
}

// BroadcastJobDone broadcasts a finished render job to all connected clients
func (s *Server) BroadcastJobDone(job *renderqueue.Job) {
	clientsMu.RLock()
	defer clientsMu.RUnlock()

	event := EventJobCompleted
	data := map[string]interface{}{
		"id":             job.ID,
		"receipt_number": job.Data.ReceiptNumber,
		"status":         job.Status,
	}
	if job.Err != nil {
		event = EventJobFailed
		data["error"] = job.Err.Error()
	}

	message := WSMessage{
		Event: event,
		Data:  data,
	}

	for client := range clients {
		select {
		case client.send <- message:
		default:
			// Client send buffer full, skip
		}
	}
}
