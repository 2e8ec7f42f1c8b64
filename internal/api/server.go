// Package api handles HTTP and WebSocket API endpoints
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/quaydome/receipt-engine/internal/assembler"
	"github.com/quaydome/receipt-engine/internal/identifier"
	"github.com/quaydome/receipt-engine/internal/ledger"
	"github.com/quaydome/receipt-engine/internal/renderer"
	"github.com/quaydome/receipt-engine/internal/renderqueue"
	"github.com/quaydome/receipt-engine/pkg/receipt"
)

// Server is the API server
type Server struct {
	router   *gin.Engine
	renderer *renderer.Renderer
	queue    *renderqueue.Queue
	ledger   *ledger.Ledger
	gen      identifier.Generator
	upgrader websocket.Upgrader
}

// NewServer creates a new API server
func NewServer(rend *renderer.Renderer, queue *renderqueue.Queue, led *ledger.Ledger, gen identifier.Generator) *Server {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// CORS middleware
	router.Use(corsMiddleware())

	server := &Server{
		router:   router,
		renderer: rend,
		queue:    queue,
		ledger:   led,
		gen:      gen,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	// HTTP API
	s.router.POST("/receipts/booking", s.handleBookingReceipt)
	s.router.POST("/receipts/event-registration", s.handleEventReceipt)
	s.router.POST("/receipts/membership", s.handleMembershipReceipt)
	s.router.POST("/receipts/render", s.handleRender)
	s.router.GET("/jobs", s.handleGetJobs)
	s.router.GET("/job/:id", s.handleGetJob)
	s.router.GET("/job/:id/document", s.handleGetJobDocument)

	// WebSocket
	s.router.GET("/ws", s.handleWebSocket)

	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// handleBookingReceipt assembles and renders a receipt for a facility booking
func (s *Server) handleBookingReceipt(c *gin.Context) {
	var req struct {
		Booking   *assembler.Booking  `json:"booking" binding:"required"`
		Facility  *assembler.Facility `json:"facility"`
		Customer  assembler.Customer  `json:"customer"`
		PayerName string              `json:"payer_name"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "booking is required"})
		return
	}

	// Reuse a previously issued number for this booking if the record
	// itself does not carry one.
	if req.Booking.ReceiptNumber == nil {
		if number, ok := s.ledger.Lookup(receipt.TransactionBooking, req.Booking.ID); ok {
			req.Booking.ReceiptNumber = &number
		}
	}

	data := assembler.AssembleBooking(req.Booking, req.Facility, req.Customer, req.PayerName, s.gen)

	s.recordIssue(data, req.Booking.ID)
	s.deliver(c, data)
}

// handleEventReceipt assembles and renders a receipt for an event registration
func (s *Server) handleEventReceipt(c *gin.Context) {
	var req struct {
		Registration *assembler.EventRegistration `json:"registration" binding:"required"`
		Event        *assembler.Event             `json:"event"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "registration is required"})
		return
	}

	data := assembler.AssembleEventRegistration(req.Registration, req.Event, s.gen)

	s.recordIssue(data, req.Registration.ID)
	s.deliver(c, data)
}

// handleMembershipReceipt assembles and renders a receipt for a membership application
func (s *Server) handleMembershipReceipt(c *gin.Context) {
	var req struct {
		Application *assembler.MembershipApplication `json:"application" binding:"required"`
		Tier        *assembler.PricingTier           `json:"tier"`
		Customer    assembler.Customer               `json:"customer"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "application is required"})
		return
	}

	data := assembler.AssembleMembership(req.Application, req.Tier, req.Customer, s.gen)

	s.recordIssue(data, req.Application.ID)
	s.deliver(c, data)
}

// handleRender renders pre-assembled receipt data as-is
func (s *Server) handleRender(c *gin.Context) {
	var data receipt.ReceiptData

	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	s.deliver(c, &data)
}

// recordIssue notes the issued receipt number in the ledger. A ledger write
// failure does not block delivery.
func (s *Server) recordIssue(data *receipt.ReceiptData, txID string) {
	if s.ledger == nil {
		return
	}
	_ = s.ledger.Record(data.TransactionType, txID, data.ReceiptNumber)
}

// deliver validates assembled data, then either enqueues an async render job
// or renders the document inline and returns its bytes.
func (s *Server) deliver(c *gin.Context, data *receipt.ReceiptData) {
	if err := receipt.Validate(data); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("invalid receipt: %v", err)})
		return
	}

	if c.Query("async") == "1" {
		jobID := s.queue.Enqueue(data)

		c.JSON(202, gin.H{
			"success":        true,
			"job_id":         jobID,
			"receipt_number": data.ReceiptNumber,
		})
		return
	}

	document, err := s.renderer.Render(data)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("failed to render receipt: %v", err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", data.ReceiptNumber+".png"))
	c.Header("X-Receipt-Number", data.ReceiptNumber)
	c.Data(200, "image/png", document)
}

// handleGetJobs returns all render jobs
func (s *Server) handleGetJobs(c *gin.Context) {
	jobs := s.queue.GetAllJobs()

	// Convert to JSON-safe format
	jobsData := make([]map[string]interface{}, len(jobs))
	for i, job := range jobs {
		jobsData[i] = jobSummary(job)
	}

	c.JSON(200, gin.H{"jobs": jobsData})
}

// handleGetJob returns a specific render job
func (s *Server) handleGetJob(c *gin.Context) {
	jobID := c.Param("id")

	job := s.queue.GetJob(jobID)
	if job == nil {
		c.JSON(404, gin.H{"error": "job not found"})
		return
	}

	c.JSON(200, jobSummary(job))
}

// handleGetJobDocument returns the rendered document for a completed job
func (s *Server) handleGetJobDocument(c *gin.Context) {
	jobID := c.Param("id")

	job := s.queue.GetJob(jobID)
	if job == nil {
		c.JSON(404, gin.H{"error": "job not found"})
		return
	}

	if job.Status != renderqueue.StatusCompleted {
		c.JSON(409, gin.H{"error": fmt.Sprintf("job is %s", job.Status)})
		return
	}

	number := job.Data.ReceiptNumber
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", number+".png"))
	c.Header("X-Receipt-Number", number)
	c.Data(200, "image/png", job.Result)
}

func jobSummary(job *renderqueue.Job) map[string]interface{} {
	data := map[string]interface{}{
		"id":               job.ID,
		"receipt_number":   job.Data.ReceiptNumber,
		"transaction_type": job.Data.TransactionType,
		"status":           job.Status,
		"created_at":       job.CreatedAt,
	}
	if !job.CompletedAt.IsZero() {
		data["completed_at"] = job.CompletedAt
	}
	if job.Err != nil {
		data["error"] = job.Err.Error()
	}
	return data
}

// Run starts the API server
func (s *Server) Run(addr string) error {
	// Server started - log will be handled by caller
	return s.router.Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
