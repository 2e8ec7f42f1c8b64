// Package tui is the operations dashboard shown alongside the API server
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/quaydome/receipt-engine/internal/ledger"
	"github.com/quaydome/receipt-engine/internal/renderqueue"
)

// Dashboard is the server-side TUI
type Dashboard struct {
	App    *tview.Application
	queue  *renderqueue.Queue
	ledger *ledger.Ledger
	port   string

	// Main layout
	flex *tview.Flex

	// Panels
	receiptsList *tview.List
	queueTable   *tview.Table
	statusBox    *tview.TextView
	logsArea     *tview.TextView
	commandInput *tview.InputField

	// State
	logs      []string
	maxLogs   int
	startTime time.Time
}

// NewDashboard creates the server dashboard
func NewDashboard(queue *renderqueue.Queue, led *ledger.Ledger, port string) *Dashboard {
	app := tview.NewApplication()

	d := &Dashboard{
		App:       app,
		queue:     queue,
		ledger:    led,
		port:      port,
		logs:      make([]string, 0),
		maxLogs:   100,
		startTime: time.Now(),
	}

	d.setupUI()
	return d
}

func (d *Dashboard) setupUI() {
	// Create panels
	d.receiptsList = tview.NewList()
	d.receiptsList.SetBorder(true)
	d.receiptsList.SetTitle("Issued Receipts")

	d.queueTable = tview.NewTable()
	d.queueTable.SetBorder(true)
	d.queueTable.SetTitle("Render Queue")

	d.statusBox = tview.NewTextView()
	d.statusBox.SetBorder(true)
	d.statusBox.SetTitle("Server Status")
	d.statusBox.SetDynamicColors(true)

	d.logsArea = tview.NewTextView()
	d.logsArea.SetBorder(true)
	d.logsArea.SetTitle("Server Logs")
	d.logsArea.SetDynamicColors(true)
	d.logsArea.SetScrollable(true)
	d.logsArea.SetChangedFunc(func() {
		d.App.Draw()
	})

	d.commandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0).
		SetPlaceholder("Type a command (e.g., 'help')").
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				d.executeCommand(d.commandInput.GetText())
				d.commandInput.SetText("")
			}
		})

	// Top row: Receipts, Queue, Status
	topRow := tview.NewFlex().
		AddItem(d.receiptsList, 0, 1, false).
		AddItem(d.queueTable, 0, 1, false).
		AddItem(d.statusBox, 0, 1, false)

	// Bottom: Logs and command
	bottom := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(d.logsArea, 0, 3, false).
		AddItem(d.commandInput, 1, 0, true)

	// Main layout
	d.flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, false).
		AddItem(bottom, 0, 1, false)

	// Set up key bindings
	d.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if d.commandInput.HasFocus() {
			if event.Key() == tcell.KeyEsc {
				d.App.SetFocus(d.receiptsList)
				return nil
			}
			return event
		}

		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEsc:
			d.App.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case ':':
				d.App.SetFocus(d.commandInput)
				return nil
			case 'q':
				d.App.Stop()
				return nil
			}
		}
		return event
	})

	d.App.SetRoot(d.flex, true)
}

// Run starts the TUI
func (d *Dashboard) Run() error {
	// Initial refresh
	d.refreshAll()

	// Start refresh ticker
	go d.refreshTicker()

	d.AddLog("Receipt engine starting...", "info")

	return d.App.Run()
}

func (d *Dashboard) refreshTicker() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		d.App.QueueUpdateDraw(func() {
			d.refreshAll()
		})
	}
}

func (d *Dashboard) refreshAll() {
	d.refreshReceipts()
	d.refreshQueue()
	d.refreshStatus()
}

func (d *Dashboard) refreshReceipts() {
	d.receiptsList.Clear()

	if d.ledger == nil {
		d.receiptsList.AddItem("No ledger configured", "", 0, nil)
		return
	}

	entries := d.ledger.All()
	if len(entries) == 0 {
		d.receiptsList.AddItem("No receipts issued yet", "", 0, nil)
		return
	}

	for _, entry := range entries {
		details := fmt.Sprintf("%s • %s", entry.TransactionType, entry.IssuedAt.Format("02 Jan 15:04"))
		d.receiptsList.AddItem(entry.ReceiptNumber, details, 0, nil)
	}
}

func (d *Dashboard) refreshQueue() {
	d.queueTable.Clear()

	// Header
	d.queueTable.SetCell(0, 0, tview.NewTableCell("Status").SetAlign(tview.AlignCenter).SetSelectable(false))
	d.queueTable.SetCell(0, 1, tview.NewTableCell("Receipt").SetAlign(tview.AlignCenter).SetSelectable(false))
	d.queueTable.SetCell(0, 2, tview.NewTableCell("Time").SetAlign(tview.AlignCenter).SetSelectable(false))

	jobs := d.queue.GetAllJobs()

	queued := 0
	rendering := 0
	completed := 0
	failed := 0

	for i, job := range jobs {
		row := i + 1

		d.queueTable.SetCell(row, 0, tview.NewTableCell(statusIcon(job.Status)+" "+job.Status))
		d.queueTable.SetCell(row, 1, tview.NewTableCell(job.Data.ReceiptNumber))

		timeStr := time.Since(job.CreatedAt).Truncate(time.Second).String()
		d.queueTable.SetCell(row, 2, tview.NewTableCell(timeStr))

		switch job.Status {
		case renderqueue.StatusQueued:
			queued++
		case renderqueue.StatusRendering:
			rendering++
		case renderqueue.StatusCompleted:
			completed++
		case renderqueue.StatusFailed:
			failed++
		}
	}

	// Add summary row
	if len(jobs) > 0 {
		summaryRow := len(jobs) + 1
		summary := fmt.Sprintf("[%d] Queued [%d] Rendering [%d] Completed [%d] Failed",
			queued, rendering, completed, failed)
		cell := tview.NewTableCell(summary)
		cell.SetSelectable(false)
		d.queueTable.SetCell(summaryRow, 0, cell)
		d.queueTable.SetCell(summaryRow, 1, tview.NewTableCell(""))
		d.queueTable.SetCell(summaryRow, 2, tview.NewTableCell(""))
	}
}

func (d *Dashboard) refreshStatus() {
	uptime := time.Since(d.startTime)
	hours := int(uptime.Hours())
	minutes := int(uptime.Minutes()) % 60

	issued := 0
	if d.ledger != nil {
		issued = len(d.ledger.All())
	}

	status := fmt.Sprintf(`[green]Running[white]

Uptime: %dh %dm
API: :%s
Jobs: %d total
Receipts issued: %d`, hours, minutes, d.port, len(d.queue.GetAllJobs()), issued)

	d.statusBox.SetText(status)
}

func (d *Dashboard) executeCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])

	d.AddLog(fmt.Sprintf("> %s", cmd), "command")

	switch command {
	case "jobs", "j":
		d.AddLog("Refreshing render queue...", "info")
		d.refreshQueue()

	case "receipts", "r":
		d.AddLog("Refreshing issued receipts...", "info")
		d.refreshReceipts()

	case "status", "s":
		d.AddLog("Refreshing status...", "info")
		d.refreshStatus()

	case "purge":
		d.queue.ClearCompleted()
		d.AddLog("Removed completed jobs from the queue", "info")
		d.refreshQueue()

	case "clear":
		d.logs = make([]string, 0)
		d.logsArea.Clear()

	case "refresh":
		d.AddLog("Refreshing all panels...", "info")
		d.refreshAll()

	case "help", "h", "?":
		d.showHelp()

	case "quit", "q":
		d.App.Stop()

	default:
		d.AddLog(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", command), "error")
	}
}

func (d *Dashboard) showHelp() {
	help := []string{
		"Available commands:",
		"  jobs, j              - Refresh render queue",
		"  receipts, r          - Refresh issued receipts",
		"  status, s            - Show server status",
		"  purge                - Remove completed jobs",
		"  clear                - Clear logs",
		"  refresh              - Refresh all panels",
		"  help, h, ?           - Show this help",
		"  quit, q              - Exit application",
	}
	d.AddLog(strings.Join(help, "\n"), "info")
}

// AddLog adds a log entry
func (d *Dashboard) AddLog(message string, level string) {
	var color string

	switch level {
	case "error":
		color = "[red]"
	case "warning":
		color = "[yellow]"
	case "command":
		color = "[cyan]"
	default:
		color = "[white]"
	}

	timeStr := time.Now().Format("15:04:05")
	logEntry := fmt.Sprintf("%s[%s] %s[white]\n", color, timeStr, message)

	d.logs = append(d.logs, logEntry)
	if len(d.logs) > d.maxLogs {
		d.logs = d.logs[len(d.logs)-d.maxLogs:]
	}

	// Update logs area
	d.logsArea.Clear()
	for _, log := range d.logs {
		fmt.Fprint(d.logsArea, log)
	}

	// Auto-scroll to bottom
	d.logsArea.ScrollToEnd()
}

func statusIcon(status string) string {
	switch status {
	case renderqueue.StatusQueued:
		return "⏳"
	case renderqueue.StatusRendering:
		return "🟡"
	case renderqueue.StatusCompleted:
		return "✅"
	case renderqueue.StatusFailed:
		return "❌"
	default:
		return "⚪"
	}
}

// LogWriter creates an io.Writer that writes to the logs panel
func (d *Dashboard) LogWriter() io.Writer {
	return &dashboardLogWriter{app: d}
}

type dashboardLogWriter struct {
	app *Dashboard
}

func (w *dashboardLogWriter) Write(p []byte) (n int, err error) {
	message := strings.TrimSpace(string(p))
	if message != "" {
		w.app.AddLog(message, "info")
	}
	return len(p), nil
}
