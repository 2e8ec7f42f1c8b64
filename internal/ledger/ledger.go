// Package ledger persists issued receipt numbers keyed by transaction
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/quaydome/receipt-engine/pkg/receipt"
)

// Entry records one issued receipt number
type Entry struct {
	ReceiptNumber   string    `json:"receipt_number"`
	TransactionType string    `json:"transaction_type"`
	TransactionID   string    `json:"transaction_id"`
	IssuedAt        time.Time `json:"issued_at"`
}

// Ledger is a file-backed map of issued receipt numbers. It makes booking
// re-renders stable: the number assigned on first render is looked up and
// reused on subsequent renders of the same transaction. The ledger records
// numbers, it never rejects duplicates.
type Ledger struct {
	filePath string
	data     map[string]*Entry
	mu       sync.RWMutex
}

// New creates a Ledger backed by the given file path
func New(filePath string) (*Ledger, error) {
	l := &Ledger{
		filePath: filePath,
		data:     make(map[string]*Entry),
	}

	if err := l.load(); err != nil {
		// A missing file is fine - it is created on first save
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load receipt ledger: %w", err)
		}
	}

	return l, nil
}

// Lookup returns the receipt number previously issued for a transaction
func (l *Ledger) Lookup(txType receipt.TransactionType, txID string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, ok := l.data[key(txType, txID)]
	if !ok {
		return "", false
	}
	return entry.ReceiptNumber, true
}

// Record stores an issued receipt number for a transaction. Re-recording
// the same transaction overwrites the previous entry.
func (l *Ledger) Record(txType receipt.TransactionType, txID, number string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.data[key(txType, txID)] = &Entry{
		ReceiptNumber:   number,
		TransactionType: string(txType),
		TransactionID:   txID,
		IssuedAt:        time.Now(),
	}

	if err := l.save(); err != nil {
		return fmt.Errorf("failed to save receipt ledger: %w", err)
	}
	return nil
}

// All returns copies of every ledger entry
func (l *Ledger) All() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]Entry, 0, len(l.data))
	for _, e := range l.data {
		entries = append(entries, *e)
	}
	return entries
}

func (l *Ledger) load() error {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, &l.data)
}

func (l *Ledger) save() error {
	data, err := json.MarshalIndent(l.data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(l.filePath, data, 0644)
}

func key(txType receipt.TransactionType, txID string) string {
	return fmt.Sprintf("%s:%s", txType, txID)
}
