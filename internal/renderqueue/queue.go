// Package renderqueue runs asynchronous receipt render jobs
package renderqueue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quaydome/receipt-engine/pkg/receipt"
)

// Job statuses
const (
	StatusQueued    = "queued"
	StatusRendering = "rendering"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Renderer renders canonical receipt data into a finished document
type Renderer interface {
	Render(data *receipt.ReceiptData) ([]byte, error)
}

// Job is one queued render request. Result holds the finished document
// once the job completes.
type Job struct {
	ID          string
	Data        *receipt.ReceiptData
	Status      string
	Result      []byte
	Err         error
	CreatedAt   time.Time
	CompletedAt time.Time
}

// Queue renders jobs in the background, one at a time. A render failure is
// final: a deterministic render that failed once will fail again, so there
// is no retry (retry policy belongs to the caller).
type Queue struct {
	jobs     []*Job
	mu       sync.Mutex
	renderer Renderer
	onDone   func(*Job)
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// New creates a Queue and starts its worker
func New(renderer Renderer) *Queue {
	ctx, cancel := context.WithCancel(context.Background())

	q := &Queue{
		jobs:     make([]*Job, 0),
		renderer: renderer,
		ctx:      ctx,
		cancel:   cancel,
	}

	q.wg.Add(1)
	go q.worker()

	return q
}

// OnJobDone registers a callback invoked after a job completes or fails.
// It must be set before jobs are enqueued.
func (q *Queue) OnJobDone(fn func(*Job)) {
	q.onDone = fn
}

// Enqueue adds a render job and returns its id
func (q *Queue) Enqueue(data *receipt.ReceiptData) string {
	q.mu.Lock()
	defer q.mu.Unlock()

	job := &Job{
		ID:        uuid.New().String(),
		Data:      data,
		Status:    StatusQueued,
		CreatedAt: time.Now(),
	}

	q.jobs = append(q.jobs, job)

	return job.ID
}

func (q *Queue) worker() {
	defer q.wg.Done()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-q.ctx.Done():
			return
		case <-ticker.C:
			q.processNextJob()
		}
	}
}

func (q *Queue) processNextJob() {
	q.mu.Lock()

	var job *Job
	for _, j := range q.jobs {
		if j.Status == StatusQueued {
			job = j
			job.Status = StatusRendering
			break
		}
	}

	q.mu.Unlock()

	if job == nil {
		return
	}

	result, err := q.renderer.Render(job.Data)

	q.mu.Lock()
	if err != nil {
		job.Status = StatusFailed
		job.Err = err
	} else {
		job.Status = StatusCompleted
		job.Result = result
	}
	job.CompletedAt = time.Now()
	done := q.onDone
	jobCopy := *job
	q.mu.Unlock()

	if done != nil {
		done(&jobCopy)
	}
}

// GetJob returns a copy of a job by id
func (q *Queue) GetJob(jobID string) *Job {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, job := range q.jobs {
		if job.ID == jobID {
			jobCopy := *job
			return &jobCopy
		}
	}

	return nil
}

// GetAllJobs returns copies of all jobs
func (q *Queue) GetAllJobs() []*Job {
	q.mu.Lock()
	defer q.mu.Unlock()

	jobs := make([]*Job, len(q.jobs))
	for i, job := range q.jobs {
		jobCopy := *job
		jobs[i] = &jobCopy
	}

	return jobs
}

// ClearCompleted removes completed jobs from the queue
func (q *Queue) ClearCompleted() {
	q.mu.Lock()
	defer q.mu.Unlock()

	filtered := make([]*Job, 0)
	for _, job := range q.jobs {
		if job.Status != StatusCompleted {
			filtered = append(filtered, job)
		}
	}

	q.jobs = filtered
}

// Stop stops the queue worker
func (q *Queue) Stop() {
	q.cancel()
	q.wg.Wait()
}
