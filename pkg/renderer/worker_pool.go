package renderer

import (
	"context"
	"runtime"
	"sync"
)

// ScanlineTask represents one image row to render
type ScanlineTask struct {
	Row    int          // Raster row, 0 at the top
	Pixels []PixelStats // Row accumulators to write to, owned by this task
}

// ScanlineResult contains the result from rendering a scanline
type ScanlineResult struct {
	Row     int
	Stats   RenderStats
	Skipped bool // Row was not rendered because the render was cancelled
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(rt *Raytracer, numWorkers, numTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, numTasks),   // Buffer for every row
		resultQueue: make(chan ScanlineResult, numTasks), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   rt,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers. Once ctx is done, workers skip the rows left in the queue.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop closes the task queue and waits for workers to drain it
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (ScanlineResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if ctx.Err() != nil {
			w.resultQueue <- ScanlineResult{Row: task.Row, Skipped: true}
			continue
		}
		// Each row has its own slice and sampler, so workers share nothing mutable
		stats := w.raytracer.RenderScanline(task.Row, task.Pixels)
		w.resultQueue <- ScanlineResult{Row: task.Row, Stats: stats}
	}
}
