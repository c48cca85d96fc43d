package renderer

import (
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PixelTask asks a worker to estimate one pixel
type PixelTask struct {
	X, Y   int
	TaskID int // Position within the column
}

// PixelResult reports a finished pixel
type PixelResult struct {
	TaskID  int
	Samples int
}

// WorkerPool manages parallel pixel rendering
type WorkerPool struct {
	taskQueue   chan PixelTask
	resultQueue chan PixelResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker traces the samples of one pixel at a time with its own sampler
type Worker struct {
	ID          int
	integrator  integrator.Integrator
	camera      *scene.Camera
	picture     *Picture
	sampler     *core.RandomSampler
	samples     int
	seed        int64
	taskQueue   chan PixelTask
	resultQueue chan PixelResult
}

// NewWorkerPool creates numWorkers workers writing into picture.
// queueSize bounds the number of tasks in flight, normally one column.
func NewWorkerPool(integ integrator.Integrator, camera *scene.Camera, picture *Picture, config scene.RenderConfig, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultThreads()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan PixelTask, queueSize),
		resultQueue: make(chan PixelResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			integrator:  integ,
			camera:      camera,
			picture:     picture,
			sampler:     core.NewSeededSampler(config.Seed),
			samples:     config.SamplesPerPixel,
			seed:        config.Seed,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a pixel task to the worker pool
func (wp *WorkerPool) SubmitTask(task PixelTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed pixel result
func (wp *WorkerPool) GetResult() (PixelResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// The pixel's random stream depends only on its coordinates, so the
		// result is independent of which worker picks the task up
		w.sampler.Reseed(core.PixelSeed(w.seed, task.X, task.Y))

		var sum core.Vec3
		for s := 0; s < w.samples; s++ {
			jitter := w.sampler.Get2D()
			ray := w.camera.Ray(float64(task.X)+jitter.X, float64(task.Y)+jitter.Y)
			sum.AddAssign(w.integrator.Radiance(ray, w.sampler))
		}

		// Pixels are disjoint between tasks, so this write needs no lock
		w.picture.Set(task.X, task.Y, sum.Multiply(1.0/float64(w.samples)))

		w.resultQueue <- PixelResult{TaskID: task.TaskID, Samples: w.samples}
	}
}
