package jobqueue

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/CampusFound/CampusFound/internal/pkg/env"
	"github.com/CampusFound/CampusFound/internal/pkg/metrics/counter"
)

// Manager owns the application-wide job queue and the periodic counter flush.
type Manager struct {
	queue   *Queue
	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

var (
	managerInstance *Manager
	managerOnce     sync.Once
)

// GetManager returns the singleton job queue manager.
func GetManager() *Manager {
	managerOnce.Do(func() {
		workers := 3
		if v, err := strconv.Atoi(env.GetEnv("JOB_WORKERS", "3")); err == nil && v > 0 {
			workers = v
		}
		managerInstance = &Manager{
			queue:  NewQueue(workers),
			stopCh: make(chan struct{}),
		}
	})
	return managerInstance
}

// Start launches the queue workers and the counter flush loop.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return
	}
	m.started = true

	m.queue.Start()

	m.wg.Add(1)
	go m.counterFlushLoop(5 * time.Second)

	log.Info("[JobQueue] Manager started")
}

// Stop shuts down workers and flushes counters one last time.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.started {
		return
	}
	m.started = false

	close(m.stopCh)
	m.wg.Wait()
	m.queue.Stop()

	if err := counter.FlushAll(); err != nil {
		log.Errorf("[JobQueue] Final counter flush failed: %v", err)
	}
	log.Info("[JobQueue] Manager stopped")
}

// GetQueue exposes the underlying queue for enqueueing jobs.
func (m *Manager) GetQueue() *Queue {
	return m.queue
}

// EnqueueMatchScan schedules a similarity scan for a post.
func (m *Manager) EnqueueMatchScan(postID uint) {
	payload := MatchScanJobPayload{PostID: postID}
	if _, err := m.queue.EnqueueJob(JobTypeMatchScan, payload.ToMap()); err != nil {
		log.Errorf("[JobQueue] Failed to enqueue match scan for post %d: %v", postID, err)
	}
}

// EnqueueThumbnail schedules thumbnail generation for an uploaded photo.
func (m *Manager) EnqueueThumbnail(postID uint, filePath string) {
	payload := ThumbnailJobPayload{PostID: postID, FilePath: filePath}
	if _, err := m.queue.EnqueueJob(JobTypeThumbnail, payload.ToMap()); err != nil {
		log.Errorf("[JobQueue] Failed to enqueue thumbnail for post %d: %v", postID, err)
	}
}

// EnqueueS3Backup schedules a backup upload for an uploaded photo.
func (m *Manager) EnqueueS3Backup(postID uint, filePath, fileName string) {
	payload := S3BackupJobPayload{PostID: postID, FilePath: filePath, FileName: fileName}
	if _, err := m.queue.EnqueueJob(JobTypeS3Backup, payload.ToMap()); err != nil {
		log.Errorf("[JobQueue] Failed to enqueue s3 backup for post %d: %v", postID, err)
	}
}

func (m *Manager) counterFlushLoop(interval time.Duration) {
	defer m.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			if err := counter.FlushAll(); err != nil {
				log.Errorf("[JobQueue] Counter flush failed: %v", err)
			}
		}
	}
}
