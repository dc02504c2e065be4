package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
)

// FileRemover deletes a stored upload by file name.
type FileRemover interface {
	Remove(name string) error
}

// HandleRemoveCourseImageTask deletes the file named in the task payload.
func HandleRemoveCourseImageTask(files FileRemover) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ImagePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}
		if payload.FileName == "" {
			return nil
		}
		if err := files.Remove(payload.FileName); err != nil {
			log.Println("❌ Failed to remove course image:", payload.FileName, err)
			return err
		}
		log.Println("✅ Course image removed:", payload.FileName)
		return nil
	}
}

// RegisterHandlers binds every task type of this package to mux.
func RegisterHandlers(mux *asynq.ServeMux, files FileRemover) {
	mux.HandleFunc(TypeRemoveCourseImage, HandleRemoveCourseImageTask(files))
}

// NewServer builds the asynq worker server for the given Redis address.
func NewServer(redisAddr string) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 2},
	)
}

// Enqueuer is the part of *asynq.Client the dispatcher uses.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher schedules image removal on the queue, or removes the file
// in-process when no queue client is configured.
type Dispatcher struct {
	queue Enqueuer
	files FileRemover
}

func NewDispatcher(client *asynq.Client, files FileRemover) *Dispatcher {
	d := &Dispatcher{files: files}
	if client != nil {
		d.queue = client
	}
	return d
}

func removeImageTaskID(fileName string) string {
	return "remove-image-" + fileName
}

func (d *Dispatcher) RemoveImage(fileName string) {
	if fileName == "" {
		return
	}
	if d.queue == nil {
		if err := d.files.Remove(fileName); err != nil {
			log.Println("⚠️ Failed to remove course image:", fileName, err)
		}
		return
	}

	if err := d.enqueue(fileName); err != nil {
		log.Printf("❌ Failed to enqueue image removal %s: %v", fileName, err)
	}
}

// enqueue schedules one removal per file name; a removal already queued
// for the same file is not an error.
func (d *Dispatcher) enqueue(fileName string) error {
	task, err := NewRemoveCourseImageTask(fileName)
	if err != nil {
		return err
	}
	_, err = d.queue.Enqueue(task, asynq.TaskID(removeImageTaskID(fileName)))
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}
