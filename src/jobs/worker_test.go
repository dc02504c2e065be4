package jobs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"course-catalog/src/services/uploads"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRemover struct {
	mock.Mock
}

func (m *mockRemover) Remove(name string) error {
	return m.Called(name).Error(0)
}

func TestHandleRemoveCourseImageTask(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cover.png-1.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	task, err := NewRemoveCourseImageTask("cover.png-1.png")
	require.NoError(t, err)
	assert.Equal(t, TypeRemoveCourseImage, task.Type())

	handler := HandleRemoveCourseImageTask(uploads.DiskStorage{Dir: dir})
	require.NoError(t, handler(context.Background(), task))

	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHandleRemoveCourseImageTaskBadPayload(t *testing.T) {
	remover := new(mockRemover)
	handler := HandleRemoveCourseImageTask(remover)

	err := handler(context.Background(), asynq.NewTask(TypeRemoveCourseImage, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	remover.AssertNotCalled(t, "Remove", mock.Anything)
}

func TestHandleRemoveCourseImageTaskPropagatesError(t *testing.T) {
	remover := new(mockRemover)
	remover.On("Remove", "a.png").Return(errors.New("disk gone"))

	task, err := NewRemoveCourseImageTask("a.png")
	require.NoError(t, err)

	err = HandleRemoveCourseImageTask(remover)(context.Background(), task)
	assert.EqualError(t, err, "disk gone")
	remover.AssertExpectations(t)
}

func TestDispatcherRemovesInlineWithoutQueue(t *testing.T) {
	remover := new(mockRemover)
	remover.On("Remove", "old.png").Return(nil)

	d := NewDispatcher(nil, remover)
	d.RemoveImage("old.png")
	d.RemoveImage("")

	remover.AssertExpectations(t)
	remover.AssertNumberOfCalls(t, "Remove", 1)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	var taskID string
	for _, opt := range opts {
		if opt.Type() == asynq.TaskIDOpt {
			taskID, _ = opt.Value().(string)
		}
	}
	args := m.Called(task.Type(), string(task.Payload()), taskID)
	return nil, args.Error(0)
}

func TestDispatcherEnqueuesWithTaskID(t *testing.T) {
	remover := new(mockRemover)
	queue := new(mockEnqueuer)
	queue.On("Enqueue", TypeRemoveCourseImage, `{"file_name":"old.png-1.png"}`, "remove-image-old.png-1.png").
		Return(nil).Once()

	d := &Dispatcher{queue: queue, files: remover}
	d.RemoveImage("old.png-1.png")
	d.RemoveImage("")

	queue.AssertExpectations(t)
	remover.AssertNotCalled(t, "Remove", mock.Anything)
}

func TestDispatcherEnqueueErrors(t *testing.T) {
	queue := new(mockEnqueuer)
	queue.On("Enqueue", TypeRemoveCourseImage, mock.Anything, "remove-image-a.png").
		Return(asynq.ErrTaskIDConflict).Once()
	queue.On("Enqueue", TypeRemoveCourseImage, mock.Anything, "remove-image-b.png").
		Return(errors.New("redis down")).Once()

	d := &Dispatcher{queue: queue, files: new(mockRemover)}
	assert.NoError(t, d.enqueue("a.png"))
	assert.EqualError(t, d.enqueue("b.png"), "redis down")
	queue.AssertExpectations(t)
}

func TestNewDispatcherWithoutClientRunsInline(t *testing.T) {
	d := NewDispatcher(nil, new(mockRemover))
	assert.Nil(t, d.queue)
}
