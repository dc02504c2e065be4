package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeRemoveCourseImage = "course:image:remove"

type ImagePayload struct {
	FileName string `json:"file_name"`
}

func NewRemoveCourseImageTask(fileName string) (*asynq.Task, error) {
	payload, err := json.Marshal(ImagePayload{FileName: fileName})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRemoveCourseImage, payload, asynq.MaxRetry(3)), nil
}
