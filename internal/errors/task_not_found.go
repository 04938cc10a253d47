package errors

import "fmt"

var ErrTaskNotFound = &Exception{
	Kind:    KindNotFound,
	Message: "task not found",
}

func TaskNotFound(id int64) error {
	return &Exception{
		Kind:    KindNotFound,
		Message: "task not found",
		Err:     fmt.Errorf("id %d", id),
	}
}
