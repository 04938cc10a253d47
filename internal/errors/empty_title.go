package errors

var ErrEmptyTitle = &Exception{
	Kind:    KindValidation,
	Message: "title must not be empty",
}
