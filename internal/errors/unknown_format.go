package errors

var ErrUnknownFormat = &Exception{
	Kind:    KindValidation,
	Message: "unknown export format",
}
