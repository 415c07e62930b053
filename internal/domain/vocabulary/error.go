package vocabulary

import "errors"

var (
	ErrNotFound            = errors.New("vocabulary not found")
	ErrDuplicate           = errors.New("vocabulary already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrNothingToLearn      = errors.New("nothing to learn")
)
