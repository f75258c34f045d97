package config

import "errors"

// Answers file errors.
var (
	errUnknownQuestion = errors.New("unknown question id")
	errInvalidOption   = errors.New("answer is not one of the question's options")
	errWrongShape      = errors.New("answer has the wrong shape for its question kind")
	errFieldListInEnv  = errors.New("field lists cannot be set from dotenv files")
)
