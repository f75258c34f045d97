package wizard

import "errors"

// Schema validation errors.
var (
	errDuplicateQuestion = errors.New("duplicate question id")
	errMissingOptions    = errors.New("choice question has no options")
	errUnexpectedOptions = errors.New("options are only allowed on choice questions")
	errSelfReference     = errors.New("condition references its own question")
	errUnknownSelector   = errors.New("selector question not found")
	errEmptyMatchField   = errors.New("condition match has no field")
	errUnknownKind       = errors.New("unknown question kind")
)
