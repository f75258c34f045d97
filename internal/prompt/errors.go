package prompt

import "errors"

var errNoSteps = errors.New("no steps are visible")
