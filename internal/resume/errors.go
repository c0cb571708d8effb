package resume

import "errors"

var ErrEmptyInput = errors.New("resume and job description are required")
