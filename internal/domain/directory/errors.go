package directory

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
)
