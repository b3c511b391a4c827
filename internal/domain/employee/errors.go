package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("employee email already registered")
	ErrUserAlreadyLinked = errors.New("user account already linked to another employee")
)
