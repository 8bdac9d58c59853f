package models

import "errors"

// Repository errors shared between the persistence layer and the services that consume it.
var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateRecord = errors.New("duplicate record")
)
