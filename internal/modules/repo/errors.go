package repo

import "errors"

// ErrNotFound is returned when a lookup scoped to a parent finds nothing.
// It wraps gorm.ErrRecordNotFound semantics for callers outside this package.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when the row being created already exists.
var ErrDuplicate = errors.New("record already exists")
