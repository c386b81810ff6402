package yamled

import "errors"

var (
	ErrPathNotFound     = errors.New("path not found")
	ErrEmptyPath        = errors.New("empty path")
	ErrParentNotFound   = errors.New("parent not found")
	ErrSourceUnreadable = errors.New("source unreadable")
	ErrSourceUnwritable = errors.New("source unwritable")
)
