package store

import "errors"

// ErrReentrantDispatch is returned when Dispatch is called while a dispatch
// is already in progress on the same Store. The outer dispatch is unaffected.
var ErrReentrantDispatch = errors.New("dispatch called while already dispatching")
