// Package record holds storage-neutral sentinel errors shared by repositories.
package record

import "errors"

var ErrNotFound = errors.New("record not found")
