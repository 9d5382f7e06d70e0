// Package instancebaseline consumes the "instancebaseline" string table
// spec.md §6 pins down: class ids as decimal strings mapping to an optional
// baseline byte blob. Supplemented in full from
// original_source/crates/muerta/src/instancebaseline.rs, which keeps the
// baseline bytes in a slice indexed by class id rather than a map, grown on
// demand to cover the highest class id seen; ParseInt failures are surfaced as a
// structured error instead of the original's expect().
package instancebaseline

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/blukai/hasted/internal/stringtables"
)

// ErrInvalidClassID wraps a strconv failure on a string-table key that was
// expected to be a decimal class id.
type ErrInvalidClassID struct {
	Key string
	Err error
}

func (e *ErrInvalidClassID) Error() string {
	return "instancebaseline: invalid class id " + strconv.Quote(e.Key) + ": " + e.Err.Error()
}

func (e *ErrInvalidClassID) Unwrap() error { return e.Err }

// InstanceBaseline holds the pristine baseline bytes for every class seen
// so far, indexed by class id.
type InstanceBaseline struct {
	data [][]byte
}

// New returns an empty InstanceBaseline.
func New() *InstanceBaseline {
	return &InstanceBaseline{}
}

func (ib *InstanceBaseline) ensure(classID int32) {
	if int(classID) < len(ib.data) {
		return
	}
	grown := make([][]byte, classID+1)
	copy(grown, ib.data)
	ib.data = grown
}

// Update sets the baseline bytes for the class named by key (a decimal
// string), growing the backing slice as needed.
func (ib *InstanceBaseline) Update(key string, blob []byte) error {
	classID, err := strconv.ParseInt(key, 10, 32)
	if err != nil {
		return &ErrInvalidClassID{Key: key, Err: err}
	}
	ib.ensure(int32(classID))
	ib.data[classID] = blob
	return nil
}

// UpdateFromTable replays every entry of tbl through Update, the shape the
// real string-table callback update takes.
func (ib *InstanceBaseline) UpdateFromTable(tbl *stringtables.Table) error {
	var firstErr error
	tbl.Iter(func(key string, entry stringtables.Entry) bool {
		if err := ib.Update(key, entry.Blob); err != nil && firstErr == nil {
			firstErr = err
		}
		return true
	})
	return firstErr
}

// ErrNoData is returned by MustGetData when a class id has no baseline.
var ErrNoData = errors.New("instancebaseline: no baseline data for class")

// GetData returns the baseline bytes for classID.
func (ib *InstanceBaseline) GetData(classID int32) ([]byte, bool) {
	if classID < 0 || int(classID) >= len(ib.data) {
		return nil, false
	}
	blob := ib.data[classID]
	if blob == nil {
		return nil, false
	}
	return blob, true
}

// MustGetData is GetData for callers that treat a missing baseline as a
// hard decode error.
func (ib *InstanceBaseline) MustGetData(classID int32) ([]byte, error) {
	blob, ok := ib.GetData(classID)
	if !ok {
		return nil, ErrNoData
	}
	return blob, nil
}
