package instancebaseline_test

import (
	"testing"

	"github.com/blukai/hasted/internal/instancebaseline"
	"github.com/blukai/hasted/internal/stringtables"
)

func TestUpdateGetData(t *testing.T) {
	ib := instancebaseline.New()
	if err := ib.Update("40", []byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	blob, ok := ib.GetData(40)
	if !ok {
		t.Fatal("expected a hit")
	}
	if len(blob) != 3 {
		t.Fatalf("got len %d, want 3", len(blob))
	}
}

func TestGetData_Miss(t *testing.T) {
	ib := instancebaseline.New()
	if _, ok := ib.GetData(5); ok {
		t.Fatal("expected a miss")
	}
	if _, err := ib.MustGetData(5); err != instancebaseline.ErrNoData {
		t.Fatalf("got %v, want ErrNoData", err)
	}
}

func TestUpdate_InvalidClassID(t *testing.T) {
	ib := instancebaseline.New()
	err := ib.Update("not-a-number", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	var target *instancebaseline.ErrInvalidClassID
	if !asErrInvalidClassID(err, &target) {
		t.Fatalf("got %v, want *ErrInvalidClassID", err)
	}
}

func asErrInvalidClassID(err error, target **instancebaseline.ErrInvalidClassID) bool {
	e, ok := err.(*instancebaseline.ErrInvalidClassID)
	if ok {
		*target = e
	}
	return ok
}

func TestUpdateFromTable(t *testing.T) {
	tbl := stringtables.New("instancebaseline")
	tbl.Update("1", stringtables.Entry{Blob: []byte{9}})
	tbl.Update("2", stringtables.Entry{Blob: []byte{8, 7}})

	ib := instancebaseline.New()
	if err := ib.UpdateFromTable(tbl); err != nil {
		t.Fatal(err)
	}
	if blob, ok := ib.GetData(2); !ok || len(blob) != 2 {
		t.Fatalf("got %v %v", blob, ok)
	}
}
