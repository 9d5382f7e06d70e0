package fieldvalue_test

import (
	"testing"

	"github.com/blukai/hasted/internal/fieldvalue"
)

func TestRoundTrip(t *testing.T) {
	v := fieldvalue.Uint64(100)
	got, err := v.AsUint64()
	if err != nil {
		t.Fatal(err)
	}
	if got != 100 {
		t.Fatalf("got %d, want 100", got)
	}
}

func TestInvalidConversion(t *testing.T) {
	v := fieldvalue.Uint64(100)
	if _, err := v.AsString(); err == nil {
		t.Fatal("expected conversion error")
	}
	var convErr *fieldvalue.ErrInvalidConversion
	if _, err := v.AsString(); err != nil {
		if e, ok := err.(*fieldvalue.ErrInvalidConversion); ok {
			convErr = e
		}
	}
	if convErr == nil {
		t.Fatal("expected *ErrInvalidConversion")
	}
	if convErr.Have != fieldvalue.KindUint64 || convErr.Want != fieldvalue.KindString {
		t.Fatalf("got %+v", convErr)
	}
}

func TestVector3(t *testing.T) {
	v := fieldvalue.Vector3(1, 2, 3)
	got, err := v.AsVector3()
	if err != nil {
		t.Fatal(err)
	}
	if got != [3]float32{1, 2, 3} {
		t.Fatalf("got %+v", got)
	}
}
