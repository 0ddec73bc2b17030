package db

import "testing"

func TestPing_NilHandleErrors(t *testing.T) {
	if err := Ping(nil); err == nil {
		t.Fatalf("expected error for nil DB")
	}
	if err := Ping(&DB{}); err == nil {
		t.Fatalf("expected error for DB without a connection")
	}
}
