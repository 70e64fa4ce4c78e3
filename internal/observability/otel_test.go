package observability

import (
	"context"
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders(" api-key = abc , broken, =x, tenant=shop ")
	want := map[string]string{"api-key": "abc", "tenant": "shop"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseHeaders: got=%v want=%v", got, want)
	}
	if ParseHeaders("  ") != nil {
		t.Fatalf("ParseHeaders(blank): expected nil")
	}
}

func TestClampRatio(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0.25: 0.25, 3: 1} {
		if got := ClampRatio(in); got != want {
			t.Fatalf("ClampRatio(%v): got=%v want=%v", in, got, want)
		}
	}
}

func TestInitOTelDisabledReturnsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, OtelConfig{})
	if shutdown == nil {
		t.Fatalf("expected shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
