package otel

import (
	"context"
	"testing"
)

func TestResourceCarriesAgentAttributes(t *testing.T) {
	res, err := newResource(context.Background(), Config{
		ServiceName: "acton",
		Actor:       "demo",
		SandboxRoot: "/tmp/sandbox",
	})
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]string{}
	for _, kv := range res.Attributes() {
		got[string(kv.Key)] = kv.Value.Emit()
	}
	if got["acton.actor"] != "demo" {
		t.Fatalf("acton.actor=%q want demo", got["acton.actor"])
	}
	if got["acton.sandbox_root"] != "/tmp/sandbox" {
		t.Fatalf("acton.sandbox_root=%q", got["acton.sandbox_root"])
	}
	if got["service.name"] != "acton" {
		t.Fatalf("service.name=%q", got["service.name"])
	}
}

func TestInitShutdown(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{ServiceName: "acton-test"})
	if err != nil {
		t.Fatal(err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
}
