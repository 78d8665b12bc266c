package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pricofy/azure-translator/internal/handler"
	"github.com/pricofy/azure-translator/internal/router"
	"github.com/pricofy/azure-translator/internal/tool"
	"go.uber.org/zap"
)

type prefixTranslator struct{}

func (prefixTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return targetLang + ":" + text, nil
}

func TestRequestHandler(t *testing.T) {
	r, err := router.New(tool.NewTextTool(prefixTranslator{}, "fr", nil))
	if err != nil {
		t.Fatalf("router.New() unexpected error: %v", err)
	}
	inv := &fakeInvoker{}
	handle := newRequestHandler(handler.New(r, zap.NewNop()), newTestWarmer(inv, nil))

	t.Run("warmup", func(t *testing.T) {
		out, err := handle(context.Background(), json.RawMessage(`{"source":"warmup"}`))
		if err != nil {
			t.Fatalf("handle() unexpected error: %v", err)
		}
		if resp, ok := out.(*WarmupResponse); !ok || resp.Status != "warm" {
			t.Errorf("handle() = %#v, want a warmup response", out)
		}
	})

	t.Run("tool request", func(t *testing.T) {
		out, err := handle(context.Background(), json.RawMessage(`{"tool":"azure_translator_tool","input":"Hello"}`))
		if err != nil {
			t.Fatalf("handle() unexpected error: %v", err)
		}
		resp, ok := out.(*handler.Response)
		if !ok {
			t.Fatalf("handle() = %T, want *handler.Response", out)
		}
		if resp.Output != "fr:Hello" {
			t.Errorf("Output = %q, want fr:Hello", resp.Output)
		}
	})

	t.Run("malformed event", func(t *testing.T) {
		if _, err := handle(context.Background(), json.RawMessage(`{"tool":`)); err == nil {
			t.Errorf("handle() should fail on malformed JSON")
		}
	})
}
