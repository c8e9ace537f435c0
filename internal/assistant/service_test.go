package assistant

import (
	"context"
	"errors"
	"io"
	"testing"

	"google.golang.org/genai"

	"github.com/mvsaqua/aquastore-backend/pkg/logger"
)

type stubGenerator struct {
	reply string
	err   error

	gotModel  string
	gotPrompt string
	gotCfg    *genai.GenerateContentConfig
}

func (g *stubGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	g.gotModel = model
	g.gotCfg = cfg
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		g.gotPrompt = contents[0].Parts[0].Text
	}
	if g.err != nil {
		return nil, g.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: g.reply}}}},
		},
	}, nil
}

func newTestService(t *testing.T, gen *stubGenerator) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Models: gen,
		Model:  "gemini-2.5-flash",
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestAdvicePassesPromptAndPersona(t *testing.T) {
	gen := &stubGenerator{reply: "• Start with a 40L tank."}
	svc := newTestService(t, gen)

	got := svc.Advice(context.Background(), "first tank size?")
	if got != "• Start with a 40L tank." {
		t.Fatalf("unexpected reply %q", got)
	}
	if gen.gotModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected model %q", gen.gotModel)
	}
	if gen.gotPrompt != "first tank size?" {
		t.Fatalf("prompt not forwarded, got %q", gen.gotPrompt)
	}
	if gen.gotCfg == nil || gen.gotCfg.SystemInstruction == nil {
		t.Fatalf("system instruction missing")
	}
	if gen.gotCfg.Temperature == nil || *gen.gotCfg.Temperature != temperature {
		t.Fatalf("unexpected temperature %+v", gen.gotCfg.Temperature)
	}
}

func TestAdviceFallsBackOnError(t *testing.T) {
	svc := newTestService(t, &stubGenerator{err: errors.New("quota exhausted")})

	if got := svc.Advice(context.Background(), "hello"); got != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", got)
	}
}

func TestAdviceFallsBackOnEmptyText(t *testing.T) {
	svc := newTestService(t, &stubGenerator{reply: ""})

	if got := svc.Advice(context.Background(), "hello"); got != emptyReply {
		t.Fatalf("expected empty-text reply, got %q", got)
	}
}

func TestNewServiceValidatesParams(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	if _, err := NewService(ServiceParams{Model: "m", Logger: logg}); err == nil {
		t.Fatalf("expected error for missing model client")
	}
	if _, err := NewService(ServiceParams{Models: &stubGenerator{}, Logger: logg}); err == nil {
		t.Fatalf("expected error for missing model name")
	}
	if _, err := NewService(ServiceParams{Models: &stubGenerator{}, Model: "m"}); err == nil {
		t.Fatalf("expected error for missing logger")
	}
}
