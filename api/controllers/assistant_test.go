package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubAssistant struct {
	reply     string
	gotPrompt string
}

func (s *stubAssistant) Advice(_ context.Context, prompt string) string {
	s.gotPrompt = prompt
	return s.reply
}

func TestAdvice(t *testing.T) {
	svc := &stubAssistant{reply: "• Weekly 30% water changes."}
	handler := Advice(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/advice", strings.NewReader(`{"prompt":"water change schedule?"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotPrompt != "water change schedule?" {
		t.Fatalf("prompt not forwarded, got %q", svc.gotPrompt)
	}
	var envelope struct {
		Data adviceResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Reply != svc.reply {
		t.Fatalf("unexpected reply: %q", envelope.Data.Reply)
	}
}

func TestAdviceRequiresPrompt(t *testing.T) {
	handler := Advice(&stubAssistant{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/advice", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdviceUnavailable(t *testing.T) {
	handler := Advice(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/advice", strings.NewReader(`{"prompt":"hi"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}
