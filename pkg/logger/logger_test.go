package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggerErrorIncludesContextFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := context.Background()
	ctx = log.WithRequestID(ctx, "req-123")

	log.Error(ctx, "boom", errors.New("boom"))

	if !bytes.Contains(buf.Bytes(), []byte("\"request_id\"")) {
		t.Fatalf("expected request_id to be preserved; entry=%s", buf.String())
	}
}

func TestLoggerStoreKeyField(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})

	ctx := log.WithStoreKey(context.Background(), "aquastore_cloud_db_v2")
	log.Warn(ctx, "corrupt document")

	if !bytes.Contains(buf.Bytes(), []byte("aquastore_cloud_db_v2")) {
		t.Fatalf("expected store_key to be preserved; entry=%s", buf.String())
	}
}

func TestLoggerDebugHonorsLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(Options{ServiceName: "test", Level: ParseLevel("info"), Output: buf})

	log.Debug(log.WithUserID(context.Background(), "1"), "hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug entry must be dropped at info level; entry=%s", buf.String())
	}

	log = New(Options{ServiceName: "test", Level: ParseLevel("debug"), Output: buf})
	log.Debug(log.WithUserID(context.Background(), "1"), "visible")
	if !bytes.Contains(buf.Bytes(), []byte("\"user_id\"")) {
		t.Fatalf("expected user_id on debug entry; entry=%s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected default info level, got %v", lvl)
	}
	if lvl := ParseLevel("invalid"); lvl != zerolog.InfoLevel {
		t.Fatalf("invalid level should fallback to info, got %v", lvl)
	}
	if lvl := ParseLevel("warn"); lvl != zerolog.WarnLevel {
		t.Fatalf("expected warn level, got %v", lvl)
	}
}
