package kafka

import (
	"testing"

	"github.com/segmentio/kafka-go"
)

func TestEncode(t *testing.T) {
	b, err := encode(map[string]int{"a": 1})
	if err != nil || string(b) != `{"a":1}` {
		t.Fatalf("json encode: %s %v", b, err)
	}
	b, _ = encode("raw")
	if string(b) != "raw" {
		t.Fatalf("string passthrough: %s", b)
	}
	b, _ = encode([]byte("bytes"))
	if string(b) != "bytes" {
		t.Fatalf("bytes passthrough: %s", b)
	}
	if _, err := encode(func() {}); err == nil {
		t.Fatalf("expected marshal error")
	}
}

func TestParseCompression(t *testing.T) {
	if parseCompression("none") != 0 {
		t.Fatalf("none should disable compression")
	}
	if parseCompression("zstd") != kafka.Zstd || parseCompression("") != kafka.Gzip {
		t.Fatalf("unexpected codec mapping")
	}
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	if _, err := NewProducer(); err == nil {
		t.Fatalf("expected error without brokers")
	}
	p, err := NewProducer(WithBrokers([]string{"localhost:9092"}), WithCompression("none"))
	if err != nil {
		t.Fatalf("new producer: %v", err)
	}
	_ = p.Close()
}
