package pipeline

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSerialize_Deterministic(t *testing.T) {
	t.Parallel()

	blocks, err := Scan("Title\n=====\n\n<div><span>x</span></div>\n\nsome  text\nmore")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree, err := Build(blocks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var first, second bytes.Buffer
	if err := Serialize(tree, &first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Serialize(tree, &second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<h1>Title</h1>\n<div><span>x</span></div>\n<p>some text more</p>\n"
	if first.String() != want {
		t.Errorf("output = %q, want %q", first.String(), want)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("serializing twice produced different bytes")
	}
}

func TestSerialize_WriteError(t *testing.T) {
	t.Parallel()

	tree, err := Build([]Block{{Kind: KindParagraph, Lines: []string{"x"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = Serialize(tree, failingWriter{})
	if !errors.Is(err, ErrWrite) {
		t.Errorf("error = %v, want ErrWrite", err)
	}

	// The tree survives a failed write.
	var buf bytes.Buffer
	if err := Serialize(tree, &buf); err != nil {
		t.Fatalf("retry unexpected error: %v", err)
	}
	if got := buf.String(); got != "<p>x</p>\n" {
		t.Errorf("retry output = %q", got)
	}
}

func TestSerialize_QuotesEscaped(t *testing.T) {
	t.Parallel()

	tree, err := Build([]Block{{Kind: KindParagraph, Lines: []string{`say "hi" & 'bye'`}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := Serialize(tree, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<p>say &#34;hi&#34; &amp; &#39;bye&#39;</p>\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
