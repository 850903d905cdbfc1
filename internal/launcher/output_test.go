package launcher

import "testing"

func assertLines(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOutputBufferSplitsLines(t *testing.T) {
	b := NewOutputBuffer(10)

	if _, err := b.Write([]byte("one\ntwo\nthr")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := b.Write([]byte("ee\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	assertLines(t, b.Tail(0), []string{"one", "two", "three"})
}

func TestOutputBufferNoEmptyLineAfterNewline(t *testing.T) {
	b := NewOutputBuffer(10)
	if _, err := b.Write([]byte("done\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// A newline-terminated write must not leave a spurious empty line.
	assertLines(t, b.Tail(0), []string{"done"})
}

func TestOutputBufferKeepsPartialLine(t *testing.T) {
	b := NewOutputBuffer(10)
	if _, err := b.Write([]byte("no newline yet")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got := b.TailText(0); got != "no newline yet" {
		t.Errorf("TailText = %q", got)
	}
}

func TestOutputBufferBounded(t *testing.T) {
	b := NewOutputBuffer(2)
	if _, err := b.Write([]byte("1\n2\n3\n4\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	assertLines(t, b.Tail(0), []string{"3", "4"})
}

func TestOutputBufferNormalizesCRLF(t *testing.T) {
	b := NewOutputBuffer(10)
	if _, err := b.Write([]byte("win\r\nline\r\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	assertLines(t, b.Tail(0), []string{"win", "line"})
}

func TestOutputBufferTailLimit(t *testing.T) {
	b := NewOutputBuffer(10)
	if _, err := b.Write([]byte("a\nb\nc\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	assertLines(t, b.Tail(2), []string{"b", "c"})
}
