package tui

import (
	"errors"
	"testing"
)

func TestMockEventReader_Script(t *testing.T) {
	errIO := errors.New("io")
	r := NewMockEventReader(KeyEvent{Key: KeyUp}, nil)
	r.AddError(errIO)

	ready, err := r.Poll(0)
	if !ready || err != nil {
		t.Fatalf("Poll() = %v, %v, want ready", ready, err)
	}
	// A ready event stays ready until it is read.
	if ready, _ := r.Poll(0); !ready {
		t.Fatal("second Poll() should still be ready")
	}
	ev, err := r.Read()
	if err != nil || ev != (KeyEvent{Key: KeyUp}) {
		t.Fatalf("Read() = %v, %v, want Up", ev, err)
	}

	if ready, err := r.Poll(0); ready || err != nil {
		t.Fatalf("scripted timeout Poll() = %v, %v", ready, err)
	}
	if _, err := r.Read(); err == nil {
		t.Error("Read() with nothing ready should fail")
	}

	if _, err := r.Poll(0); !errors.Is(err, errIO) {
		t.Fatalf("scripted error Poll() = %v, want %v", err, errIO)
	}

	if ready, err := r.Poll(0); ready || err != nil {
		t.Fatalf("exhausted Poll() = %v, %v", ready, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
	if r.Polls() != 5 {
		t.Errorf("Polls() = %d, want 5", r.Polls())
	}

	r.AddEvents(ResizeEvent{Width: 1, Height: 2})
	if r.Remaining() != 1 {
		t.Errorf("Remaining() after AddEvents = %d, want 1", r.Remaining())
	}

	_ = r.Close()
	if _, err := r.Poll(0); !errors.Is(err, ErrReaderClosed) {
		t.Errorf("Poll() after Close = %v, want ErrReaderClosed", err)
	}
	if !r.Closed() {
		t.Error("Closed() = false after Close")
	}
}
