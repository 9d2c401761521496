package history

import "testing"

func TestBufferAppendJoins(t *testing.T) {
	b := NewBuffer(10)
	b.Append([]string{"A", "B", "LB"})
	if got := b.Newest(); got != "A+B+LB" {
		t.Fatalf("Newest() = %q, want %q", got, "A+B+LB")
	}
	b.Append(nil)
	if b.Len() != 1 {
		t.Fatalf("Len() after empty append = %d, want 1", b.Len())
	}
}

func TestBufferBound(t *testing.T) {
	for _, length := range []int{0, 1, 2, 3, 10, 21, 40} {
		b := NewBuffer(length)
		max := length/2 + 1
		if b.Max() != max {
			t.Fatalf("Max() for length %d = %d, want %d", length, b.Max(), max)
		}
		for i := 0; i < 3*max+2; i++ {
			b.Append([]string{string(rune('a' + i%26))})
			if b.Len() > max {
				t.Fatalf("length %d: Len() = %d after append %d, want <= %d", length, b.Len(), i, max)
			}
		}
	}
}

func TestBufferEvictsOldest(t *testing.T) {
	b := NewBuffer(2) // bound 2
	b.Append([]string{"1"})
	b.Append([]string{"2"})
	b.Append([]string{"3"})

	want := []string{"2", "3"}
	if b.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(want))
	}
	for i, w := range want {
		if b.At(i) != w {
			t.Fatalf("At(%d) = %q, want %q", i, b.At(i), w)
		}
	}
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(10)
	b.Append([]string{"A"})
	b.Reset()
	if b.Len() != 0 || b.Newest() != "" {
		t.Fatalf("after Reset Len() = %d, Newest() = %q", b.Len(), b.Newest())
	}
}
