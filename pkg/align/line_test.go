package align

import "testing"

func TestLinePush(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		words   []string
		wantOK  []bool
		wantLen int
	}{
		{
			name:    "single word no separator",
			width:   10,
			words:   []string{"hello"},
			wantOK:  []bool{true},
			wantLen: 5,
		},
		{
			name:    "separator counted after first word",
			width:   10,
			words:   []string{"ab", "cd"},
			wantOK:  []bool{true, true},
			wantLen: 5, // "ab cd"
		},
		{
			name:    "exact fit accepted",
			width:   5,
			words:   []string{"ab", "cd"},
			wantOK:  []bool{true, true},
			wantLen: 5,
		},
		{
			name:    "overflow rejected and line unmodified",
			width:   5,
			words:   []string{"abc", "cd"},
			wantOK:  []bool{true, false},
			wantLen: 3,
		},
		{
			name:    "word filling the whole width",
			width:   4,
			words:   []string{"abcd", "e"},
			wantOK:  []bool{true, false},
			wantLen: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLine(tt.width)
			for i, w := range tt.words {
				if got := l.push(w); got != tt.wantOK[i] {
					t.Errorf("push(%q) = %v, want %v", w, got, tt.wantOK[i])
				}
			}
			if l.contentLen != tt.wantLen {
				t.Errorf("contentLen = %d, want %d", l.contentLen, tt.wantLen)
			}
		})
	}
}

func TestLineClear(t *testing.T) {
	l := newLine(20)
	l.push("some")
	l.push("words")

	l.clear()

	if !l.empty() {
		t.Error("line not empty after clear")
	}
	if l.contentLen != 0 {
		t.Errorf("contentLen = %d after clear, want 0", l.contentLen)
	}

	// A cleared line accepts words again with no leading separator.
	if !l.push("fresh") {
		t.Fatal("push on cleared line rejected")
	}
	if l.contentLen != 5 {
		t.Errorf("contentLen = %d, want 5", l.contentLen)
	}
}
