package command

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		kind   Kind
		name   string
		args   int
		target string
	}{
		{":q", KindQuit, "q", 0, "q"},
		{":quit", KindQuit, "quit", 0, "quit"},
		{":w out.txt", KindWrite, "w", 1, "out.txt"},
		{":write  out.txt ", KindWrite, "write", 1, "out.txt"},
		{":w a.txt b.txt", KindWrite, "w", 2, "b.txt"},
		{":w", KindWrite, "w", 0, "w"},
		{":write", KindWrite, "write", 0, "write"},
		{":", KindNone, "", 0, ""},
		{":   ", KindNone, "", 0, ""},
		{":wq", KindUnknown, "wq", 0, "wq"},
		{":Q", KindUnknown, "Q", 0, "Q"},
		{": q", KindQuit, "q", 0, "q"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.line, err)
			}
			if cmd.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", cmd.Kind, tt.kind)
			}
			if cmd.Name != tt.name {
				t.Errorf("name = %q, want %q", cmd.Name, tt.name)
			}
			if len(cmd.Args) != tt.args {
				t.Errorf("args = %q, want %d", cmd.Args, tt.args)
			}
			if got := cmd.Target(); got != tt.target {
				t.Errorf("target = %q, want %q", got, tt.target)
			}
		})
	}
}

func TestParseMissingPrefix(t *testing.T) {
	for _, line := range []string{"", "q", "w out.txt", " :q"} {
		if _, err := Parse(line); !errors.Is(err, ErrMissingPrefix) {
			t.Errorf("Parse(%q) error = %v, want ErrMissingPrefix", line, err)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "none"},
		{KindQuit, "quit"},
		{KindWrite, "write"},
		{KindUnknown, "unknown"},
		{Kind(50), "Kind(50)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind.String() = %q, want %q", got, tt.want)
		}
	}
}
