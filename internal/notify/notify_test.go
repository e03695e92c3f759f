package notify_test

import (
	"bytes"
	"os"
	"testing"

	fcolor "github.com/fatih/color"
	"github.com/gogpu/anchormark/internal/notify"
)

func TestMain(m *testing.M) {
	fcolor.NoColor = true
	os.Exit(m.Run())
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name  string
		write func(*bytes.Buffer)
		want  string
	}{
		{"error", func(b *bytes.Buffer) { notify.Errorf(b, "no document is open") }, "✗ no document is open\n"},
		{"warning", func(b *bytes.Buffer) { notify.Warningf(b, "skipped %d items", 3) }, "⚠ skipped 3 items\n"},
		{"info", func(b *bytes.Buffer) { notify.Infof(b, "wrote %s", "out.png") }, "ℹ wrote out.png\n"},
		{"success", func(b *bytes.Buffer) { notify.Successf(b, "done") }, "✔ done\n"},
		{"multiline", func(b *bytes.Buffer) { notify.Errorf(b, "first\nsecond") }, "✗ first\n  second\n"},
		{"literal percent", func(b *bytes.Buffer) { notify.Infof(b, "100%") }, "ℹ 100%\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.write(&buf)
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
