package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("attached writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := FromContext(WithPrinter(context.Background(), &buf))
		if p.Writer != &buf {
			t.Error("Printer should write to the buffer passed to WithPrinter")
		}
	})

	t.Run("stdout when not set", func(t *testing.T) {
		t.Parallel()
		if p := FromContext(context.Background()); p.Writer != os.Stdout {
			t.Error("Printer should default to os.Stdout")
		}
	})
}

func TestPrinter_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	p.Print("01. Configuration & Setup\n")
	p.Printf("%d commands\n", 7)
	p.Println()
	p.Println("done")

	want := "01. Configuration & Setup\n7 commands\n\ndone\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := FromContext(WithPrinter(context.Background(), &buf))

	if err := p.JSON(map[string]string{"command": "git merge <branch>"}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"command\": \"git merge <branch>\"\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("JSON() wrote %q, want %q", got, want)
	}
}
