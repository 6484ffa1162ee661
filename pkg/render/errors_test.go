package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagegen/pkg/render"
)

func TestErrorList_AppendOrder(t *testing.T) {
	var list render.ErrorList
	list.Append("first")
	list.Append("")
	list.Append("second")

	want := []string{"first", "second"}
	if diff := cmp.Diff(want, list.Messages()); diff != "" {
		t.Fatalf("unexpected messages (-want +got):\n%s", diff)
	}
	if list.Len() != 2 {
		t.Fatalf("unexpected length: %d", list.Len())
	}
}

func TestErrorList_MessagesReturnsCopy(t *testing.T) {
	var list render.ErrorList
	list.Append("original")

	messages := list.Messages()
	messages[0] = "mutated"

	if got := list.Messages()[0]; got != "original" {
		t.Fatalf("internal state mutated: %s", got)
	}
}

func TestMessagesHTML_EscapesContent(t *testing.T) {
	out := render.MessagesHTML([]string{"a < b", "ok"})
	want := `<ul class="pagegen-messages"><li>a &lt; b</li><li>ok</li></ul>`
	if out != want {
		t.Fatalf("unexpected markup:\nwant: %s\ngot:  %s", want, out)
	}
}

func TestMessagesHTML_EmptyList(t *testing.T) {
	if out := render.MessagesHTML(nil); out != "" {
		t.Fatalf("expected empty output, got %s", out)
	}
}
