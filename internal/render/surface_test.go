package render

import "testing"

func TestDocumentLookup(t *testing.T) {
	doc := NewDocument()
	el := doc.Add("#recs")

	if got := doc.Lookup("#recs"); got != el {
		t.Errorf("Lookup returned %v, want the registered element", got)
	}
	if got := doc.Lookup("#missing"); got != nil {
		t.Errorf("Lookup of unknown selector = %v, want nil", got)
	}
}

func TestElementContentLastWriterWins(t *testing.T) {
	el := NewElement()
	el.SetContent("first")
	el.SetContent("second")

	if got := el.Content(); got != "second" {
		t.Errorf("Content = %q, want %q", got, "second")
	}
}

func TestElementActivation(t *testing.T) {
	el := NewElement()

	var order []string
	el.OnActivate("evt-1", func() { order = append(order, "a") })
	el.OnActivate("evt-1", func() { order = append(order, "b") })

	if !el.Activate("evt-1") {
		t.Fatal("Activate reported no handlers")
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("handlers ran as %v, want [a b]", order)
	}

	if el.Activate("evt-2") {
		t.Error("Activate of unbound id should report false")
	}
}

func TestSetContentDropsHandlers(t *testing.T) {
	el := NewElement()

	fired := false
	el.OnActivate("evt-1", func() { fired = true })
	el.SetContent("replaced")

	if el.Activate("evt-1") || fired {
		t.Error("handlers must not survive a content replacement")
	}
}
