package table

import "testing"

func TestSerializeDFA(t *testing.T) {
	header := []string{"a", "b"}
	rows := []SerialRow{
		{Name: "q0", Initial: true, Accepting: true, Entries: []Entry{{Word: "q1"}, {Word: "q0"}}},
		{Name: "q1", Entries: []Entry{{Word: "q0"}, {Word: "q1"}}},
	}
	got := Serialize(header, rows, false, DefaultFormatOptions())

	back, err := ParseDFA(got)
	if err != nil {
		t.Fatalf("round-trip parse failed: %v\ntext:\n%s", err, got)
	}
	if len(back.Rows) != 2 {
		t.Fatalf("round-trip rows = %d, want 2", len(back.Rows))
	}
	if !back.Rows[0].Initial || !back.Rows[0].Accepting {
		t.Fatalf("round-trip lost flags on row 0: %+v", back.Rows[0])
	}
}

func TestSerializeNFA(t *testing.T) {
	header := []string{"a"}
	rows := []SerialRow{
		{Name: "q0", Initial: true, Entries: []Entry{{IsSet: true, Words: []string{"q0", "q1"}}}},
		{Name: "q1", Accepting: true, Entries: []Entry{{IsSet: true}}},
	}
	got := Serialize(header, rows, true, DefaultFormatOptions())

	back, err := ParseNFA(got)
	if err != nil {
		t.Fatalf("round-trip parse failed: %v\ntext:\n%s", err, got)
	}
	if len(back.Rows[0].Transitions[0].Words) != 2 {
		t.Fatalf("round-trip set entry = %v, want 2 members", back.Rows[0].Transitions[0].Words)
	}
	if len(back.Rows[1].Transitions[0].Words) != 0 {
		t.Fatalf("round-trip empty set entry = %v, want 0 members", back.Rows[1].Transitions[0].Words)
	}
}

func TestSerializeCustomSeparator(t *testing.T) {
	header := []string{"a", "b"}
	rows := []SerialRow{{Name: "q0", Entries: []Entry{{Word: "q0"}, {Word: "q0"}}}}
	got := Serialize(header, rows, false, FormatOptions{ColumnSeparator: ", "})
	if got == "" {
		t.Fatal("Serialize with custom separator produced empty output")
	}
	if _, err := ParseDFA(got); err != nil {
		t.Fatalf("custom-separator output failed to re-parse: %v\ntext:\n%s", err, got)
	}
}
