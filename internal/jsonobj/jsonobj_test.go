package jsonobj

import (
	"encoding/json"
	"testing"
)

func TestMarshal_Order(t *testing.T) {
	extra := map[string]json.RawMessage{
		"zeta":  json.RawMessage(`1`),
		"alpha": json.RawMessage(`"a"`),
		"id":    json.RawMessage(`"shadowed"`),
	}
	got, err := Marshal([]Field{{"id", 7}, {"name", "x"}}, extra)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"id":7,"name":"x","alpha":"a","zeta":1}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestMarshal_Empty(t *testing.T) {
	got, err := Marshal(nil, nil)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("Marshal() = %s, want {}", got)
	}
}

func TestMarshal_UnsupportedValue(t *testing.T) {
	if _, err := Marshal([]Field{{"ch", make(chan int)}}, nil); err == nil {
		t.Error("Marshal(chan) error = nil, want error")
	}
}

func TestSplitTake(t *testing.T) {
	m, err := Split([]byte(`{"id":3,"name":null,"visible":false,"custom":{"a":1}}`))
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}

	var id int
	if ok, err := Take(m, "id", &id); !ok || err != nil || id != 3 {
		t.Errorf("Take(id) = (%v, %v) id=%d, want (true, nil) id=3", ok, err, id)
	}

	var name string
	if ok, err := Take(m, "name", &name); ok || err != nil {
		t.Errorf("Take(name null) = (%v, %v), want (false, nil)", ok, err)
	}

	var missing int
	if ok, _ := Take(m, "missing", &missing); ok {
		t.Error("Take(missing) reported present")
	}

	var wrong string
	if _, err := Take(m, "visible", &wrong); err == nil {
		t.Error("Take(visible into string) error = nil, want type error")
	}

	if _, ok := m["custom"]; !ok || len(m) != 1 {
		t.Errorf("remaining members = %v, want only custom", m)
	}
}

func TestSplit_NotObject(t *testing.T) {
	if _, err := Split([]byte(`[1,2]`)); err == nil {
		t.Error("Split(array) error = nil, want error")
	}
	m, err := Split([]byte(`null`))
	if err != nil || m == nil {
		t.Errorf("Split(null) = (%v, %v), want empty map", m, err)
	}
}
