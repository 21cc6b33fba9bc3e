package listorder

import (
	"reflect"
	"testing"
)

type row struct {
	name  string
	start string
}

var rowKeys = map[string]func(row) string{
	"name":       func(r row) string { return r.name },
	"start_date": func(r row) string { return r.start },
}

func TestParse(t *testing.T) {
	t.Parallel()

	if got, err := Parse(""); err != nil || len(got.Fields) != 0 {
		t.Fatalf("Parse(\"\") = %#v, %v", got, err)
	}
	got, err := Parse("start_date desc, name")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got.Fields) != 2 || got.Fields[0].Path != "start_date" || !got.Fields[0].Desc || got.Fields[1].Desc {
		t.Fatalf("Parse() = %#v", got)
	}
	if _, err := Parse("email"); err == nil {
		t.Fatal("expected unknown path to be rejected")
	}
	if _, err := Parse("name sideways"); err == nil {
		t.Fatal("expected malformed order_by to be rejected")
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	items := []row{{"bob", "2024-01-01"}, {"Ada", "2024-01-01"}, {"cy", "2023-05-01"}}
	orderBy, err := Parse("start_date desc, name")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	Sort(items, orderBy, rowKeys)
	want := []row{{"Ada", "2024-01-01"}, {"bob", "2024-01-01"}, {"cy", "2023-05-01"}}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("Sort() = %#v, want %#v", items, want)
	}
}
