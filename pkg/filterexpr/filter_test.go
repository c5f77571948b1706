package filterexpr

import (
	"reflect"
	"strings"
	"testing"
)

var subjectsSchema = ResourceSchema{
	Filter: map[string]FilterField{
		"name": {Column: "name", Ops: []Op{OpEQ, OpSW}},
		"id":   {Column: "id", Ops: []Op{OpEQ, OpIN}},
	},
	Order: OrderSchema{
		DefaultPrimary: "name",
		FallbackKey:    "id",
		Fields:         map[string]string{"name": "name", "id": "id"},
	},
}

type listReq struct{ filter, orderBy string }

func (r listReq) GetFilter() string  { return r.filter }
func (r listReq) GetOrderBy() string { return r.orderBy }

func TestCompileConjunction(t *testing.T) {
	q, err := Compile(listReq{filter: "name.startsWith('Data') && id in ['DS1', 'DS2']"}, subjectsSchema)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if len(q.Predicates) != 2 {
		t.Fatalf("expected 2 predicates, got %d", len(q.Predicates))
	}
	if q.Predicates[0].Op != OpSW || q.Predicates[0].Value != "Data" || q.Predicates[0].Column != "name" {
		t.Fatalf("unexpected first predicate %+v", q.Predicates[0])
	}
	if q.Predicates[1].Op != OpIN || !reflect.DeepEqual(q.Predicates[1].Value, []string{"DS1", "DS2"}) {
		t.Fatalf("unexpected second predicate %+v", q.Predicates[1])
	}
	want := []OrderTerm{{Key: "name", Column: "name"}, {Key: "id", Column: "id"}}
	if !reflect.DeepEqual(q.Order, want) {
		t.Fatalf("unexpected default order %+v", q.Order)
	}
}

func TestParseFilterRejections(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		errSub string
	}{
		{"or", "name == 'a' || name == 'b'", "only AND"},
		{"unknown-field", "color == 'red'", "not allowed"},
		{"op-not-allowed", "name in ['a']", "not allowed"},
		{"number-literal", "id == 3", "not supported"},
		{"syntax", "name ==", "invalid filter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.filter, subjectsSchema.Filter)
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Fatalf("ParseFilter(%q) error = %v, want containing %q", tt.filter, err, tt.errSub)
			}
		})
	}
}

func TestParseFilterEmpty(t *testing.T) {
	preds, err := ParseFilter("   ", subjectsSchema.Filter)
	if err != nil || preds != nil {
		t.Fatalf("expected no predicates, got %v %v", preds, err)
	}
}

func TestParseOrderBy(t *testing.T) {
	terms, err := ParseOrderBy("name desc", subjectsSchema.Order)
	if err != nil {
		t.Fatalf("ParseOrderBy returned error: %v", err)
	}
	want := []OrderTerm{{Key: "name", Column: "name", Desc: true}, {Key: "id", Column: "id"}}
	if !reflect.DeepEqual(terms, want) {
		t.Fatalf("got %+v want %+v", terms, want)
	}

	for _, bad := range []string{"color", "name sideways", "name, name", "name asc extra"} {
		if _, err := ParseOrderBy(bad, subjectsSchema.Order); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
