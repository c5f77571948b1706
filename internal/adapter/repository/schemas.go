package repository

import "github.com/eslsoft/examprep/pkg/filterexpr"

var listSubjectsSchema = filterexpr.ResourceSchema{
	Filter: map[string]filterexpr.FilterField{
		"name": {Column: "name", Ops: []filterexpr.Op{filterexpr.OpEQ, filterexpr.OpSW}},
		"id":   {Column: "id", Ops: []filterexpr.Op{filterexpr.OpEQ, filterexpr.OpIN}},
	},
	Order: filterexpr.OrderSchema{
		DefaultPrimary: "name",
		FallbackKey:    "id",
		Fields: map[string]string{
			"name": "name",
			"id":   "id",
		},
	},
}
