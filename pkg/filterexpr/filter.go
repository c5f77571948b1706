// Package filterexpr compiles AIP-160 style CEL filters and order_by clauses
// into a small, whitelisted predicate list that storage adapters translate to SQL.
package filterexpr

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Msg wraps request DTOs that expose filter and order_by raw inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// Op represents a supported comparison operation.
type Op string

const (
	OpEQ Op = "=="
	OpSW Op = "startsWith"
	OpIN Op = "in"
)

// FilterField whitelists the operations allowed on one string field and names its column.
type FilterField struct {
	Column string
	Ops    []Op
}

// Predicate is one validated conjunct of a filter. Value is a string, or []string for OpIN.
type Predicate struct {
	Field  string
	Column string
	Op     Op
	Value  any
}

// ResourceSchema aggregates filtering and ordering rules for a resource.
type ResourceSchema struct {
	Filter map[string]FilterField
	Order  OrderSchema
}

// Query is the compiled form of a filter and order_by pair.
type Query struct {
	Predicates []Predicate
	Order      []OrderTerm
}

// Compile parses the request filter & order_by against schema.
func Compile[M Msg](msg M, schema ResourceSchema) (Query, error) {
	preds, err := ParseFilter(msg.GetFilter(), schema.Filter)
	if err != nil {
		return Query{}, fmt.Errorf("filter: %w", err)
	}
	order, err := ParseOrderBy(msg.GetOrderBy(), schema.Order)
	if err != nil {
		return Query{}, fmt.Errorf("order_by: %w", err)
	}
	return Query{Predicates: preds, Order: order}, nil
}

// ParseFilter accepts a conjunction (&&) of comparisons on whitelisted string fields.
func ParseFilter(filter string, fields map[string]FilterField) ([]Predicate, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return nil, nil
	}
	if len(fields) == 0 {
		return nil, errors.New("filter schema has no fields defined")
	}

	opts := make([]cel.EnvOption, 0, len(fields))
	for name := range fields {
		opts = append(opts, cel.Variable(name, cel.StringType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, err
	}

	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("invalid filter: %w", issues.Err())
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to convert AST: %w", err)
	}
	conjuncts, err := extractConjuncts(parsed.GetExpr())
	if err != nil {
		return nil, err
	}

	preds := make([]Predicate, 0, len(conjuncts))
	for _, expr := range conjuncts {
		pred, err := parseAtomicPredicate(expr)
		if err != nil {
			return nil, err
		}
		rule, ok := fields[pred.Field]
		if !ok {
			return nil, fmt.Errorf("field %q is not allowed", pred.Field)
		}
		if !slices.Contains(rule.Ops, pred.Op) {
			return nil, fmt.Errorf("operator %q is not allowed for field %q", string(pred.Op), pred.Field)
		}
		pred.Column = rule.Column
		if pred.Column == "" {
			pred.Column = pred.Field
		}
		preds = append(preds, pred)
	}
	return preds, nil
}

func extractConjuncts(expr *exprpb.Expr) ([]*exprpb.Expr, error) {
	if expr == nil {
		return nil, errors.New("empty expression")
	}

	call := expr.GetCallExpr()
	if call == nil {
		return []*exprpb.Expr{expr}, nil
	}

	switch call.Function {
	case "_&&_":
		var result []*exprpb.Expr
		for _, arg := range call.Args {
			conjuncts, err := extractConjuncts(arg)
			if err != nil {
				return nil, err
			}
			result = append(result, conjuncts...)
		}
		return result, nil
	case "_||_", "_?_:_", "!_":
		return nil, fmt.Errorf("logical operator %q is not supported; only AND is allowed", call.Function)
	default:
		return []*exprpb.Expr{expr}, nil
	}
}

func parseAtomicPredicate(expr *exprpb.Expr) (Predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return Predicate{}, errors.New("unsupported expression; expected comparison or function call")
	}

	var op Op
	var fieldExpr, valueExpr *exprpb.Expr
	switch call.Function {
	case "_==_":
		op = OpEQ
	case "@in", "_in_":
		op = OpIN
	case "startsWith":
		op = OpSW
	default:
		return Predicate{}, fmt.Errorf("function %q is not supported", call.Function)
	}

	// Receiver-style calls (name.startsWith('x')) carry the field as Target.
	switch {
	case call.Target != nil && len(call.Args) == 1:
		fieldExpr, valueExpr = call.Target, call.Args[0]
	case call.Target == nil && len(call.Args) == 2:
		fieldExpr, valueExpr = call.Args[0], call.Args[1]
	default:
		return Predicate{}, fmt.Errorf("operator %q expects two operands", string(op))
	}

	ident := fieldExpr.GetIdentExpr()
	if ident == nil {
		return Predicate{}, errors.New("left-hand side must be an identifier")
	}

	value, err := parseLiteral(valueExpr)
	if err != nil {
		return Predicate{}, err
	}
	switch v := value.(type) {
	case string:
		if op == OpIN {
			return Predicate{}, errors.New("in requires a list literal")
		}
	case []string:
		if op != OpIN {
			return Predicate{}, fmt.Errorf("operator %q requires a string literal", string(op))
		}
		if len(v) == 0 {
			return Predicate{}, errors.New("list literal must not be empty")
		}
	}

	return Predicate{Field: ident.GetName(), Op: op, Value: value}, nil
}

func parseLiteral(expr *exprpb.Expr) (any, error) {
	if constant := expr.GetConstExpr(); constant != nil {
		if _, ok := constant.ConstantKind.(*exprpb.Constant_StringValue); !ok {
			return nil, fmt.Errorf("literal type %T is not supported", constant.ConstantKind)
		}
		return constant.GetStringValue(), nil
	}

	if list := expr.GetListExpr(); list != nil {
		elements := list.GetElements()
		values := make([]string, 0, len(elements))
		for i, elem := range elements {
			val, err := parseLiteral(elem)
			if err != nil {
				return nil, fmt.Errorf("list literal element %d: %w", i, err)
			}
			str, ok := val.(string)
			if !ok || str == "" {
				return nil, errors.New("list literal elements must be non-empty strings")
			}
			values = append(values, str)
		}
		return values, nil
	}

	return nil, errors.New("right-hand side must be a string or list literal")
}
