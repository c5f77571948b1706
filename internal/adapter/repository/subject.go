package repository

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"

	"github.com/eslsoft/examprep/internal/entity"
	"github.com/eslsoft/examprep/internal/infrastructure/database/migrate"
	"github.com/eslsoft/examprep/internal/repository"
	"github.com/eslsoft/examprep/pkg/filterexpr"
)

var subjectColumns = []string{"id", "name", "description", "icon", "color"}

type subjectRepository struct {
	drv dialect.Driver
}

// NewSubjectRepository returns a SubjectRepository backed by the ent SQL driver.
func NewSubjectRepository(drv dialect.Driver) repository.SubjectRepository {
	return &subjectRepository{drv: drv}
}

func (r *subjectRepository) FindByName(ctx context.Context, name string) ([]entity.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	b := sql.Dialect(r.drv.Dialect())
	t := b.Table(migrate.SubjectsTable.Name)
	sel := b.Select(qualify(t, subjectColumns)...).
		From(t).
		Where(sql.EqualFold(t.C("name"), name)).
		OrderBy(sql.Asc(t.C("id")))

	subjects, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("find subject by name: %w", err)
	}
	return subjects, nil
}

func (r *subjectRepository) List(ctx context.Context, query *repository.ListSubjectQuery) ([]entity.Subject, error) {
	if query == nil {
		query = &repository.ListSubjectQuery{}
	}
	compiled, err := filterexpr.Compile(query, listSubjectsSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFilter, err)
	}

	b := sql.Dialect(r.drv.Dialect())
	t := b.Table(migrate.SubjectsTable.Name)
	sel := b.Select(qualify(t, subjectColumns)...).From(t)
	if preds := toSQLPredicates(t, compiled.Predicates); len(preds) > 0 {
		sel.Where(sql.And(preds...))
	}
	for _, term := range compiled.Order {
		if term.Desc {
			sel.OrderBy(sql.Desc(t.C(term.Column)))
		} else {
			sel.OrderBy(sql.Asc(t.C(term.Column)))
		}
	}

	subjects, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

func (r *subjectRepository) query(ctx context.Context, sel *sql.Selector) ([]entity.Subject, error) {
	var rows sql.Rows
	q, args := sel.Query()
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Subject
	for rows.Next() {
		var s entity.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Icon, &s.Color); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func toSQLPredicates(t *sql.SelectTable, preds []filterexpr.Predicate) []*sql.Predicate {
	out := make([]*sql.Predicate, 0, len(preds))
	for _, p := range preds {
		col := t.C(p.Column)
		switch p.Op {
		case filterexpr.OpEQ:
			out = append(out, sql.EQ(col, p.Value))
		case filterexpr.OpSW:
			out = append(out, sql.HasPrefix(col, p.Value.(string)))
		case filterexpr.OpIN:
			values := p.Value.([]string)
			args := make([]any, len(values))
			for i, v := range values {
				args[i] = v
			}
			out = append(out, sql.In(col, args...))
		}
	}
	return out
}

func qualify(t *sql.SelectTable, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = t.C(c)
	}
	return out
}
