// Package filter selects Play Movies Partner records with boolean expressions
// written in the expr language.
//
// Records are exposed to expressions by their wire field names, so a store
// info can be matched with:
//
//	hasHdOffer && country == "US" && icontains(name, "dune")
//
// Absent boolean fields evaluate to false and absent list fields to an empty
// list, so flags and membership tests work on sparse records. Other absent
// fields evaluate to nil. Timestamps are RFC 3339 strings; use daysSince or
// parseTime to compare them.
package filter

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled programs a Compiler keeps.
const DefaultCacheSize = 100

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache sets the program cache size. Zero disables caching.
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[*Filter](size)
		} else {
			c.cache = nil
		}
	}
}

// WithCustomFunctions adds helper functions available to expressions
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// Compiler compiles filter expressions. It is safe for concurrent use.
type Compiler struct {
	helpers map[string]any
	cache   *lruCache[*Filter]
}

// NewCompiler creates a Compiler with the built-in helpers and a program cache.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helpers: helperFunctions(),
		cache:   newLRUCache[*Filter](DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles expression into a Filter.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// Clear removes all cached programs
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached programs
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against record, which must encode to a JSON
// object (any playmovies schema type does).
func (f *Filter) Match(record any) (bool, error) {
	return f.match(record, -1)
}

func (f *Filter) match(record any, index int) (bool, error) {
	env, err := f.environment(record)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Index:      index,
			Reason:     "record is not an object",
			Err:        err,
		}
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Index:      index,
			Reason:     "failed to run expression",
			Err:        err,
		}
	}

	return out.(bool), nil
}

func (f *Filter) environment(record any) (map[string]any, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	env := make(map[string]any, len(f.helpers)+32)
	maps.Copy(env, zeroFields(reflect.TypeOf(record)))
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}

	// Helpers win over record fields of the same name.
	maps.Copy(env, f.helpers)
	return env, nil
}

var zeroFieldsCache sync.Map // reflect.Type -> map[string]any

// zeroFields returns the values absent boolean and list fields of t take in
// an environment, keyed by wire name. Non-struct types have none.
func zeroFields(t reflect.Type) map[string]any {
	if t == nil {
		return nil
	}
	if cached, ok := zeroFieldsCache.Load(t); ok {
		return cached.(map[string]any)
	}

	st := t
	for st.Kind() == reflect.Pointer {
		st = st.Elem()
	}

	fields := make(map[string]any)
	if st.Kind() == reflect.Struct {
		for i := range st.NumField() {
			field := st.Field(i)
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if !field.IsExported() || name == "" || name == "-" {
				continue
			}

			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			switch ft.Kind() {
			case reflect.Bool:
				fields[name] = false
			case reflect.Slice:
				fields[name] = []any{}
			}
		}
	}

	zeroFieldsCache.Store(t, fields)
	return fields
}

// Select returns the records matching f, in order. It stops at the first
// record that cannot be evaluated.
func Select[T any](f *Filter, records []T) ([]T, error) {
	matches := make([]T, 0, len(records))
	for i, r := range records {
		ok, err := f.match(r, i)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// Set holds named filters compiled together.
type Set struct {
	filters map[string]*Filter
}

// NewSet compiles every named expression. It fails on the first invalid one.
func NewSet(c *Compiler, expressions map[string]string) (*Set, error) {
	s := &Set{filters: make(map[string]*Filter, len(expressions))}

	for _, name := range slices.Sorted(maps.Keys(expressions)) {
		f, err := c.Compile(expressions[name])
		if err != nil {
			return nil, fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		s.filters[name] = f
	}

	return s, nil
}

// Get returns the filter registered under name.
func (s *Set) Get(name string) (*Filter, bool) {
	f, ok := s.filters[name]
	return f, ok
}

// Names returns the registered names, sorted.
func (s *Set) Names() []string {
	return slices.Sorted(maps.Keys(s.filters))
}

// helperFunctions avoids the names of expr builtins and operators such as
// contains, lower and now.
func helperFunctions() map[string]any {
	return map[string]any{
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		// includes reports whether a list field holds value, ignoring case.
		"includes": func(list []any, value string) bool {
			return slices.ContainsFunc(list, func(v any) bool {
				s, ok := v.(string)
				return ok && strings.EqualFold(s, value)
			})
		},
		"parseTime": parseTime,
		// daysSince returns -1 for a malformed timestamp.
		"daysSince": func(ts string) int {
			t := parseTime(ts)
			if t.IsZero() {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
	}
}

// parseTime accepts RFC 3339 timestamps and plain dates.
func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	t, _ := time.Parse(time.DateOnly, s)
	return t
}
