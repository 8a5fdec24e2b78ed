package filter

import (
	"maps"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Program is a compiled filter expression
type Program struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
	envPool    *sync.Pool
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables caching of compiled programs, keyed by expression
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size <= 0 {
			return
		}
		cache, err := lru.New[string, *Program](size)
		if err == nil {
			c.cache = cache
		}
	}
}

// WithCustomFunctions adds helper functions visible to every expression.
// A record env entry with the same name takes precedence.
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler turns filter expressions into Programs
type Compiler struct {
	helperFuncs map[string]any
	cache       *lru.Cache[string, *Program]
	envPool     *sync.Pool
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helperFuncs: helperFunctions(),
		envPool: &sync.Pool{
			New: func() any {
				return make(map[string]any, 32)
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression. Record fields are resolved at evaluation
// time, so unknown identifiers are accepted here. The type() builtin is
// disabled so that `type` refers to the record field.
func (c *Compiler) Compile(expression string) (*Program, error) {
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
		expr.Env(c.helperFuncs),
		expr.DisableBuiltin("type"),
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

	p := &Program{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
		envPool:    c.envPool,
	}

	if c.cache != nil {
		c.cache.Add(expression, p)
	}

	return p, nil
}

// Clear removes all cached programs
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// Size returns the number of cached programs
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Eval runs the program against a record env
func (p *Program) Eval(env map[string]any) (bool, error) {
	runtimeEnv := p.envPool.Get().(map[string]any)
	defer func() {
		clear(runtimeEnv)
		p.envPool.Put(runtimeEnv)
	}()

	maps.Copy(runtimeEnv, p.helpers)
	maps.Copy(runtimeEnv, env)

	result, err := expr.Run(p.program, runtimeEnv)
	if err != nil {
		return false, &EvaluationError{Expression: p.expression, Err: err}
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Match reports whether the record env satisfies the program. Evaluation
// errors count as no match.
func (p *Program) Match(env map[string]any) bool {
	ok, err := p.Eval(env)
	return err == nil && ok
}

// Expression returns the source expression
func (p *Program) Expression() string {
	return p.expression
}

// helperFunctions are case-insensitive variants of the contains, startsWith
// and endsWith operators. lower and upper come from the expr builtins.
func helperFunctions() map[string]any {
	return map[string]any{
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"istartsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"iendsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
	}
}
