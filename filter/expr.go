package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/enka/enka"
)

// DefaultCacheSize is the number of compiled expressions CompileFilter keeps
const DefaultCacheSize = 64

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	custom     map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
		maps.Copy(c.customFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
		customFuncs: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type exprCompiler struct {
	helperFuncs map[string]any
	customFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

var defaultCompiler = NewExprCompiler(WithCache(DefaultCacheSize))

// CompileFilter compiles expression with the shared cached compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
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

	// Build fields are only known at run time, helpers are checked now
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
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

	filter := &exprFilter{
		expression: expression,
		program:    program,
		custom:     c.customFuncs,
	}
	if c.cache != nil {
		c.cache.Put(expression, filter)
	}
	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate reports whether the build matches. A build the expression
// cannot be evaluated against does not match.
func (f *exprFilter) Evaluate(build enka.Build) bool {
	ok, err := f.Match(build)
	return err == nil && ok
}

func (f *exprFilter) Match(build enka.Build) (bool, error) {
	env := createRuntimeEnvironment(build)
	maps.Copy(env, f.custom)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			BuildID:    build.ID,
			Reason:     "expression failed",
			Err:        err,
		}
	}
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			BuildID:    build.ID,
			Reason:     fmt.Sprintf("expression returned %T, not bool", result),
		}
	}
	return matched, nil
}

func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions returns the compile-time environment. Build bound
// helpers are registered with an empty build so calls are type checked.
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	funcs["hasArtifact"] = createHasArtifactFunc(nil)
	funcs["hasSetting"] = createHasSettingFunc(enka.Settings{})
	return funcs
}

// addHelperFunctions adds the build independent helpers to env.
// contains, startsWith and endsWith are expr operators and stay
// case-sensitive; the i-prefixed helpers ignore case.
func addHelperFunctions(env map[string]any) {
	env["icontains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["istartsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["iendsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// createRuntimeEnvironment exposes one build to an expression
func createRuntimeEnvironment(build enka.Build) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	avatar := build.AvatarData

	env["Build"] = build
	env["ID"] = int(build.ID)
	env["Name"] = build.Name
	env["AvatarID"] = int(avatar.AvatarID)
	env["Live"] = build.Live
	env["Public"] = build.Public
	env["Order"] = int(build.Order)
	env["Level"] = int(avatar.Level())
	env["Ascension"] = int(avatar.Ascension())
	env["Constellation"] = len(avatar.TalentIDList)
	env["HasImage"] = build.Image != nil && *build.Image != ""
	env["Caption"] = ""
	if build.Settings.Caption != nil {
		env["Caption"] = *build.Settings.Caption
	}

	env["Weapon"] = 0
	env["WeaponLevel"] = 0
	env["Refinement"] = 0
	if w := avatar.Weapon(); w != nil {
		env["Weapon"] = int(w.ItemID)
		env["WeaponLevel"] = int(w.Weapon.Level)
		for _, rank := range w.Weapon.AffixMap {
			env["Refinement"] = int(rank) + 1
		}
	}

	env["Friendship"] = 0
	if avatar.FetterInfo != nil {
		env["Friendship"] = int(avatar.FetterInfo.ExpLevel)
	}

	env["ArtifactSlots"] = createArtifactSlots(avatar.EquipList)
	env["hasArtifact"] = createHasArtifactFunc(avatar.EquipList)
	env["hasSetting"] = createHasSettingFunc(build.Settings)

	return env
}

func createArtifactSlots(equips []enka.Equip) []string {
	slots := make([]string, 0, len(equips))
	for _, e := range equips {
		if e.Reliquary != nil {
			slots = append(slots, string(e.Reliquary.Flat.EquipType))
		}
	}
	return slots
}

func createHasArtifactFunc(equips []enka.Equip) func(string) bool {
	slots := createArtifactSlots(equips)
	return func(slot string) bool {
		slot = strings.ToUpper(slot)
		if !strings.HasPrefix(slot, "EQUIP_") {
			slot = "EQUIP_" + slot
		}
		return slices.Contains(slots, slot)
	}
}

func createHasSettingFunc(settings enka.Settings) func(string) bool {
	return func(key string) bool {
		switch key {
		case "adaptiveColor":
			return settings.AdaptiveColor != nil
		case "artSource":
			return settings.ArtSource != nil
		case "caption":
			return settings.Caption != nil
		case "honkardWidth":
			return settings.HonkardWidth != nil
		case "transform":
			return settings.Transform != nil
		}
		_, ok := settings.Extra[key]
		return ok
	}
}
