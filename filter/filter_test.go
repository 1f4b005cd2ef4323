package filter

import (
	"errors"
	"strings"
	"testing"

	"github.com/s0up4200/enka/enka"
)

func strPtr(s string) *string { return &s }

func val(s string) enka.PropValue {
	return enka.PropValue{Val: &s}
}

// testBuild is a level 90 Ayaka holding Mistsplitter with a flower and a goblet
func testBuild() enka.Build {
	return enka.Build{
		ID:       42,
		Name:     "Freeze DPS",
		AvatarID: "10000002",
		Order:    1,
		Live:     false,
		Public:   true,
		Image:    strPtr("https://cdn.enka.network/builds/42.png"),
		Hoyo:     "4Wjv2e",
		Settings: enka.Settings{Caption: strPtr("Freeze team, C0")},
		AvatarData: enka.AvatarInfo{
			AvatarID: 10000002,
			PropMap: map[enka.Prop]enka.PropValue{
				enka.PropLevel:      val("90"),
				enka.PropBreakLevel: val("6"),
			},
			TalentIDList: []enka.TalentID{21},
			FetterInfo:   &enka.FetterInfo{ExpLevel: 10},
			EquipList: []enka.Equip{
				{Weapon: &enka.EquipWeapon{
					ItemID: 11509,
					Weapon: enka.Weapon{Level: 90, AffixMap: map[uint64]uint64{111509: 0}},
				}},
				{Reliquary: &enka.EquipReliquary{
					ItemID: 77544,
					Flat:   enka.FlatReliquary{EquipType: enka.EquipBracer},
				}},
				{Reliquary: &enka.EquipReliquary{
					ItemID: 77545,
					Flat:   enka.FlatReliquary{EquipType: enka.EquipRing},
				}},
			},
		},
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Level >= 80`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `icontains(Name, "unclosed`,
			wantErr:    true,
		},
		{
			name:        "not a boolean",
			expression:  `1 + 2`,
			wantErr:     true,
			errContains: "failed to compile expression",
		},
		{
			name:       "helper with wrong arity",
			expression: `icontains(Name)`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `Public and not Live and icontains(Caption, "freeze") and Weapon == 11509`,
		},
		{
			name:       "contains operator",
			expression: `Caption contains "C0" and Name startsWith "Freeze" and Name endsWith "DPS"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				var compErr *CompilationError
				if !errors.As(err, &compErr) {
					t.Errorf("expected *CompilationError, got %T", err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if filter.Expression() != strings.TrimSpace(tt.expression) {
				t.Errorf("expression = %q, want %q", filter.Expression(), tt.expression)
			}
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	build := testBuild()

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{"level", `Level == 90`, true},
		{"ascension", `Ascension >= 6`, true},
		{"constellation", `Constellation == 1`, true},
		{"weapon", `Weapon == 11509 and WeaponLevel == 90 and Refinement == 1`, true},
		{"avatar", `AvatarID == 10000002`, true},
		{"name prefix", `istartsWith(Name, "freeze")`, true},
		{"name suffix", `iendsWith(Name, "dps")`, true},
		{"caption", `icontains(Caption, "c0")`, true},
		{"caption operator", `Caption contains "C0"`, true},
		{"caption operator is case-sensitive", `Caption contains "c0"`, false},
		{"caption lowered", `lower(Caption) contains "c0"`, true},
		{"prefix operator", `Name startsWith "Freeze"`, true},
		{"not live", `not Live`, true},
		{"public order", `Public and Order == 1`, true},
		{"image", `HasImage`, true},
		{"friendship", `Friendship == 10`, true},
		{"artifact slot", `hasArtifact("ring") and not hasArtifact("EQUIP_DRESS")`, true},
		{"artifact count", `len(ArtifactSlots) == 2`, true},
		{"setting", `hasSetting("caption") and not hasSetting("artSource")`, true},
		{"build struct", `Build.Hoyo == "4Wjv2e"`, true},
		{"mismatch", `Level < 80`, false},
		{"unknown field", `Energy > 1`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			if err != nil {
				t.Fatalf("failed to compile filter: %v", err)
			}

			result := filter.Evaluate(build)
			if result != tt.expected {
				t.Errorf("expected %v but got %v for expression %q", tt.expected, result, tt.expression)
			}
		})
	}
}

func TestMatchReportsEvaluationError(t *testing.T) {
	filter, err := CompileFilter(`Energy > 1`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}

	_, err = filter.Match(testBuild())
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	if evalErr.BuildID != 42 {
		t.Errorf("BuildID = %d, want 42", evalErr.BuildID)
	}
}

func TestEmptyBuild(t *testing.T) {
	filter, err := CompileFilter(`Weapon == 0 and Level == 0 and Caption == "" and not HasImage`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}
	if !filter.Evaluate(enka.Build{}) {
		t.Error("expected zero build to match zero values")
	}
}

func TestSelect(t *testing.T) {
	high := testBuild()
	low := testBuild()
	low.ID = 43
	low.AvatarData.PropMap = map[enka.Prop]enka.PropValue{enka.PropLevel: val("70")}

	filter, err := CompileFilter(`Level >= 80`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}

	matches := Select(filter, []enka.Build{low, high, low})
	if len(matches) != 1 || matches[0].ID != 42 {
		t.Fatalf("expected only build 42, got %+v", matches)
	}

	grouped := SelectGrouped(filter, map[enka.AvatarID][]enka.Build{
		10000002: {high, low},
		10000003: {low},
	})
	if len(grouped) != 1 {
		t.Fatalf("expected one character left, got %d", len(grouped))
	}
	if got := grouped[10000002]; len(got) != 1 || got[0].ID != 42 {
		t.Errorf("unexpected builds for 10000002: %+v", got)
	}
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(10))
	expression := `Level >= 80 and Public`

	first, err := compiler.Compile(expression)
	if err != nil {
		t.Fatalf("first compilation failed: %v", err)
	}

	second, err := compiler.Compile("  " + expression + "\n")
	if err != nil {
		t.Fatalf("second compilation failed: %v", err)
	}
	if first != second {
		t.Error("expected cached filter on second compilation")
	}

	cachingCompiler, ok := compiler.(CachingCompiler)
	if !ok {
		t.Fatal("expected expr compiler to cache")
	}
	if cachingCompiler.Size() != 1 {
		t.Errorf("expected cache size 1 but got %d", cachingCompiler.Size())
	}

	cachingCompiler.Clear()
	if cachingCompiler.Size() != 0 {
		t.Errorf("expected cache size 0 after clear but got %d", cachingCompiler.Size())
	}
}

func TestCustomFunctions(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"isMain": func(name string) bool { return strings.HasSuffix(name, "DPS") },
	}))

	filter, err := compiler.Compile(`isMain(Name)`)
	if err != nil {
		t.Fatalf("failed to compile filter: %v", err)
	}
	if !filter.Evaluate(testBuild()) {
		t.Error("expected custom helper to match")
	}
	if compiler.(CachingCompiler).Size() != 0 {
		t.Error("expected no cache without WithCache")
	}
}

func TestLRUEviction(t *testing.T) {
	cache := newLRUCache[int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	if _, ok := cache.Get("a"); !ok {
		t.Fatal("expected a to be cached")
	}
	cache.Put("c", 3)

	if _, ok := cache.Get("b"); ok {
		t.Error("expected b to be evicted as least recently used")
	}
	if v, ok := cache.Get("a"); !ok || v != 1 {
		t.Errorf("expected a=1, got %d %v", v, ok)
	}
	if v, ok := cache.Get("c"); !ok || v != 3 {
		t.Errorf("expected c=3, got %d %v", v, ok)
	}

	cache.Put("c", 4)
	if v, _ := cache.Get("c"); v != 4 {
		t.Errorf("expected c to be replaced, got %d", v)
	}
	if cache.Size() != 2 {
		t.Errorf("expected size 2, got %d", cache.Size())
	}
}
