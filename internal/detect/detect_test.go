package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docweave/docweave/internal/elements"
)

// element builds a minimal normalized element for detection tests.
func element(name, typ, file string, imports []string, md elements.Metadata) *elements.ElementCharacteristics {
	if imports == nil {
		imports = []string{}
	}
	if md.Extra == nil {
		md.Extra = map[string]any{}
	}
	return &elements.ElementCharacteristics{
		Name: name, Type: typ, File: file,
		Imports: imports, Exports: []string{},
		Metadata: md,
	}
}

// --- Flag signals ---

func TestAnalyze_ComponentSignals(t *testing.T) {
	tests := []struct {
		name string
		el   *elements.ElementCharacteristics
	}{
		{"hasJSX metadata", element("Button", "function", "src/Button.ts", nil, elements.Metadata{HasJSX: true})},
		{"react import", element("Button", "function", "src/Button.ts", []string{"react"}, elements.Metadata{})},
		{"tsx extension", element("Button", "function", "src/Button.tsx", nil, elements.Metadata{})},
		{"component type", element("Button", "component", "src/Button.ts", nil, elements.Metadata{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Analyze(tt.el).IsReactComponent)
		})
	}
}

func TestAnalyze_CLISignals(t *testing.T) {
	tests := []struct {
		name string
		el   *elements.ElementCharacteristics
	}{
		{"cli directory", element("run", "function", "src/cli/run.ts", nil, elements.Metadata{})},
		{"command suffix", element("DeployCommand", "class", "src/deploy.ts", nil, elements.Metadata{})},
		{"commander import", element("run", "function", "src/run.ts", []string{"commander"}, elements.Metadata{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Analyze(tt.el).IsCLI)
		})
	}
}

func TestAnalyze_HookNaming(t *testing.T) {
	assert.True(t, Analyze(element("useAuth", "function", "src/useAuth.ts", nil, elements.Metadata{})).IsHook)
	assert.False(t, Analyze(element("userList", "function", "src/userList.ts", nil, elements.Metadata{})).IsHook,
		"userList is not a hook despite the use* prefix")
	assert.True(t, Analyze(element("helper", "function", "src/hooks/helper.ts", nil, elements.Metadata{})).IsHook,
		"hooks/ directory is a hook signal")
}

func TestAnalyze_StateAndProps(t *testing.T) {
	el := element("Form", "component", "src/Form.tsx", nil, elements.Metadata{
		Props:          []elements.Prop{{Name: "onSubmit", Type: "() => void"}},
		StateVariables: []elements.StateVariable{{Name: "value", Type: "string"}},
		Hooks:          []string{"useEffect"},
	})
	f := Analyze(el)
	assert.True(t, f.HasProps)
	assert.True(t, f.UsesState)
	assert.True(t, f.HasLifecycle)
}

func TestAnalyze_EventsAndAPI(t *testing.T) {
	el := element("SearchBar", "component", "src/SearchBar.tsx", nil, elements.Metadata{
		EventHandlers: []elements.EventHandler{{Name: "handleChange", Type: "change"}},
		APICalls:      []elements.APICall{{Method: "GET", Endpoint: "/search"}},
	})
	f := Analyze(el)
	assert.True(t, f.HasEvents)
	assert.True(t, f.IsAPI)
}

func TestAnalyze_PersistenceFromPersistedState(t *testing.T) {
	el := element("Settings", "component", "src/Settings.tsx", nil, elements.Metadata{
		StateVariables: []elements.StateVariable{
			{Name: "theme", Type: "string", Persisted: true, PersistenceKey: "app.theme"},
		},
	})
	assert.True(t, Analyze(el).HasPersistence)
}

func TestAnalyze_TestFile(t *testing.T) {
	assert.True(t, Analyze(element("renders", "function", "src/Button.test.tsx", nil, elements.Metadata{})).IsTest)
	assert.True(t, Analyze(element("spec", "function", "src/__tests__/form.ts", nil, elements.Metadata{})).IsTest)
}

func TestAnalyze_PathSegmentsAreWholeSegments(t *testing.T) {
	// "specialist/" must not trigger the cli/ or api/ signals.
	f := Analyze(element("helper", "function", "src/specialist/helper.ts", nil, elements.Metadata{}))
	assert.False(t, f.IsCLI)
	assert.False(t, f.IsAPI)
}

func TestAnalyze_AccessibilityPassThrough(t *testing.T) {
	el := element("Dialog", "component", "src/Dialog.tsx", nil, elements.Metadata{
		Extra: map[string]any{"ariaAttributes": []any{"aria-modal"}},
	})
	assert.True(t, Analyze(el).HasAccessibility)
}

// --- Purity / determinism ---

func TestDetect_Deterministic(t *testing.T) {
	el := element("Button", "component", "src/ui/Button.tsx", []string{"react", "axios"}, elements.Metadata{
		HasJSX: true,
		Props:  []elements.Prop{{Name: "label", Type: "string", Required: true}},
	})
	first := Detect(el)
	second := Detect(el)
	require.Equal(t, first, second, "detection must be a pure function of the element")
}

// --- Scoring ---

func TestScore_NoSignalsIsBase(t *testing.T) {
	assert.Equal(t, 50, Score(Flags{}))
}

// Worked example: component + API with the component/API ambiguity pair.
func TestScore_ComponentPlusAPI(t *testing.T) {
	f := Flags{IsReactComponent: true, IsAPI: true}
	assert.Equal(t, 70, Score(f), "50 + 20 + 15 - 15")
}

func TestScore_TestBonus(t *testing.T) {
	assert.Equal(t, 75, Score(Flags{IsTest: true}))
}

func TestScore_AmbiguityPairs(t *testing.T) {
	tests := []struct {
		name string
		f    Flags
		want int
	}{
		{"hook+store", Flags{IsHook: true, IsStore: true}, 50 + 20 + 15 - 15},
		{"cli+api", Flags{IsCLI: true, IsAPI: true}, 50 + 20 + 15 - 15},
		{"component alone", Flags{IsReactComponent: true}, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.f))
		})
	}
}

func TestScore_ClampedToBounds(t *testing.T) {
	all := Flags{
		IsReactComponent: true, IsCLI: true, IsHook: true, IsAPI: true,
		IsStore: true, IsTest: true, IsGenerator: true, IsInfrastructure: true,
	}
	got := Score(all)
	assert.LessOrEqual(t, got, 100)
	assert.GreaterOrEqual(t, got, 0)
	assert.Equal(t, 100, got, "every bonus minus every penalty still exceeds 100 and clamps")
}

func TestScore_AlwaysInRange(t *testing.T) {
	// Exhaustive over the strong-signal flags (8 bits).
	for mask := 0; mask < 1<<8; mask++ {
		f := Flags{
			IsTest:           mask&1 != 0,
			IsReactComponent: mask&2 != 0,
			IsCLI:            mask&4 != 0,
			IsHook:           mask&8 != 0,
			IsAPI:            mask&16 != 0,
			IsStore:          mask&32 != 0,
			IsGenerator:      mask&64 != 0,
			IsInfrastructure: mask&128 != 0,
		}
		got := Score(f)
		require.GreaterOrEqual(t, got, 0, "mask %b", mask)
		require.LessOrEqual(t, got, 100, "mask %b", mask)
	}
}

// --- Category & module selection ---

func TestCategory_Precedence(t *testing.T) {
	tests := []struct {
		name string
		f    Flags
		want string
	}{
		{"test wins", Flags{IsTest: true, IsReactComponent: true}, "tests"},
		{"component", Flags{IsReactComponent: true, IsAPI: true}, "ui/components"},
		{"hook", Flags{IsHook: true}, "hooks"},
		{"cli", Flags{IsCLI: true}, "cli"},
		{"api", Flags{IsAPI: true}, "api"},
		{"nothing", Flags{}, "general"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(tt.f))
		})
	}
}

func TestSuggestModules_UniversalAlwaysFirst(t *testing.T) {
	got := SuggestModules(Flags{})
	require.Equal(t, []string{"architecture", "integration", "testing", "performance"}, got)
}

func TestSuggestModules_ConditionalsFollowFlags(t *testing.T) {
	got := SuggestModules(Flags{IsReactComponent: true, HasProps: true, UsesState: true})
	assert.Contains(t, got, "props")
	assert.Contains(t, got, "state")
	assert.Contains(t, got, "accessibility")
	assert.NotContains(t, got, "api")
	assert.NotContains(t, got, "cli")
}
