package detect

// Category derives the documentation category for an element from its
// flags. Categories follow the output directory taxonomy of the docs
// workspace; precedence roughly mirrors the strength of the signal.
func Category(f Flags) string {
	switch {
	case f.IsTest:
		return "tests"
	case f.IsReactComponent:
		return "ui/components"
	case f.IsHook:
		return "hooks"
	case f.IsStore:
		return "stores"
	case f.IsCLI:
		return "cli"
	case f.IsAPI:
		return "api"
	case f.IsGenerator:
		return "generators"
	case f.IsInfrastructure:
		return "infrastructure"
	default:
		return "general"
	}
}

// SuggestModules returns the template modules to compose for an element
// when the caller does not pick them explicitly. The universal four are
// always present; conditional modules follow their flags. Order is
// stable: universal first, then conditionals in detection order.
func SuggestModules(f Flags) []string {
	modules := []string{"architecture", "integration", "testing", "performance"}

	conditionals := []struct {
		name string
		on   bool
	}{
		{"props", f.HasProps},
		{"state", f.UsesState},
		{"events", f.HasEvents},
		{"hooks", f.IsHook || f.HasLifecycle},
		{"api", f.IsAPI},
		{"cli", f.IsCLI},
		{"auth", f.HasAuth},
		{"validation", f.HasValidation},
		{"persistence", f.HasPersistence},
		{"routing", f.HasRouting},
		{"accessibility", f.HasAccessibility || f.IsReactComponent},
	}
	for _, c := range conditionals {
		if c.on {
			modules = append(modules, c.name)
		}
	}
	return modules
}
