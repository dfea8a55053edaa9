package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/slotcheck/internal/errors"
	"github.com/thoreinstein/slotcheck/internal/preset"
	"github.com/thoreinstein/slotcheck/internal/validator"
)

// errPickAborted is returned when the user leaves the finder without a choice.
var errPickAborted = errors.New("selection aborted")

func fuzzyPickSet(registry *preset.Registry) (string, error) {
	names := registry.Names()
	if len(names) == 0 {
		return "", errors.Wrap(preset.ErrUnknownSet, "no sets available")
	}

	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string { return names[i] },
		fuzzyfinder.WithPromptString("set> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return describeSet(registry, names[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", errPickAborted
		}
		return "", errors.Wrap(err, "interactive set selection failed")
	}
	return names[idx], nil
}

// describeSet renders a preview of a set: its origin and validators.
func describeSet(registry *preset.Registry, name string) string {
	set, err := registry.Lookup(name)
	if err != nil {
		return err.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Set:    %s\n", name)
	fmt.Fprintf(&sb, "Source: %s\n\n", setSource(registry, name))
	sb.WriteString("Validators:\n")
	for _, v := range set.Validators() {
		fmt.Fprintf(&sb, "  - %s\n", v)
	}
	sb.WriteString("\nSample:\n")
	for _, r := range sampleRunes {
		mark := "✗"
		if set.Validate(r) {
			mark = "✓"
		}
		fmt.Fprintf(&sb, "  %s %q\n", mark, r)
	}
	return sb.String()
}

// sampleRunes covers one representative of each character class the
// validators distinguish.
var sampleRunes = []rune{'7', '٣', 'X', '*', 'a', 'Ж', 'ё', '#', ' '}

// setSource reports where a set comes from: builtin, config, or config
// overriding a builtin.
func setSource(registry *preset.Registry, name string) string {
	defs, err := registry.Definitions(name)
	if err != nil {
		return "unknown"
	}
	if !preset.IsBuiltin(name) {
		return "config"
	}
	builtin, _ := preset.NewRegistry().Definitions(name)
	if sameDefinitions(defs, builtin) {
		return "builtin"
	}
	return "config (overrides builtin)"
}

func sameDefinitions(a, b []validator.Definition) bool {
	sa, errA := validator.BuildSet(a)
	sb, errB := validator.BuildSet(b)
	return errA == nil && errB == nil && sa.Equal(sb)
}
