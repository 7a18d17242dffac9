package theme

import (
	"fmt"
	"sort"
	"strings"
)

// The stylesheet contract: these exact custom-property names are what the
// shipped stylesheet consumes. Renaming any of them breaks every rule that
// references the variable.
var paletteVariables = []struct {
	name string
	role ColorRole
}{
	{"--neon-cyan", RolePrimary},
	{"--neon-blue", RoleSecondary},
	{"--neon-green", RoleSuccess},
	{"--neon-amber", RoleWarning},
	{"--neon-red", RoleError},
	{"--neon-magenta", RoleAccent},
	{"--bg-black", RoleBackground},
	{"--dim-trace", RoleDimTrace},
	{"--label-default", RoleDefaultLabel},
}

var buttonVariables = []ButtonRole{ButtonDefault, ButtonAction, ButtonDanger, ButtonInfo, ButtonSound}

var fontVariables = []struct {
	name string
	role FontRole
}{
	{"--font-primary", FontPrimary},
	{"--font-mono", FontMono},
	{"--font-display", FontDisplay},
	{"--font-heading", FontHeading},
}

// labelDefaultFallback is written for --label-default when a skin's palette
// omits the role.
const labelDefaultFallback = "#8b949e"

// applyVariables projects a definition onto the registry's style variables.
// The projection is additive and overwriting: fields absent on the skin are
// skipped, leaving previously written variables untouched, and nothing is
// ever cleared.
func (r *Registry) applyVariables(d *Definition) {
	if d.Palette != nil {
		for _, entry := range paletteVariables {
			value := d.Palette[entry.role]
			if entry.role == RoleDefaultLabel && value == "" {
				value = labelDefaultFallback
			}
			r.vars[entry.name] = value
		}
	}

	for i, role := range d.LayerColors {
		if i >= LayerCount {
			break
		}
		value := d.Palette[role]
		if value == "" {
			value = d.Palette[RolePrimary]
		}
		r.vars[fmt.Sprintf("--layer-%d-color", i)] = value
	}

	if d.ButtonColors != nil {
		for _, button := range buttonVariables {
			role, ok := d.ButtonColors[button]
			if !ok {
				role = RolePrimary
			}
			r.vars[fmt.Sprintf("--btn-%s-color", button)] = d.Palette[role]
		}
	}

	if d.Fonts != nil {
		for _, entry := range fontVariables {
			r.vars[entry.name] = d.Fonts[entry.role]
		}
	}
}

// Variable reports the current value of one style variable.
func (r *Registry) Variable(name string) (string, bool) {
	value, ok := r.vars[name]
	return value, ok
}

// StyleSheet renders the accumulated style variables as a :root block,
// sorted by name so the output is deterministic.
func (r *Registry) StyleSheet() string {
	names := make([]string, 0, len(r.vars))
	for name := range r.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sheet strings.Builder
	sheet.WriteString(":root {\n")
	for _, name := range names {
		fmt.Fprintf(&sheet, "  %s: %s;\n", name, r.vars[name])
	}
	sheet.WriteString("}\n")
	return sheet.String()
}
