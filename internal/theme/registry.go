package theme

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	applog "neuralrecon/internal/log"
)

// PreferenceKey is the durable-storage key the active skin id is saved under.
const PreferenceKey = "gameTheme"

// Store persists the active skin id. Implementations are best-effort: the
// registry logs failures and never propagates them to callers.
type Store interface {
	Load() (string, error)
	Save(id string) error
}

// Subscriber receives the newly active and previously active definitions on
// every activation.
type Subscriber func(next, prev *Definition)

// Option is the projection of a registered skin for a picker control.
type Option struct {
	ID          string
	Name        string
	Description string
}

// Registry owns every registered skin and the currently active one. It is
// constructed once per process and handed to the shell explicitly; all
// mutation happens on the single request goroutine that serves the terminal.
type Registry struct {
	base        Definition
	themes      map[string]*Definition
	order       []string
	current     *Definition
	subscribers []Subscriber
	vars        map[string]string
	bodyClasses []string
	store       Store
}

// NewRegistry builds an empty registry. The base definition is the fallback
// every accessor uses when no skin is active; store may be nil when no
// durable storage is configured.
func NewRegistry(base Definition, store Store) *Registry {
	return &Registry{
		base:        base,
		themes:      make(map[string]*Definition),
		vars:        make(map[string]string),
		bodyClasses: []string{"recon-shell"},
		store:       store,
	}
}

// Register adds a definition under its id. A blank id is logged and skipped.
// Re-registering an id overwrites the earlier definition and keeps its
// original position in the picker order.
func (r *Registry) Register(def Definition) {
	if strings.TrimSpace(def.ID) == "" {
		applog.Error(context.Background(), "theme registration rejected: missing id", "name", def.Name)
		return
	}
	if _, seen := r.themes[def.ID]; !seen {
		r.order = append(r.order, def.ID)
	}
	stored := def
	r.themes[def.ID] = &stored
}

// All returns a shallow copy of the registered definitions. Mutating the
// returned map does not affect the registry.
func (r *Registry) All() map[string]*Definition {
	all := make(map[string]*Definition, len(r.themes))
	for id, def := range r.themes {
		all[id] = def
	}
	return all
}

// Options lists the registered skins for a picker control, in registration
// order.
func (r *Registry) Options() []Option {
	options := make([]Option, 0, len(r.order))
	for _, id := range r.order {
		def := r.themes[id]
		options = append(options, Option{ID: def.ID, Name: def.Name, Description: def.Description})
	}
	return options
}

// Current returns the active definition, or nil before any activation.
func (r *Registry) Current() *Definition {
	return r.current
}

// Base returns the fallback definition.
func (r *Registry) Base() *Definition {
	return &r.base
}

// Set activates the skin with the given id. Unknown ids log and return false
// with no state change. On success the registry projects the skin's palette
// and fonts into the style variables, swaps the body theme marker, saves the
// id best-effort, and notifies every subscriber synchronously in
// subscription order. Redundant activation of the already-active skin runs
// the full sequence again.
func (r *Registry) Set(id string) bool {
	def, ok := r.themes[id]
	if !ok {
		applog.Error(context.Background(), "theme activation failed: unknown id", "id", id)
		return false
	}

	prev := r.current
	r.current = def
	r.applyVariables(def)
	r.swapBodyClass(def.ID)

	if r.store != nil {
		if err := r.store.Save(def.ID); err != nil {
			applog.Warn(context.Background(), "theme preference not persisted", "id", def.ID, "error", err)
		}
	}

	for _, notify := range r.subscribers {
		notify(def, prev)
	}
	return true
}

// LoadSaved resolves the persisted skin id and activates it, substituting
// defaultID when storage fails, holds nothing, or names an unregistered
// skin. It always ends in an activation attempt.
func (r *Registry) LoadSaved(defaultID string) bool {
	id := defaultID
	if r.store != nil {
		saved, err := r.store.Load()
		if err != nil {
			applog.Warn(context.Background(), "theme preference unreadable, using default", "default", defaultID, "error", err)
		} else if saved != "" {
			id = saved
		}
	}
	if _, ok := r.themes[id]; !ok {
		id = defaultID
	}
	return r.Set(id)
}

// OnChange appends a subscriber. There is no unsubscribe: the registry and
// its subscribers live for the whole process.
func (r *Registry) OnChange(fn Subscriber) {
	r.subscribers = append(r.subscribers, fn)
}

// Color resolves a palette role against the active skin, returning plain
// white when no skin is active or the role is unset.
func (r *Registry) Color(role ColorRole) string {
	if r.current != nil {
		if value := r.current.Palette[role]; value != "" {
			return value
		}
	}
	return "#ffffff"
}

// Text resolves a terminology label against the active skin, returning the
// key itself when no skin is active or the key is absent.
func (r *Registry) Text(key string) string {
	if r.current != nil {
		if value := r.current.Terms.Labels[key]; value != "" {
			return value
		}
	}
	return key
}

// Babble delegates to the active skin's flavor generator.
func (r *Registry) Babble() string {
	if r.current == nil {
		return "Complete."
	}
	return r.current.Babble()
}

// BodyClass renders the document body class list, including the single
// active theme marker.
func (r *Registry) BodyClass() string {
	return strings.Join(r.bodyClasses, " ")
}

func (r *Registry) swapBodyClass(id string) {
	kept := r.bodyClasses[:0]
	for _, class := range r.bodyClasses {
		if !strings.HasPrefix(class, "theme-") {
			kept = append(kept, class)
		}
	}
	r.bodyClasses = append(kept, "theme-"+id)
}

// resolve picks the definition render calls go through: the active skin, or
// the base definition when none is active. Resolution happens per call so
// activations take effect immediately.
func (r *Registry) resolve() *Definition {
	if r.current != nil {
		return r.current
	}
	return &r.base
}

// RenderWall draws a wall segment with the active skin.
func (r *Registry) RenderWall(layer int, fault, current bool) templ.Component {
	return r.resolve().RenderWall(layer, fault, current)
}

// RenderPathDot draws a path marker with the active skin.
func (r *Registry) RenderPathDot(layer int, current bool, state PathDotState) templ.Component {
	return r.resolve().RenderPathDot(layer, current, state)
}

// RenderNode draws a dead-end marker with the active skin.
func (r *Registry) RenderNode(state NodeState) templ.Component {
	return r.resolve().RenderNode(state)
}

// RenderStockpile draws a goal marker with the active skin.
func (r *Registry) RenderStockpile(state StockpileState) templ.Component {
	return r.resolve().RenderStockpile(state)
}
