package theme

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PathDotState carries the visual flags of a path marker. The flags are
// independent: a dot can be complete and faulted at once, and the renderers
// do not enforce exclusivity.
type PathDotState struct {
	Complete bool
	Fault    bool
	Erratic  bool
}

// NodeState describes a dead-end marker.
type NodeState int

const (
	NodeNormal NodeState = iota
	NodeComplete
	NodeConflict
	NodeErratic
)

// StockpileState describes a goal marker.
type StockpileState int

const (
	StockpileNormal StockpileState = iota
	StockpileComplete
	StockpileRetrieved
)

// Renderer draws the four maze primitives for one skin. Implementations are
// stateless; the definition supplies palette and asset data per call.
type Renderer interface {
	Wall(d *Definition, layer int, fault, current bool) templ.Component
	PathDot(d *Definition, layer int, current bool, state PathDotState) templ.Component
	Node(d *Definition, state NodeState) templ.Component
	Stockpile(d *Definition, state StockpileState) templ.Component
}

// Procedural renders every primitive as styled markup with no image assets.
// It is the renderer the base terminal skin and any skin without an explicit
// renderer use.
type Procedural struct{}

// Sprite renders primitives from a skin's image assets, falling back to the
// procedural markup for any element the skin supplies no asset for.
type Sprite struct{}

func markup(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

func classAttr(classes []string) string {
	return templ.EscapeString(strings.Join(classes, " "))
}

func wallClasses(layer int, fault, current bool) []string {
	classes := []string{"cell-wall", fmt.Sprintf("layer-%d", layer)}
	if !current {
		classes = append(classes, "dimmed")
	}
	if fault {
		if current {
			classes = append(classes, "fault")
		} else {
			classes = append(classes, "fault-dim")
		}
	}
	return classes
}

func pathDotClasses(layer int, current bool, state PathDotState) []string {
	classes := []string{"path-dot", fmt.Sprintf("layer-%d", layer)}
	if !current {
		classes = append(classes, "dimmed")
	}
	if state.Complete {
		classes = append(classes, "complete")
	}
	if state.Fault {
		classes = append(classes, "fault")
	}
	if state.Erratic {
		classes = append(classes, "erratic")
	}
	return classes
}

func nodeStateClass(state NodeState) string {
	switch state {
	case NodeComplete:
		return "complete"
	case NodeConflict:
		return "conflict"
	case NodeErratic:
		return "erratic"
	}
	return ""
}

func stockpileStateClass(state StockpileState) string {
	switch state {
	case StockpileComplete:
		return "complete"
	case StockpileRetrieved:
		return "retrieved"
	}
	return ""
}

func appendNonEmpty(classes []string, class string) []string {
	if class == "" {
		return classes
	}
	return append(classes, class)
}

// Wall renders a wall segment, dimmed off the current layer, with a fault
// flag (dim variant off-layer) when breached.
func (Procedural) Wall(d *Definition, layer int, fault, current bool) templ.Component {
	return markup(fmt.Sprintf(`<div class="%s"></div>`, classAttr(wallClasses(layer, fault, current))))
}

// PathDot renders a traversed-path marker with independent state flags.
func (Procedural) PathDot(d *Definition, layer int, current bool, state PathDotState) templ.Component {
	return markup(fmt.Sprintf(`<div class="%s"></div>`, classAttr(pathDotClasses(layer, current, state))))
}

// Node renders a dead-end marker. Procedural nodes always nest a core
// sub-element.
func (Procedural) Node(d *Definition, state NodeState) templ.Component {
	classes := appendNonEmpty([]string{"dead-node"}, nodeStateClass(state))
	return markup(fmt.Sprintf(`<div class="%s"><span class="node-core"></span></div>`, classAttr(classes)))
}

// Stockpile renders a goal marker. Complete and retrieved stay distinct
// classes in procedural skins.
func (Procedural) Stockpile(d *Definition, state StockpileState) templ.Component {
	classes := appendNonEmpty([]string{"stockpile"}, stockpileStateClass(state))
	return markup(fmt.Sprintf(`<div class="%s"></div>`, classAttr(classes)))
}

func spriteMarkup(classes []string, asset string) templ.Component {
	return markup(fmt.Sprintf(`<div class="%s" style="background-image:url('%s')"></div>`,
		classAttr(append(classes, "sprite")), templ.EscapeString(asset)))
}

func (d *Definition) wallAsset(layer int) string {
	if layer >= 0 && layer < len(d.Assets.LayerWalls) && d.Assets.LayerWalls[layer] != "" {
		return d.Assets.LayerWalls[layer]
	}
	return d.Assets.Paths[ElementWall]
}

// Wall renders a wall segment from the per-layer sprite when available.
func (Sprite) Wall(d *Definition, layer int, fault, current bool) templ.Component {
	asset := d.wallAsset(layer)
	if asset == "" {
		return Procedural{}.Wall(d, layer, fault, current)
	}
	return spriteMarkup(wallClasses(layer, fault, current), asset)
}

// PathDot renders a traversed-path marker over the path sprite.
func (Sprite) PathDot(d *Definition, layer int, current bool, state PathDotState) templ.Component {
	asset := d.Assets.Paths[ElementPath]
	if asset == "" {
		return Procedural{}.PathDot(d, layer, current, state)
	}
	return spriteMarkup(pathDotClasses(layer, current, state), asset)
}

// Node renders a dead-end marker. When an image asset applies, the core
// sub-element is omitted entirely; that asymmetry with the procedural
// renderer is deliberate and per-skin.
func (Sprite) Node(d *Definition, state NodeState) templ.Component {
	asset := d.Assets.Paths[ElementNode]
	if state == NodeComplete && d.Assets.Paths[ElementNodeComplete] != "" {
		asset = d.Assets.Paths[ElementNodeComplete]
	}
	if asset == "" {
		return Procedural{}.Node(d, state)
	}
	classes := appendNonEmpty([]string{"dead-node"}, nodeStateClass(state))
	return spriteMarkup(classes, asset)
}

// Stockpile renders a goal marker. Complete and retrieved both select the
// complete sprite, so the two states are visually indistinguishable in
// sprite skins.
func (Sprite) Stockpile(d *Definition, state StockpileState) templ.Component {
	asset := d.Assets.Paths[ElementStockpile]
	if state == StockpileComplete || state == StockpileRetrieved {
		if complete := d.Assets.Paths[ElementStockpileComplete]; complete != "" {
			asset = complete
		}
	}
	if asset == "" {
		return Procedural{}.Stockpile(d, state)
	}
	classes := appendNonEmpty([]string{"stockpile"}, stockpileStateClass(state))
	return spriteMarkup(classes, asset)
}
