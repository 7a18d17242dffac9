// Package theme implements the terminal's pluggable visual skin system: the
// skin contract, the registry that owns the active skin, CSS custom-property
// projection, and the rendering facade the rest of the shell draws through.
package theme

import (
	"time"

	"github.com/a-h/templ"
)

// ColorRole names a semantic slot in a skin's palette.
type ColorRole string

const (
	RolePrimary      ColorRole = "primary"
	RoleSecondary    ColorRole = "secondary"
	RoleSuccess      ColorRole = "success"
	RoleWarning      ColorRole = "warning"
	RoleError        ColorRole = "error"
	RoleAccent       ColorRole = "accent"
	RoleBackground   ColorRole = "background"
	RoleDimTrace     ColorRole = "dimTrace"
	RoleDefaultLabel ColorRole = "defaultLabel"
	RoleText         ColorRole = "text"
)

// ButtonRole names a UI button by meaning rather than color. Skins map each
// role to a palette role, so a button's meaning stays fixed while its color
// moves with the skin.
type ButtonRole string

const (
	ButtonDefault ButtonRole = "default"
	ButtonAction  ButtonRole = "action"
	ButtonDanger  ButtonRole = "danger"
	ButtonInfo    ButtonRole = "info"
	ButtonSound   ButtonRole = "sound"
)

// FontRole names a typography slot.
type FontRole string

const (
	FontPrimary FontRole = "primary"
	FontMono    FontRole = "mono"
	FontDisplay FontRole = "display"
	FontHeading FontRole = "heading"
)

// Element names a visual primitive that may carry an image asset. A missing
// key in an AssetSet is the absence marker.
type Element string

const (
	ElementWall              Element = "wall"
	ElementPath              Element = "path"
	ElementNode              Element = "node"
	ElementNodeComplete      Element = "node-complete"
	ElementStockpile         Element = "stockpile"
	ElementStockpileComplete Element = "stockpile-complete"
	ElementBackground        Element = "background"
	ElementGridBackground    Element = "grid-background"
)

// LayerCount is the number of parallel fork layers in the maze. Each layer
// gets its own accent color from the active skin.
const LayerCount = 4

// Palette maps semantic color roles to color values.
type Palette map[ColorRole]string

// AssetSet holds a sprite skin's image references. LayerWalls optionally
// provides one wall sprite per fork layer.
type AssetSet struct {
	Paths      map[Element]string
	LayerWalls []string
}

// Terminology carries all operator-facing copy for one skin.
type Terminology struct {
	Labels           map[string]string
	VictoryStats     map[string]string
	Briefing         string
	VaultDescription string
}

// Vocabulary holds the four word pools babble lines are assembled from.
type Vocabulary struct {
	Prefixes []string
	Middles  []string
	Suffixes []string
	Extras   []string
}

// SoundProfile tunes the synth voice used for interface blips.
type SoundProfile struct {
	Enabled  bool
	Pitch    float64
	Waveform string
}

// AnimationProfile tunes the victory wave and ambient pulse timing.
type AnimationProfile struct {
	WaveStagger   time.Duration
	PulseSpeed    float64
	GlowIntensity float64
}

// Definition is one visual skin: palette, typography, terminology, flavor
// vocabulary, tuning profiles, and rendering behavior. Definitions are
// immutable once registered.
type Definition struct {
	ID               string
	Name             string
	Description      string
	UsesVisualAssets bool
	Assets           AssetSet
	Palette          Palette
	ButtonColors     map[ButtonRole]ColorRole
	Fonts            map[FontRole]string
	LayerColors      []ColorRole
	Terms            Terminology
	Vocabulary       Vocabulary
	Sound            SoundProfile
	Animation        AnimationProfile

	// Renderer draws the maze primitives for this skin. A nil Renderer
	// selects the procedural renderer.
	Renderer Renderer

	// VictoryHook runs at mission completion and receives the engine's
	// default animation routine. A nil hook runs the default directly.
	VictoryHook func(defaultSequence func())
}

// Derive builds a skin from a base definition by value copy plus wholesale
// field replacement. Map-valued fields assigned in override replace the
// base's map entirely, never key-by-key: a skin that assigns a partial
// palette loses the roles it does not redeclare. Fields left untouched alias
// the base's values.
func Derive(base Definition, override func(*Definition)) Definition {
	derived := base
	if override != nil {
		override(&derived)
	}
	return derived
}

func (d *Definition) renderer() Renderer {
	if d.Renderer != nil {
		return d.Renderer
	}
	return Procedural{}
}

// RenderWall draws one wall segment of the given fork layer.
func (d *Definition) RenderWall(layer int, fault, current bool) templ.Component {
	return d.renderer().Wall(d, layer, fault, current)
}

// RenderPathDot draws a traversed-path marker.
func (d *Definition) RenderPathDot(layer int, current bool, state PathDotState) templ.Component {
	return d.renderer().PathDot(d, layer, current, state)
}

// RenderNode draws a dead-end marker.
func (d *Definition) RenderNode(state NodeState) templ.Component {
	return d.renderer().Node(d, state)
}

// RenderStockpile draws a goal marker.
func (d *Definition) RenderStockpile(state StockpileState) templ.Component {
	return d.renderer().Stockpile(d, state)
}

// PlayVictory invokes the skin's victory hook with the engine's default
// animation routine. The hook may run custom behavior before or instead of
// the default; every shipped skin runs the default unmodified.
func (d *Definition) PlayVictory(defaultSequence func()) {
	if d.VictoryHook != nil {
		d.VictoryHook(defaultSequence)
		return
	}
	if defaultSequence != nil {
		defaultSequence()
	}
}

// Color returns the palette value for the given role, or "" when unset.
func (d *Definition) Color(role ColorRole) string {
	return d.Palette[role]
}
