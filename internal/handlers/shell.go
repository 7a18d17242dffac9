package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	applog "neuralrecon/internal/log"
	"neuralrecon/internal/theme"
	"neuralrecon/internal/views/layout"
	"neuralrecon/internal/views/pages"
)

// Home renders the public landing page.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	briefing := "Jack in, trace the forks, reach the vault."
	if registry != nil {
		if def := registry.Current(); def != nil {
			briefing = def.Terms.Briefing
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	component := layout.Page("Neural Recon Terminal", bodyClass(), pages.Home(briefing))
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render landing page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Shell renders the game shell: briefing, legend, theme picker, and the
// board mount point, all resolved from the active skin.
func Shell(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if registry == nil {
		http.Error(w, "theme registry not configured", http.StatusServiceUnavailable)
		return
	}

	def := registry.Current()
	if def == nil {
		def = registry.Base()
	}

	callsign := ""
	status := ""
	if sessionManager != nil {
		callsign = sessionManager.GetString(r.Context(), sessionCallsignKey)
		status = sessionManager.PopString(r.Context(), sessionFlashKey)
	}

	data := pages.ShellData{
		Callsign:      callsign,
		Heading:       def.Name,
		Briefing:      def.Terms.Briefing,
		VaultNote:     def.Terms.VaultDescription,
		BabbleLine:    registry.Babble(),
		ActiveID:      def.ID,
		Options:       registry.Options(),
		Legend:        legendEntries(),
		WaveStaggerMS: pages.WaveStaggerMS(def.Animation.WaveStagger),
		StatusMessage: status,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var component templ.Component
	if isHTMX(r) {
		component = pages.Shell(data)
	} else {
		component = layout.Page(def.Name, registry.BodyClass(), pages.Shell(data))
	}
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render shell", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// legendEntries renders one sample of each maze primitive under its
// skin-specific label.
func legendEntries() []pages.LegendEntry {
	return []pages.LegendEntry{
		{Label: registry.Text("wall"), Cell: registry.RenderWall(0, false, true)},
		{Label: registry.Text("path"), Cell: registry.RenderPathDot(0, true, theme.PathDotState{})},
		{Label: registry.Text("node"), Cell: registry.RenderNode(theme.NodeNormal)},
		{Label: registry.Text("stockpile"), Cell: registry.RenderStockpile(theme.StockpileNormal)},
	}
}
