package theme

import (
	"errors"
	"strings"
	"testing"
)

type stubStore struct {
	value   string
	loadErr error
	saveErr error
	saves   []string
}

func (s *stubStore) Load() (string, error) { return s.value, s.loadErr }

func (s *stubStore) Save(id string) error {
	s.saves = append(s.saves, id)
	return s.saveErr
}

func skinWithID(id string) Definition {
	def := testBase()
	def.ID = id
	def.Name = strings.ToUpper(id)
	return def
}

func themeClasses(bodyClass string) []string {
	var found []string
	for _, class := range strings.Fields(bodyClass) {
		if strings.HasPrefix(class, "theme-") {
			found = append(found, class)
		}
	}
	return found
}

func TestRegisterRejectsMissingID(t *testing.T) {
	reg := NewRegistry(testBase(), nil)
	reg.Register(Definition{Name: "Anonymous"})

	if len(reg.All()) != 0 {
		t.Fatalf("expected no registrations, got %d", len(reg.All()))
	}
	if reg.Set("") {
		t.Fatal("expected activation of empty id to fail")
	}
	if reg.Current() != nil {
		t.Fatal("expected no current theme after rejected registration")
	}
}

func TestSetActivatesAndSwapsBodyMarker(t *testing.T) {
	reg := NewRegistry(testBase(), nil)
	reg.Register(skinWithID("alpha"))
	reg.Register(skinWithID("beta"))

	if !reg.Set("alpha") {
		t.Fatal("expected activation of alpha to succeed")
	}
	if reg.Current().ID != "alpha" {
		t.Fatalf("expected current id alpha, got %q", reg.Current().ID)
	}
	if got := themeClasses(reg.BodyClass()); len(got) != 1 || got[0] != "theme-alpha" {
		t.Fatalf("expected exactly theme-alpha marker, got %v", got)
	}

	if !reg.Set("beta") {
		t.Fatal("expected activation of beta to succeed")
	}
	if got := themeClasses(reg.BodyClass()); len(got) != 1 || got[0] != "theme-beta" {
		t.Fatalf("expected beta to replace alpha marker, got %v", got)
	}
}

func TestSetUnknownIDLeavesStateUntouched(t *testing.T) {
	reg := NewRegistry(testBase(), nil)
	reg.Register(skinWithID("alpha"))
	reg.Set("alpha")

	if reg.Set("nonexistent") {
		t.Fatal("expected activation of unknown id to fail")
	}
	if reg.Current().ID != "alpha" {
		t.Fatalf("expected current theme unchanged, got %q", reg.Current().ID)
	}
}

func TestSetPersistsBestEffort(t *testing.T) {
	store := &stubStore{saveErr: errors.New("disk full")}
	reg := NewRegistry(testBase(), store)
	reg.Register(skinWithID("alpha"))

	if !reg.Set("alpha") {
		t.Fatal("expected activation to succeed despite save failure")
	}
	if len(store.saves) != 1 || store.saves[0] != "alpha" {
		t.Fatalf("expected one save attempt for alpha, got %v", store.saves)
	}
}

func TestLoadSavedResolution(t *testing.T) {
	cases := []struct {
		name  string
		store *stubStore
		want  string
	}{
		{"no persisted value", &stubStore{}, "fallback"},
		{"read failure", &stubStore{loadErr: errors.New("corrupt")}, "fallback"},
		{"unregistered persisted id", &stubStore{value: "ghost"}, "fallback"},
		{"registered persisted id", &stubStore{value: "saved"}, "saved"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry(testBase(), tt.store)
			reg.Register(skinWithID("fallback"))
			reg.Register(skinWithID("saved"))

			if !reg.LoadSaved("fallback") {
				t.Fatal("expected load to end in a successful activation")
			}
			if reg.Current().ID != tt.want {
				t.Fatalf("expected %q active, got %q", tt.want, reg.Current().ID)
			}
		})
	}
}

func TestSubscribersFireOnEveryActivation(t *testing.T) {
	reg := NewRegistry(testBase(), nil)
	reg.Register(skinWithID("alpha"))

	type change struct{ next, prev string }
	var seen []change
	reg.OnChange(func(next, prev *Definition) {
		entry := change{next: next.ID}
		if prev != nil {
			entry.prev = prev.ID
		}
		seen = append(seen, entry)
	})

	reg.Set("alpha")
	reg.Set("alpha")

	if len(seen) != 2 {
		t.Fatalf("expected subscribers to fire on redundant activation, got %d calls", len(seen))
	}
	if seen[0].next != "alpha" || seen[0].prev != "" {
		t.Fatalf("expected first notification (alpha, nil), got %+v", seen[0])
	}
	if seen[1].next != "alpha" || seen[1].prev != "alpha" {
		t.Fatalf("expected second notification (alpha, alpha), got %+v", seen[1])
	}
}

func TestOptionsFollowRegistrationOrder(t *testing.T) {
	reg := NewRegistry(testBase(), nil)
	for _, id := range []string{"zeta", "alpha", "mu"} {
		reg.Register(skinWithID(id))
	}

	options := reg.Options()
	if len(options) != 3 {
		t.Fatalf("expected three options, got %d", len(options))
	}
	for i, want := range []string{"zeta", "alpha", "mu"} {
		if options[i].ID != want {
			t.Fatalf("expected option %d to be %q, got %q", i, want, options[i].ID)
		}
	}
}

func TestReRegistrationOverwritesAndKeepsOrder(t *testing.T) {
	reg := NewRegistry(testBase(), nil)
	reg.Register(skinWithID("alpha"))
	reg.Register(skinWithID("beta"))

	replacement := skinWithID("alpha")
	replacement.Name = "ALPHA MARK II"
	reg.Register(replacement)

	options := reg.Options()
	if len(options) != 2 {
		t.Fatalf("expected two options after overwrite, got %d", len(options))
	}
	if options[0].ID != "alpha" || options[0].Name != "ALPHA MARK II" {
		t.Fatalf("expected overwritten alpha first, got %+v", options[0])
	}
}

func TestAllReturnsDetachedCopy(t *testing.T) {
	reg := NewRegistry(testBase(), nil)
	reg.Register(skinWithID("alpha"))

	all := reg.All()
	delete(all, "alpha")
	if len(reg.All()) != 1 {
		t.Fatal("expected registry unaffected by mutation of the returned map")
	}
}

func TestAccessorFallbacksWithoutActiveTheme(t *testing.T) {
	reg := NewRegistry(testBase(), nil)

	if got := reg.Color(RolePrimary); got != "#ffffff" {
		t.Fatalf("expected white fallback color, got %q", got)
	}
	if got := reg.Text("unknown-key"); got != "unknown-key" {
		t.Fatalf("expected key echoed back, got %q", got)
	}
	if got := reg.Babble(); got != "Complete." {
		t.Fatalf("expected fixed babble fallback, got %q", got)
	}
}

func TestAccessorsUseActiveTheme(t *testing.T) {
	reg := NewRegistry(testBase(), nil)
	reg.Register(skinWithID("alpha"))
	reg.Set("alpha")

	if got := reg.Color(RolePrimary); got != "#0ff" {
		t.Fatalf("expected active palette color, got %q", got)
	}
	if got := reg.Text("wall"); got != "firewall segment" {
		t.Fatalf("expected active terminology, got %q", got)
	}
}

func TestRenderFacadeFallsBackToBase(t *testing.T) {
	reg := NewRegistry(testBase(), nil)

	out := renderToString(t, reg.RenderNode(NodeNormal))
	if !strings.Contains(out, "node-core") {
		t.Fatalf("expected base procedural node with core, got %s", out)
	}
}

func TestRenderFacadeResolvesActiveThemeAtCallTime(t *testing.T) {
	reg := NewRegistry(testBase(), nil)

	sprite := skinWithID("sprite")
	sprite.UsesVisualAssets = true
	sprite.Renderer = Sprite{}
	sprite.Assets = AssetSet{Paths: map[Element]string{ElementNode: "/assets/relay.png"}}
	reg.Register(sprite)

	before := renderToString(t, reg.RenderNode(NodeNormal))
	reg.Set("sprite")
	after := renderToString(t, reg.RenderNode(NodeNormal))

	if !strings.Contains(before, "node-core") {
		t.Fatalf("expected procedural node before activation, got %s", before)
	}
	if strings.Contains(after, "node-core") || !strings.Contains(after, "relay.png") {
		t.Fatalf("expected sprite node after activation, got %s", after)
	}
}
