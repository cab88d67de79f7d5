package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/caiohportella/skillglyph/internal/domain"
	"github.com/caiohportella/skillglyph/internal/ports"
)

func TestBuildRegistry_MergesInOrder(t *testing.T) {
	sets := testSets()
	sources := []ports.IconSource{
		fakeSource{name: domain.SourceCustom, set: domain.IconSet{Source: domain.SourceCustom, Icons: []domain.Icon{{ID: "SiReact", Slug: "react-custom"}}}},
		fakeSource{name: domain.SourceLucide, set: sets[0]},
		fakeSource{name: domain.SourceSimpleIcons, set: sets[1]},
	}

	reg, err := NewBuildRegistry(sources).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	ic, ok := reg.Lookup("SiReact")
	if !ok || ic.Slug != "react-custom" {
		t.Fatalf("expected custom SiReact to win, got %+v", ic)
	}
	if got := reg.Identifiers()[0]; got != "SiReact" {
		t.Fatalf("expected custom icon registered first, got %q", got)
	}
}

func TestBuildRegistry_FailingSourceIsLoggedAndSkipped(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	sources := []ports.IconSource{
		fakeSource{name: domain.SourceLucide, set: testSets()[0]},
		fakeSource{name: domain.SourceAntDesign, err: errBoom},
	}

	reg, err := NewBuildRegistry(sources, WithRegistryLogger(log)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if reg.Len() != 4 {
		t.Fatalf("expected 4 icons, got %d", reg.Len())
	}

	stats := reg.Stats()
	if len(stats) != 2 || stats[1].Source != domain.SourceAntDesign || stats[1].Added != 0 {
		t.Fatalf("expected empty stats for failed source, got %+v", stats)
	}

	out := buf.String()
	if !strings.Contains(out, "registry.source.failed") || !strings.Contains(out, "boom") {
		t.Fatalf("expected failure to be logged, got:\n%s", out)
	}
	if !strings.Contains(out, "registry.built") {
		t.Fatalf("expected registry.built log, got:\n%s", out)
	}
}

func TestBuildRegistry_AllSourcesFail(t *testing.T) {
	sources := []ports.IconSource{
		fakeSource{name: domain.SourceLucide, err: errBoom},
		fakeSource{name: domain.SourceSimpleIcons, err: errBoom},
	}

	_, err := NewBuildRegistry(sources).Execute(context.Background())
	if !domain.IsKind(err, domain.KindEmptyRegistry) {
		t.Fatalf("expected empty_registry, got %v", err)
	}
}

func TestBuildRegistry_NoSources(t *testing.T) {
	_, err := NewBuildRegistry(nil).Execute(context.Background())
	if !domain.IsKind(err, domain.KindEmptyRegistry) {
		t.Fatalf("expected empty_registry, got %v", err)
	}
}

func TestBuildRegistry_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []ports.IconSource{fakeSource{name: domain.SourceLucide, set: testSets()[0]}}
	if _, err := NewBuildRegistry(sources).Execute(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestBuildRegistry_LogsUncoveredRules(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	sets := testSets()
	sources := []ports.IconSource{
		fakeSource{name: domain.SourceLucide, set: sets[0]},
		fakeSource{name: domain.SourceSimpleIcons, set: sets[1]},
	}
	reg, err := NewBuildRegistry(sources, WithRegistryLogger(log)).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	keys := uncoveredRules(reg)
	has := map[string]bool{}
	for _, k := range keys {
		has[k] = true
	}
	if !has["firebase"] {
		t.Fatalf("expected firebase uncovered without SiFirebase, got %v", keys)
	}
	if has["golang"] || has["drizzle"] {
		t.Fatalf("expected registered target and registered fallback to count as covered, got %v", keys)
	}
	if !strings.Contains(buf.String(), "registry.rules.uncovered") {
		t.Fatalf("expected uncovered rules to be logged, got:\n%s", buf.String())
	}
}
