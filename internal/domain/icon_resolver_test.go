package domain

import (
	"sync"
	"testing"
)

func newTestResolver(t *testing.T, omit ...string) *IconResolver {
	t.Helper()
	return NewIconResolver(mustRegistry(t, fixtureSets(omit...)...))
}

func TestResolve_Table(t *testing.T) {
	r := newTestResolver(t)

	cases := []struct {
		name     string
		skill    string
		explicit string
		wantID   string
		wantStg  Stage
	}{
		{"case insensitive exact", "React", "", "SiReact", StageExact},
		{"exact multiword", "react native", "", "SiReact", StageExact},
		{"trimmed", "  Golang  ", "", "SiGo", StageExact},
		{"short key exact", "Go", "", "SiGo", StageExact},
		{"typescript exact", "TypeScript", "", IconTypeScript, StageExact},
		{"ts exact", "ts", "", IconTypeScript, StageExact},
		{"websockets is not typescript", "WebSockets", "", "Webhook", StageExact},
		{"websockets substring skips ts", "WebSockets API", "", "Webhook", StagePrimary},
		{"explicit wins over name", "", "SiReact", "SiReact", StageExplicit},
		{"explicit beats table", "Docker", "SiKubernetes", "SiKubernetes", StageExplicit},
		{"unknown explicit falls through", "React", "SiNope", "SiReact", StageExact},
		{"name contains key", "Spring Boot Microservices", "", "SiSpring", StagePrimary},
		{"key contains name", "Node", "", "SiNodedotjs", StagePrimary},
		{"declaration order decides", "JavaScript", "", "AiOutlineJava", StagePrimary},
		{"fallback table", "Apache Kafka", "", "SiApachekafka", StageFallback},
		{"fallback soft skill", "Problem Solving", "", "Brain", StageFallback},
		{"fallback slash key", "Agile/Scrum", "", "Calendar", StageFallback},
		{"fallback communication", "Communication", "", "MessageCircle", StageFallback},
		{"unknown", "Completely Unknown Skill XYZ", "", IconCode, StageDefault},
		{"empty name matches first long key", "", "", "SiGo", StagePrimary},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := r.Explain(c.skill, c.explicit)
			if got.Icon.ID != c.wantID {
				t.Fatalf("Explain(%q, %q) icon = %q, want %q", c.skill, c.explicit, got.Icon.ID, c.wantID)
			}
			if got.Stage != c.wantStg {
				t.Fatalf("Explain(%q, %q) stage = %q, want %q", c.skill, c.explicit, got.Stage, c.wantStg)
			}
			if r.Resolve(c.skill, c.explicit) != got.Icon {
				t.Fatalf("Resolve and Explain disagree for %q", c.skill)
			}
		})
	}
}

func TestResolve_WebSocketsNeverTypeScript(t *testing.T) {
	r := newTestResolver(t)
	for _, s := range []string{"WebSockets", "websockets", "WebSocket", "Realtime websockets"} {
		if got := r.Resolve(s, ""); got.ID == IconTypeScript {
			t.Fatalf("Resolve(%q) returned the TypeScript icon", s)
		}
	}
}

func TestResolve_RuleFallbackIdentifier(t *testing.T) {
	r := newTestResolver(t, "SiDrizzle", "SiMongodb")

	if got := r.Resolve("Drizzle ORM", ""); got.ID != IconDatabase {
		t.Fatalf("expected Database when SiDrizzle is missing, got %q", got.ID)
	}
	if got := r.Resolve("MongoDB", ""); got.ID != IconDatabase {
		t.Fatalf("expected Database when SiMongodb is missing, got %q", got.ID)
	}
}

func TestResolve_MissingTargetUsesDefault(t *testing.T) {
	r := newTestResolver(t, "SiFigma")
	if got := r.Resolve("Figma", ""); got.ID != IconCode {
		t.Fatalf("expected default icon, got %q", got.ID)
	}
}

func TestResolve_DefaultIsTotalWithoutCode(t *testing.T) {
	reg := mustRegistry(t, IconSet{Source: SourceLucide, Icons: []Icon{{ID: "Database", Slug: "database"}}})
	r := NewIconResolver(reg)

	got := r.Resolve("Completely Unknown Skill XYZ", "")
	if got.ID != IconCode || got.Source != SourceBuiltin {
		t.Fatalf("expected builtin placeholder, got %+v", got)
	}
	if got.Symbol() == "" {
		t.Fatalf("expected placeholder to have a symbol")
	}
}

func TestResolve_WithDefaultIcon(t *testing.T) {
	reg := mustRegistry(t, fixtureSets()...)
	r := NewIconResolver(reg, WithDefaultIcon("Brain"))

	if got := r.Resolve("Completely Unknown Skill XYZ", ""); got.ID != "Brain" {
		t.Fatalf("expected configured default, got %q", got.ID)
	}
	if r.DefaultIcon().ID != "Brain" {
		t.Fatalf("expected DefaultIcon Brain")
	}
}

func TestResolve_ReservedTokenStage(t *testing.T) {
	// Without "ts"/"typescript" rules only the reserved-token stage can match them.
	primary := []MatchRule{{Key: "react", Target: "SiReact"}}
	r := NewIconResolver(mustRegistry(t, fixtureSets()...), WithRules(primary, nil))

	for _, s := range []string{"ts", "TypeScript"} {
		got := r.Explain(s, "")
		if got.Stage != StageReservedToken || got.Icon.ID != IconTypeScript {
			t.Fatalf("Explain(%q) = %+v, want reserved token TypeScript", s, got)
		}
	}
}

func TestResolve_ShortPrimaryKeysNeverMatchBySubstring(t *testing.T) {
	primary := []MatchRule{
		{Key: "go", Target: "SiGo"},
		{Key: "ts", Target: IconTypeScript},
	}
	r := NewIconResolver(mustRegistry(t, fixtureSets()...), WithRules(primary, nil))

	if got := r.Explain("mongo", ""); got.Stage != StageDefault {
		t.Fatalf("expected short key not to match inside mongo, got %+v", got)
	}
	if got := r.Explain("charts", ""); got.Stage != StageDefault {
		t.Fatalf("expected ts not to match inside charts, got %+v", got)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	r := newTestResolver(t)
	for _, s := range []string{"React", "Kafka", "", "whatever", "ts"} {
		a := r.Resolve(s, "")
		b := r.Resolve(s, "")
		if a != b {
			t.Fatalf("Resolve(%q) not idempotent: %+v vs %+v", s, a, b)
		}
	}
}

func TestResolveQuery(t *testing.T) {
	r := newTestResolver(t)
	got := r.ResolveQuery(SkillQuery{SkillName: "Docker"})
	if got.ID != "SiDocker" {
		t.Fatalf("expected SiDocker, got %q", got.ID)
	}
}

func TestExplainQuery_UsesRecordIcon(t *testing.T) {
	r := newTestResolver(t)
	rec := SkillRecord{Name: "Docker", Icon: "SiKubernetes"}
	got := r.ExplainQuery(rec.Query())
	if got.Icon.ID != "SiKubernetes" || got.Stage != StageExplicit {
		t.Fatalf("expected explicit SiKubernetes, got %+v", got)
	}
	if got != r.Explain(rec.Name, rec.Icon) {
		t.Fatalf("ExplainQuery and Explain disagree")
	}
}

func TestResolve_Concurrent(t *testing.T) {
	r := newTestResolver(t)
	skills := []string{"React", "WebSockets API", "Apache Kafka", "ts", "Go", "Problem Solving", "", "Unknown XYZ"}

	want := make([]Resolution, len(skills))
	for i, s := range skills {
		want[i] = r.Explain(s, "")
	}

	const workers = 32
	errs := make(chan string, workers*len(skills))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range skills {
				s := skills[(i+w)%len(skills)]
				got := r.Explain(s, "")
				if got != want[(i+w)%len(skills)] {
					errs <- s
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for s := range errs {
		t.Errorf("concurrent Explain(%q) differs from the serial result", s)
	}
}

func TestMatchTables_Invariants(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range PrimaryRules() {
		if seen[r.Key] {
			t.Errorf("duplicate primary key %q", r.Key)
		}
		seen[r.Key] = true
		if r.Key != NormalizeSkillName(r.Key) {
			t.Errorf("primary key %q is not normalized", r.Key)
		}
	}

	for _, r := range FallbackRules() {
		// The fallback stage has no length guard; short keys would match inside unrelated words.
		if len(r.Key) < minSubstringKeyLen {
			t.Errorf("fallback key %q is shorter than %d", r.Key, minSubstringKeyLen)
		}
		if r.Key != NormalizeSkillName(r.Key) {
			t.Errorf("fallback key %q is not normalized", r.Key)
		}
	}
}

func TestMatchTables_ReturnCopies(t *testing.T) {
	p := PrimaryRules()
	p[0].Key = "mutated"
	if PrimaryRules()[0].Key == "mutated" {
		t.Fatalf("expected PrimaryRules to return a copy")
	}
}
