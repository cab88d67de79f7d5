package domain

import "strings"

// Stage names the resolution step that produced an icon.
type Stage string

const (
	StageExplicit      Stage = "explicit"
	StageExact         Stage = "exact"
	StagePrimary       Stage = "primary_substring"
	StageReservedToken Stage = "reserved_token"
	StageFallback      Stage = "fallback_substring"
	StageDefault       Stage = "default"
)

const (
	minSubstringKeyLen = 3
	reservedShortToken = "ts"
)

// SkillQuery is the input to a single icon lookup.
type SkillQuery struct {
	SkillName      string
	ExplicitIconID string
}

// Resolution is an icon together with the stage and table key that selected it.
type Resolution struct {
	Icon  Icon   `json:"icon"`
	Stage Stage  `json:"stage"`
	Key   string `json:"key,omitempty"`
}

// IconResolver maps skill names and explicit icon identifiers to icons.
// It never fails: unmatched names resolve to the default icon.
type IconResolver struct {
	registry    *Registry
	primary     []MatchRule
	fallback    []MatchRule
	defaultID   string
	defaultIcon Icon
}

// ResolverOption configures IconResolver.
type ResolverOption func(*IconResolver)

// WithDefaultIcon overrides the identifier used by the default stage.
func WithDefaultIcon(id string) ResolverOption {
	return func(r *IconResolver) {
		if strings.TrimSpace(id) != "" {
			r.defaultID = strings.TrimSpace(id)
		}
	}
}

// WithRules replaces the primary and fallback tables. Order is preserved as given.
func WithRules(primary, fallback []MatchRule) ResolverOption {
	return func(r *IconResolver) {
		r.primary = append([]MatchRule(nil), primary...)
		r.fallback = append([]MatchRule(nil), fallback...)
	}
}

// NewIconResolver returns a resolver over reg using the built-in tables.
func NewIconResolver(reg *Registry, opts ...ResolverOption) *IconResolver {
	r := &IconResolver{
		registry:  reg,
		primary:   primaryRules,
		fallback:  fallbackRules,
		defaultID: IconCode,
	}
	for _, opt := range opts {
		opt(r)
	}

	if ic, ok := reg.Lookup(r.defaultID); ok {
		r.defaultIcon = ic
	} else {
		r.defaultIcon = Icon{ID: r.defaultID, Source: SourceBuiltin, Slug: "code", Glyph: "</>"}
	}
	return r
}

// Registry returns the registry the resolver reads from.
func (r *IconResolver) Registry() *Registry {
	return r.registry
}

// DefaultIcon returns the icon used when nothing matches.
func (r *IconResolver) DefaultIcon() Icon {
	return r.defaultIcon
}

// Resolve returns the best icon for a skill. explicitIconID wins when it is registered.
func (r *IconResolver) Resolve(skillName, explicitIconID string) Icon {
	return r.Explain(skillName, explicitIconID).Icon
}

// ResolveQuery is Resolve for a SkillQuery.
func (r *IconResolver) ResolveQuery(q SkillQuery) Icon {
	return r.Resolve(q.SkillName, q.ExplicitIconID)
}

// ExplainQuery is Explain for a SkillQuery.
func (r *IconResolver) ExplainQuery(q SkillQuery) Resolution {
	return r.Explain(q.SkillName, q.ExplicitIconID)
}

// Explain runs the resolution stages in order and reports which one matched:
// explicit id, exact name, primary substring, reserved "ts" token, fallback substring, default.
func (r *IconResolver) Explain(skillName, explicitIconID string) Resolution {
	if explicitIconID != "" {
		if ic, ok := r.registry.Lookup(explicitIconID); ok {
			return Resolution{Icon: ic, Stage: StageExplicit, Key: explicitIconID}
		}
	}

	name := NormalizeSkillName(skillName)

	for _, rule := range r.primary {
		if rule.Key == name {
			return Resolution{Icon: r.iconFor(rule), Stage: StageExact, Key: rule.Key}
		}
	}

	for _, rule := range r.primary {
		// "ts" would match inside words like "websockets".
		if rule.Key == reservedShortToken || len(rule.Key) < minSubstringKeyLen {
			continue
		}
		if containsEither(name, rule.Key) {
			return Resolution{Icon: r.iconFor(rule), Stage: StagePrimary, Key: rule.Key}
		}
	}

	if name == reservedShortToken || name == "typescript" {
		return Resolution{
			Icon:  r.iconFor(MatchRule{Key: name, Target: IconTypeScript}),
			Stage: StageReservedToken,
			Key:   name,
		}
	}

	for _, rule := range r.fallback {
		if containsEither(name, rule.Key) {
			return Resolution{Icon: r.iconFor(rule), Stage: StageFallback, Key: rule.Key}
		}
	}

	return Resolution{Icon: r.defaultIcon, Stage: StageDefault}
}

func (r *IconResolver) iconFor(rule MatchRule) Icon {
	if ic, ok := r.registry.Lookup(rule.Target); ok {
		return ic
	}
	if ic, ok := r.registry.Lookup(rule.Fallback); ok {
		return ic
	}
	return r.defaultIcon
}

// NormalizeSkillName lowercases and trims a skill name for table matching.
func NormalizeSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func containsEither(name, key string) bool {
	return strings.Contains(name, key) || strings.Contains(key, name)
}
