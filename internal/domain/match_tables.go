package domain

// MatchRule maps a normalized skill name (or a fragment of one) to an icon identifier.
// When Target is not registered, Fallback is tried before the resolver's default icon.
type MatchRule struct {
	Key      string
	Target   string
	Fallback string
}

// Icon identifiers the tables fall back to.
const (
	IconCode       = "Code"
	IconDatabase   = "Database"
	IconUsers      = "Users"
	IconComponent  = "Component"
	IconTypeScript = "SiTypescript"
)

// primaryRules is the technology table. Declaration order decides which rule wins
// when several keys are contained in a skill name; do not sort it.
var primaryRules = []MatchRule{
	{Key: "golang", Target: "SiGo"},
	{Key: "go", Target: "SiGo"},
	{Key: "firebase", Target: "SiFirebase"},
	{Key: "stripe", Target: "SiStripe"},
	{Key: "drizzle", Target: "SiDrizzle", Fallback: IconDatabase},
	{Key: "spring boot", Target: "SiSpring"},
	{Key: "springboot", Target: "SiSpring"},
	{Key: "shadcn", Target: "SiShadcnui", Fallback: IconComponent},
	{Key: "java", Target: "AiOutlineJava"},
	{Key: "angular", Target: "SiAngular"},
	{Key: "aws", Target: "SiAmazonwebservices"},
	{Key: "clerk", Target: "SiClerk", Fallback: IconUsers},
	{Key: "amazon web services", Target: "SiAmazonwebservices"},
	{Key: "docker", Target: "SiDocker"},
	{Key: "figma", Target: "SiFigma"},
	{Key: "flutter", Target: "SiFlutter"},
	{Key: "google cloud platform", Target: "SiGooglecloud"},
	{Key: "gcp", Target: "SiGooglecloud"},
	{Key: "gemini", Target: "SiGooglegemini"},
	{Key: "googlecloud", Target: "SiGooglecloud"},
	{Key: "git", Target: "SiGit"},
	{Key: "github actions", Target: "SiGithubactions"},
	{Key: "githubactions", Target: "SiGithubactions"},
	{Key: "graphql", Target: "SiGraphql"},
	{Key: "jenkins", Target: "SiJenkins"},
	{Key: "jest", Target: "SiJest"},
	{Key: "kubernetes", Target: "SiKubernetes"},
	{Key: "mongodb", Target: "SiMongodb", Fallback: IconDatabase},
	{Key: "next.js", Target: "SiNextdotjs"},
	{Key: "nextjs", Target: "SiNextdotjs"},
	{Key: "node.js", Target: "SiNodedotjs"},
	{Key: "nodejs", Target: "SiNodedotjs"},
	{Key: "continuous learning", Target: "BookOpenText"},
	{Key: "openai api", Target: "SiOpenai"},
	{Key: "critical thinking", Target: "Lightbulb"},
	{Key: "openai", Target: "SiOpenai"},
	{Key: "postgresql", Target: "SiPostgresql", Fallback: IconDatabase},
	{Key: "postgres", Target: "SiPostgresql", Fallback: IconDatabase},
	{Key: "python", Target: "SiPython"},
	{Key: "react", Target: "SiReact"},
	{Key: "team work", Target: "Shapes"},
	{Key: "react native", Target: "SiReact"},
	{Key: "reactnative", Target: "SiReact"},
	{Key: "redis", Target: "SiRedis", Fallback: IconDatabase},
	{Key: "tailwind css", Target: "SiTailwindcss"},
	{Key: "tailwindcss", Target: "SiTailwindcss"},
	{Key: "tailwind", Target: "SiTailwindcss"},
	{Key: "typescript", Target: IconTypeScript},
	{Key: "ts", Target: IconTypeScript},
	{Key: "vercel", Target: "SiVercel"},
	{Key: "websockets", Target: "Webhook"},
	{Key: "websocket", Target: "Webhook"},
}

// fallbackRules covers practices and soft skills. Keys here are not length-guarded;
// keep them at least 3 characters long.
var fallbackRules = []MatchRule{
	{Key: "drizzle", Target: IconDatabase},
	{Key: "drizzle orm", Target: IconDatabase},
	{Key: "clerk", Target: IconUsers},
	{Key: "kafka", Target: "SiApachekafka"},
	{Key: "apache kafka", Target: "SiApachekafka"},
	{Key: "shadcn", Target: IconComponent},
	{Key: "convex", Target: IconDatabase},
	{Key: "web accessibility", Target: "Accessibility"},
	{Key: "accessibility", Target: "Accessibility"},
	{Key: "agile/scrum", Target: "Calendar"},
	{Key: "agile", Target: "Calendar"},
	{Key: "scrum", Target: "Calendar"},
	{Key: "communication", Target: "MessageCircle"},
	{Key: "rest api design", Target: IconCode},
	{Key: "rest api", Target: IconCode},
	{Key: "responsive design", Target: IconCode},
	{Key: "problem solving", Target: "Brain"},
}

// PrimaryRules returns a copy of the technology table in declaration order.
func PrimaryRules() []MatchRule {
	out := make([]MatchRule, len(primaryRules))
	copy(out, primaryRules)
	return out
}

// FallbackRules returns a copy of the fallback table in declaration order.
func FallbackRules() []MatchRule {
	out := make([]MatchRule, len(fallbackRules))
	copy(out, fallbackRules)
	return out
}
