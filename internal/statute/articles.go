package statute

// constitutionalArticles maps each domain to the constitutional articles
// most often invoked for it.
var constitutionalArticles = map[string][]string{
	"criminal_law":       {"Article 21", "Article 22", "Article 20"},
	"cyber_crime":        {"Article 21", "Article 19(1)(a)"},
	"employment_law":     {"Article 14", "Article 16", "Article 21", "Article 23", "Article 43"},
	"family_law":         {"Article 14", "Article 15", "Article 21", "Article 39"},
	"property_law":       {"Article 300A", "Article 14", "Article 21"},
	"consumer_law":       {"Article 19", "Article 21", "Article 38"},
	"financial_fraud":    {"Article 14", "Article 21", "Article 300A"},
	"medical_negligence": {"Article 21"},
	"accident_law":       {"Article 21"},
	"elder_abuse":        {"Article 21", "Article 41"},
}

// ArticlesFor returns the constitutional articles relevant to a domain,
// or nil for an unknown domain.
func ArticlesFor(dom string) []string {
	arts, ok := constitutionalArticles[dom]
	if !ok {
		return nil
	}
	out := make([]string, len(arts))
	copy(out, arts)
	return out
}
