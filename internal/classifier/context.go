package classifier

// Context keyword sets for override disambiguation. When patterns from both
// a physical-crime domain and cyber_crime match the same query, the setting
// words decide which reading wins.
var (
	physicalContextTerms = []string{
		"airport", "street", "road", "market", "bus", "train",
		"pocket", "bag", "shop", "home", "house", "park", "station",
	}

	cyberContextTerms = []string{
		"online", "internet", "website", "app", "password", "account",
		"otp", "upi", "email", "facebook", "instagram", "whatsapp",
		"phishing", "link",
	}

	// Strong employment words. Their presence prefers employment_law over
	// generic harassment readings.
	employmentContextTerms = []string{
		"boss", "salary", "employer", "wages", "office", "company",
		"job", "manager",
	}
)

// contextSignals holds per-context distinct keyword hit counts for a query.
type contextSignals struct {
	physical   int
	cyber      int
	employment int
}

// detectContext counts distinct context keywords present in the query's
// token set.
func detectContext(queryTokens map[string]bool) contextSignals {
	return contextSignals{
		physical:   countPresent(queryTokens, physicalContextTerms),
		cyber:      countPresent(queryTokens, cyberContextTerms),
		employment: countPresent(queryTokens, employmentContextTerms),
	}
}

// prefersPhysical reports a physical setting with no cyber indicators.
func (c contextSignals) prefersPhysical() bool {
	return c.physical > 0 && c.cyber == 0
}

// prefersCyber reports a cyber setting with no physical indicators.
func (c contextSignals) prefersCyber() bool {
	return c.cyber > 0 && c.physical == 0
}

// prefersEmployment reports the presence of strong employment words.
func (c contextSignals) prefersEmployment() bool {
	return c.employment > 0
}

// countPresent counts how many of the given terms appear in the token set.
func countPresent(queryTokens map[string]bool, terms []string) int {
	n := 0
	for _, term := range terms {
		if queryTokens[term] {
			n++
		}
	}
	return n
}
