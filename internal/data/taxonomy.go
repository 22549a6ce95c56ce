// Package data holds the curated legal taxonomy and training corpus for the
// classifier. All of it is static, hand-reviewed content.
package data

import "sort"

// subdomains maps each legal domain to its finer categories.
// The taxonomy follows the complaint categories used by Indian legal aid
// intake desks.
var subdomains = map[string][]string{
	"criminal_law": {
		"theft",
		"robbery",
		"assault",
		"kidnapping",
		"criminal_intimidation",
		"murder",
	},
	"cyber_crime": {
		"hacking",
		"online_fraud",
		"identity_theft",
		"cyberbullying",
		"data_theft",
	},
	"employment_law": {
		"salary_issues",
		"wrongful_termination",
		"workplace_harassment",
		"retirement_benefits",
	},
	"family_law": {
		"domestic_violence",
		"divorce",
		"child_custody",
		"maintenance",
		"dowry_harassment",
	},
	"property_law": {
		"illegal_possession",
		"landlord_tenant",
		"property_fraud",
		"partition_disputes",
	},
	"consumer_law": {
		"defective_products",
		"service_deficiency",
		"unfair_trade",
		"ecommerce_disputes",
	},
	"financial_fraud": {
		"investment_fraud",
		"banking_fraud",
		"ponzi_schemes",
		"loan_fraud",
	},
	"medical_negligence": {
		"surgical_negligence",
		"misdiagnosis",
		"hospital_negligence",
		"pharmaceutical",
	},
	"accident_law": {
		"road_accidents",
		"workplace_accidents",
		"railway_accidents",
	},
	"elder_abuse": {
		"physical_abuse",
		"financial_exploitation",
		"neglect",
		"maintenance_refusal",
	},
}

// domainKeywords maps each domain to the vocabulary that characterizes it.
// Used by the keyword scorer as a deterministic complement to the
// statistical classifier.
var domainKeywords = map[string][]string{
	"criminal_law": {
		"stolen", "theft", "thief", "robbery", "robbed", "snatched",
		"snatching", "pickpocket", "assault", "attacked", "beaten",
		"murder", "killed", "kidnapped", "kidnapping", "abducted",
		"threatening", "threatened", "intimidation", "weapon", "knife",
		"wallet", "purse", "chain", "burglary",
	},
	"cyber_crime": {
		"hacked", "hacking", "hacker", "phishing", "otp", "upi",
		"password", "email", "facebook", "instagram", "whatsapp",
		"cyber", "website", "app", "link", "malware", "profile",
		"morphed", "online", "internet", "login", "spam",
	},
	"employment_law": {
		"salary", "wages", "boss", "employer", "company", "office",
		"job", "fired", "terminated", "termination", "resignation",
		"gratuity", "provident", "pension", "overtime", "workplace",
		"manager", "colleague", "notice", "increment", "appraisal",
	},
	"family_law": {
		"husband", "wife", "marriage", "married", "divorce", "custody",
		"child", "children", "maintenance", "alimony", "dowry",
		"in laws", "beats", "cruelty", "domestic", "violence",
		"separated", "streedhan",
	},
	"property_law": {
		"property", "land", "plot", "house", "flat", "rent", "tenant",
		"landlord", "eviction", "possession", "encroached", "builder",
		"registry", "partition", "ancestral", "title", "deed", "lease",
	},
	"consumer_law": {
		"product", "defective", "refund", "warranty", "service",
		"delivery", "ordered", "shop", "seller", "brand", "replacement",
		"bill", "overcharged", "expired", "guarantee", "purchased",
	},
	"financial_fraud": {
		"investment", "invested", "scheme", "returns", "ponzi", "chit",
		"fund", "shares", "trading", "broker", "loan", "emi", "bank",
		"cheque", "bounced", "deposit", "interest", "duped", "lakhs",
	},
	"medical_negligence": {
		"doctor", "hospital", "surgery", "operation", "treatment",
		"medicine", "diagnosis", "patient", "negligence", "prescription",
		"nursing", "ward", "icu", "clinic", "report",
	},
	"accident_law": {
		"accident", "collision", "hit", "vehicle", "car", "bike",
		"truck", "bus", "injured", "injury", "fracture", "insurance",
		"claim", "compensation", "driver", "rash", "road", "railway",
	},
	"elder_abuse": {
		"elderly", "aged", "parents", "father", "mother", "senior",
		"citizen", "abandoned", "neglect", "pension", "mistreated",
		"old", "care",
	},
}

// subdomainKeywords maps (domain, subdomain) to the vocabulary that
// distinguishes the subdomain within its domain. Blended with the
// per-domain statistical model during subdomain classification.
var subdomainKeywords = map[string]map[string][]string{
	"criminal_law": {
		"theft":                 {"stolen", "theft", "thief", "pickpocket", "wallet", "purse", "phone", "mobile", "bag", "burglary"},
		"robbery":               {"robbery", "robbed", "snatched", "snatching", "gunpoint", "knifepoint", "chain", "forcibly"},
		"assault":               {"assault", "attacked", "beaten", "hit", "injured", "fight", "hurt", "slapped"},
		"kidnapping":            {"kidnapped", "kidnapping", "abducted", "abduction", "ransom", "missing"},
		"criminal_intimidation": {"threatening", "threatened", "threat", "intimidation", "blackmail", "extortion"},
		"murder":                {"murder", "murdered", "killed", "death", "dead", "body"},
	},
	"cyber_crime": {
		"hacking":        {"hacked", "hacking", "hacker", "password", "login", "account", "unauthorized"},
		"online_fraud":   {"otp", "upi", "phishing", "link", "transaction", "payment", "refund", "fake", "fraud"},
		"identity_theft": {"identity", "impersonating", "fake", "profile", "aadhaar", "pan", "documents", "morphed"},
		"cyberbullying":  {"bullying", "harassing", "trolling", "abusive", "messages", "threatening", "obscene"},
		"data_theft":     {"data", "leaked", "breach", "database", "confidential", "copied"},
	},
	"employment_law": {
		"salary_issues":        {"salary", "wages", "unpaid", "pending", "months", "paid", "dues", "arrears"},
		"wrongful_termination": {"terminated", "fired", "removed", "dismissal", "notice", "resignation", "forced"},
		"workplace_harassment": {"harassment", "harassing", "colleague", "inappropriate", "touching", "comments", "hostile"},
		"retirement_benefits":  {"gratuity", "pension", "provident", "pf", "retirement", "settlement", "dues"},
	},
	"family_law": {
		"domestic_violence": {"beats", "beating", "violence", "abuses", "cruelty", "torture", "hits"},
		"divorce":           {"divorce", "separation", "separated", "mutual", "desertion"},
		"child_custody":     {"custody", "child", "children", "visitation", "guardian"},
		"maintenance":       {"maintenance", "alimony", "expenses", "support", "refusing"},
		"dowry_harassment":  {"dowry", "demanding", "in laws", "streedhan", "gold", "cash"},
	},
	"property_law": {
		"illegal_possession": {"encroached", "occupied", "possession", "grabbed", "trespassing", "captured"},
		"landlord_tenant":    {"rent", "tenant", "landlord", "eviction", "vacate", "deposit", "lease"},
		"property_fraud":     {"registry", "forged", "documents", "sold", "builder", "duplicate", "fake"},
		"partition_disputes": {"partition", "ancestral", "share", "brothers", "inheritance", "family"},
	},
	"consumer_law": {
		"defective_products": {"defective", "damaged", "broken", "faulty", "warranty", "replacement"},
		"service_deficiency": {"service", "deficiency", "poor", "delayed", "negligent", "charges"},
		"unfair_trade":       {"overcharged", "mrp", "expired", "adulterated", "misleading", "false"},
		"ecommerce_disputes": {"online", "ordered", "delivery", "refund", "return", "website", "seller"},
	},
	"financial_fraud": {
		"investment_fraud": {"investment", "invested", "shares", "trading", "broker", "returns", "profit"},
		"banking_fraud":    {"bank", "cheque", "account", "withdrawal", "debited", "card", "atm"},
		"ponzi_schemes":    {"ponzi", "scheme", "chit", "double", "committee", "members", "agents"},
		"loan_fraud":       {"loan", "emi", "interest", "lender", "processing", "fee", "recovery"},
	},
	"medical_negligence": {
		"surgical_negligence": {"surgery", "operation", "surgeon", "wrong", "left", "instrument"},
		"misdiagnosis":        {"diagnosis", "misdiagnosed", "wrong", "report", "test", "detected"},
		"hospital_negligence": {"hospital", "staff", "nursing", "ward", "discharge", "icu", "admitted"},
		"pharmaceutical":      {"medicine", "drug", "prescription", "expired", "reaction", "pharmacy"},
	},
	"accident_law": {
		"road_accidents":      {"road", "car", "bike", "truck", "bus", "collision", "rash", "driving"},
		"workplace_accidents": {"factory", "machine", "site", "construction", "safety", "injured"},
		"railway_accidents":   {"train", "railway", "platform", "station", "track", "fell"},
	},
	"elder_abuse": {
		"physical_abuse":         {"beaten", "hit", "mistreated", "hurt", "locked"},
		"financial_exploitation": {"property", "pension", "money", "transfer", "forced", "signed"},
		"neglect":                {"abandoned", "neglect", "food", "medical", "care", "alone"},
		"maintenance_refusal":    {"maintenance", "refusing", "support", "expenses", "children"},
	},
}

// Domains returns all legal domains in sorted order.
func Domains() []string {
	out := make([]string, 0, len(subdomains))
	for d := range subdomains {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// IsValidDomain checks if the given label is a known legal domain.
func IsValidDomain(domain string) bool {
	_, ok := subdomains[domain]
	return ok
}

// SubdomainsFor returns the subdomains of a domain, or nil for an unknown
// domain.
func SubdomainsFor(domain string) []string {
	subs, ok := subdomains[domain]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// DomainKeywords returns the characteristic keywords of a domain, or nil
// for an unknown domain.
func DomainKeywords(domain string) []string {
	kws, ok := domainKeywords[domain]
	if !ok {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// SubdomainKeywords returns the keywords distinguishing a subdomain within
// its domain, or nil if the pair is unknown.
func SubdomainKeywords(domain, subdomain string) []string {
	subs, ok := subdomainKeywords[domain]
	if !ok {
		return nil
	}
	kws, ok := subs[subdomain]
	if !ok {
		return nil
	}
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}
