package classifier

import "github.com/nyayasetu/classifier/internal/domain"

// Fixed confidence bands for scenario patterns. Values sit above the commit
// floor so a fired pattern always produces a committed label.
const (
	confidenceCertain  = 0.95
	confidenceHigh     = 0.90
	confidenceStrong   = 0.85
	confidenceModerate = 0.80
	confidenceFair     = 0.75
)

// Pattern priority bands. Higher priority patterns are evaluated first;
// multi-phrase patterns outrank broad single-phrase ones.
const (
	prioritySpecific = 20
	priorityStrong   = 10
	priorityGeneric  = 5
)

// builtinPatterns is the hand-authored scenario table, applied when the
// statistical classifier cannot commit. Every phrase of a pattern must
// occur in the normalized query for the pattern to fire. Order is the
// registration order used for tie-breaking.
func builtinPatterns() []domain.ScenarioPattern {
	patterns := []domain.ScenarioPattern{
		// Criminal law
		{Name: "phone_theft", Phrases: []string{"phone", "stolen"}, Domain: domain.DomainCriminalLaw, Subdomain: "theft", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "wallet_theft", Phrases: []string{"wallet", "stolen"}, Domain: domain.DomainCriminalLaw, Subdomain: "theft", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "chain_snatching", Phrases: []string{"snatched"}, Domain: domain.DomainCriminalLaw, Subdomain: "theft", FixedConfidence: confidenceHigh, SectionNumbers: []string{"bns_304", "bns_303"}, Priority: priorityStrong},
		{Name: "theft_generic", Phrases: []string{"stolen"}, Domain: domain.DomainCriminalLaw, Subdomain: "theft", FixedConfidence: confidenceModerate, Priority: priorityGeneric},
		{Name: "house_breaking", Phrases: []string{"broke into"}, Domain: domain.DomainCriminalLaw, Subdomain: "theft", FixedConfidence: confidenceStrong, SectionNumbers: []string{"bns_305", "bns_329", "bns_303"}, Priority: priorityStrong},
		{Name: "robbery_gunpoint", Phrases: []string{"gunpoint"}, Domain: domain.DomainCriminalLaw, Subdomain: "robbery", FixedConfidence: confidenceCertain, Priority: priorityStrong},
		{Name: "robbery_knifepoint", Phrases: []string{"knifepoint"}, Domain: domain.DomainCriminalLaw, Subdomain: "robbery", FixedConfidence: confidenceCertain, Priority: priorityStrong},
		{Name: "robbery_generic", Phrases: []string{"robbed"}, Domain: domain.DomainCriminalLaw, Subdomain: "robbery", FixedConfidence: confidenceStrong, Priority: priorityGeneric},
		{Name: "assault_beaten", Phrases: []string{"beaten"}, Domain: domain.DomainCriminalLaw, Subdomain: "assault", FixedConfidence: confidenceModerate, Priority: priorityGeneric},
		{Name: "assault_attacked", Phrases: []string{"attacked"}, Domain: domain.DomainCriminalLaw, Subdomain: "assault", FixedConfidence: confidenceModerate, Priority: priorityGeneric},
		{Name: "kidnapping", Phrases: []string{"kidnapped"}, Domain: domain.DomainCriminalLaw, Subdomain: "kidnapping", FixedConfidence: confidenceCertain, Priority: priorityStrong},
		{Name: "death_threat", Phrases: []string{"threatening", "kill"}, Domain: domain.DomainCriminalLaw, Subdomain: "criminal_intimidation", FixedConfidence: confidenceHigh, Priority: prioritySpecific},
		{Name: "murder", Phrases: []string{"murdered"}, Domain: domain.DomainCriminalLaw, Subdomain: "murder", FixedConfidence: confidenceCertain, Priority: priorityStrong},
		{Name: "neighbor_harassment", Phrases: []string{"neighbor"}, Domain: domain.DomainCriminalLaw, Subdomain: "criminal_intimidation", FixedConfidence: confidenceFair, Priority: priorityGeneric},

		// Cyber crime
		{Name: "account_hacked", Phrases: []string{"hacked"}, Domain: domain.DomainCyberCrime, Subdomain: "hacking", FixedConfidence: confidenceHigh, Priority: priorityStrong},
		{Name: "otp_fraud", Phrases: []string{"otp"}, Domain: domain.DomainCyberCrime, Subdomain: "online_fraud", FixedConfidence: confidenceHigh, SectionNumbers: []string{"it_66d", "it_66c", "bns_318"}, Priority: priorityStrong},
		{Name: "upi_fraud", Phrases: []string{"upi"}, Domain: domain.DomainCyberCrime, Subdomain: "online_fraud", FixedConfidence: confidenceStrong, Priority: priorityStrong},
		{Name: "phishing", Phrases: []string{"phishing"}, Domain: domain.DomainCyberCrime, Subdomain: "online_fraud", FixedConfidence: confidenceHigh, Priority: priorityStrong},
		{Name: "fake_website", Phrases: []string{"fake", "website"}, Domain: domain.DomainCyberCrime, Subdomain: "online_fraud", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "identity_theft", Phrases: []string{"identity theft"}, Domain: domain.DomainCyberCrime, Subdomain: "identity_theft", FixedConfidence: confidenceHigh, Priority: prioritySpecific},
		{Name: "fake_profile", Phrases: []string{"fake", "profile"}, Domain: domain.DomainCyberCrime, Subdomain: "identity_theft", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "online_harassment", Phrases: []string{"harassing", "online"}, Domain: domain.DomainCyberCrime, Subdomain: "cyberbullying", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "photo_blackmail", Phrases: []string{"blackmailing", "photos"}, Domain: domain.DomainCyberCrime, Subdomain: "cyberbullying", FixedConfidence: confidenceHigh, SectionNumbers: []string{"it_67", "bns_308"}, Priority: prioritySpecific},

		// Employment law
		{Name: "salary_unpaid", Phrases: []string{"boss", "salary"}, Domain: domain.DomainEmploymentLaw, Subdomain: "salary_issues", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "wages_unpaid", Phrases: []string{"wages"}, Domain: domain.DomainEmploymentLaw, Subdomain: "salary_issues", FixedConfidence: confidenceModerate, Priority: priorityGeneric},
		{Name: "salary_withheld", Phrases: []string{"salary"}, Domain: domain.DomainEmploymentLaw, Subdomain: "salary_issues", FixedConfidence: confidenceFair, Priority: priorityGeneric},
		{Name: "wrongful_termination", Phrases: []string{"fired", "job"}, Domain: domain.DomainEmploymentLaw, Subdomain: "wrongful_termination", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "terminated_without_notice", Phrases: []string{"terminated", "notice"}, Domain: domain.DomainEmploymentLaw, Subdomain: "wrongful_termination", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "workplace_harassment", Phrases: []string{"harassment", "office"}, Domain: domain.DomainEmploymentLaw, Subdomain: "workplace_harassment", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "boss_harassment", Phrases: []string{"boss", "harassing"}, Domain: domain.DomainEmploymentLaw, Subdomain: "workplace_harassment", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "gratuity_denied", Phrases: []string{"gratuity"}, Domain: domain.DomainEmploymentLaw, Subdomain: "retirement_benefits", FixedConfidence: confidenceHigh, Priority: priorityStrong},
		{Name: "pf_withheld", Phrases: []string{"provident fund"}, Domain: domain.DomainEmploymentLaw, Subdomain: "retirement_benefits", FixedConfidence: confidenceHigh, Priority: priorityStrong},

		// Family law
		{Name: "domestic_violence", Phrases: []string{"husband", "beats"}, Domain: domain.DomainFamilyLaw, Subdomain: "domestic_violence", FixedConfidence: confidenceHigh, Priority: prioritySpecific},
		{Name: "husband_abuse", Phrases: []string{"husband", "abuses"}, Domain: domain.DomainFamilyLaw, Subdomain: "domestic_violence", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "dowry_harassment", Phrases: []string{"dowry"}, Domain: domain.DomainFamilyLaw, Subdomain: "dowry_harassment", FixedConfidence: confidenceCertain, Priority: priorityStrong},
		{Name: "divorce", Phrases: []string{"divorce"}, Domain: domain.DomainFamilyLaw, Subdomain: "divorce", FixedConfidence: confidenceHigh, Priority: priorityStrong},
		{Name: "child_custody", Phrases: []string{"custody", "child"}, Domain: domain.DomainFamilyLaw, Subdomain: "child_custody", FixedConfidence: confidenceHigh, Priority: prioritySpecific},
		{Name: "alimony", Phrases: []string{"alimony"}, Domain: domain.DomainFamilyLaw, Subdomain: "maintenance", FixedConfidence: confidenceHigh, Priority: priorityStrong},
		{Name: "maintenance_refused", Phrases: []string{"maintenance", "refusing"}, Domain: domain.DomainFamilyLaw, Subdomain: "maintenance", FixedConfidence: confidenceModerate, Priority: prioritySpecific},

		// Property law
		{Name: "land_grabbed", Phrases: []string{"land", "occupied"}, Domain: domain.DomainPropertyLaw, Subdomain: "illegal_possession", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "encroachment", Phrases: []string{"encroached"}, Domain: domain.DomainPropertyLaw, Subdomain: "illegal_possession", FixedConfidence: confidenceHigh, Priority: priorityStrong},
		{Name: "landlord_dispute", Phrases: []string{"landlord"}, Domain: domain.DomainPropertyLaw, Subdomain: "landlord_tenant", FixedConfidence: confidenceModerate, Priority: priorityGeneric},
		{Name: "security_deposit", Phrases: []string{"rent", "deposit"}, Domain: domain.DomainPropertyLaw, Subdomain: "landlord_tenant", FixedConfidence: confidenceModerate, Priority: prioritySpecific},
		{Name: "forged_documents", Phrases: []string{"property", "forged"}, Domain: domain.DomainPropertyLaw, Subdomain: "property_fraud", FixedConfidence: confidenceHigh, Priority: prioritySpecific},

		// Consumer law
		{Name: "defective_product", Phrases: []string{"defective"}, Domain: domain.DomainConsumerLaw, Subdomain: "defective_products", FixedConfidence: confidenceStrong, Priority: priorityStrong},
		{Name: "warranty_refused", Phrases: []string{"warranty"}, Domain: domain.DomainConsumerLaw, Subdomain: "defective_products", FixedConfidence: confidenceModerate, Priority: priorityGeneric},
		{Name: "refund_refused", Phrases: []string{"refund", "refusing"}, Domain: domain.DomainConsumerLaw, Subdomain: "ecommerce_disputes", FixedConfidence: confidenceModerate, Priority: prioritySpecific},
		{Name: "order_not_delivered", Phrases: []string{"ordered", "delivered"}, Domain: domain.DomainConsumerLaw, Subdomain: "ecommerce_disputes", FixedConfidence: confidenceModerate, Priority: prioritySpecific},

		// Financial fraud
		{Name: "ponzi_scheme", Phrases: []string{"ponzi"}, Domain: domain.DomainFinancialFraud, Subdomain: "ponzi_schemes", FixedConfidence: confidenceCertain, Priority: priorityStrong},
		{Name: "double_money", Phrases: []string{"double", "money"}, Domain: domain.DomainFinancialFraud, Subdomain: "ponzi_schemes", FixedConfidence: confidenceHigh, Priority: prioritySpecific},
		{Name: "investment_cheated", Phrases: []string{"invested", "cheated"}, Domain: domain.DomainFinancialFraud, Subdomain: "investment_fraud", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "cheque_bounce", Phrases: []string{"cheque", "bounced"}, Domain: domain.DomainFinancialFraud, Subdomain: "banking_fraud", FixedConfidence: confidenceHigh, SectionNumbers: []string{"ni_138"}, Priority: prioritySpecific},
		{Name: "loan_app_harassment", Phrases: []string{"loan app"}, Domain: domain.DomainFinancialFraud, Subdomain: "loan_fraud", FixedConfidence: confidenceHigh, Priority: priorityStrong},

		// Medical negligence
		{Name: "surgery_death", Phrases: []string{"surgery", "died"}, Domain: domain.DomainMedicalNegligence, Subdomain: "surgical_negligence", FixedConfidence: confidenceHigh, Priority: prioritySpecific},
		{Name: "wrong_operation", Phrases: []string{"operation", "wrong"}, Domain: domain.DomainMedicalNegligence, Subdomain: "surgical_negligence", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "misdiagnosis", Phrases: []string{"misdiagnosed"}, Domain: domain.DomainMedicalNegligence, Subdomain: "misdiagnosis", FixedConfidence: confidenceHigh, Priority: priorityStrong},
		{Name: "hospital_negligence", Phrases: []string{"hospital", "negligence"}, Domain: domain.DomainMedicalNegligence, Subdomain: "hospital_negligence", FixedConfidence: confidenceStrong, Priority: prioritySpecific},

		// Accident law
		{Name: "hit_and_run", Phrases: []string{"hit and run"}, Domain: domain.DomainAccidentLaw, Subdomain: "road_accidents", FixedConfidence: confidenceHigh, SectionNumbers: []string{"bns_106", "mv_166", "bns_281"}, Priority: priorityStrong},
		{Name: "road_accident", Phrases: []string{"accident"}, Domain: domain.DomainAccidentLaw, Subdomain: "road_accidents", FixedConfidence: confidenceFair, Priority: priorityGeneric},
		{Name: "factory_injury", Phrases: []string{"injured", "factory"}, Domain: domain.DomainAccidentLaw, Subdomain: "workplace_accidents", FixedConfidence: confidenceHigh, Priority: prioritySpecific},
		{Name: "construction_injury", Phrases: []string{"construction", "injured"}, Domain: domain.DomainAccidentLaw, Subdomain: "workplace_accidents", FixedConfidence: confidenceStrong, Priority: prioritySpecific},

		// Elder abuse
		{Name: "senior_citizen_abuse", Phrases: []string{"senior citizen"}, Domain: domain.DomainElderAbuse, FixedConfidence: confidenceModerate, Priority: priorityStrong},
		{Name: "parents_maintenance", Phrases: []string{"parents", "maintenance"}, Domain: domain.DomainElderAbuse, Subdomain: "maintenance_refusal", FixedConfidence: confidenceStrong, Priority: prioritySpecific},
		{Name: "elderly_property_grab", Phrases: []string{"son", "property"}, Domain: domain.DomainElderAbuse, Subdomain: "financial_exploitation", FixedConfidence: confidenceModerate, Priority: prioritySpecific},
	}

	for i := range patterns {
		patterns[i].ID = i + 1
		patterns[i].Enabled = true
	}
	return patterns
}
