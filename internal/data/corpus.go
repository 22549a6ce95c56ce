package data

import "github.com/nyayasetu/classifier/internal/domain"

// trainingCorpus is the labelled seed corpus for the statistical models.
// Phrasings mirror how complainants actually describe incidents at legal
// aid desks, including the informal register. Every subdomain has at least
// two examples so the per-domain subdomain models can train.
var trainingCorpus = []domain.TrainingExample{
	// criminal_law
	{Text: "my phone was stolen from my pocket in the crowded market", Domain: "criminal_law", Subdomain: "theft"},
	{Text: "someone stole my mobile phone at the airport while i was waiting", Domain: "criminal_law", Subdomain: "theft"},
	{Text: "thief broke into my house at night and stole cash and jewellery", Domain: "criminal_law", Subdomain: "theft"},
	{Text: "my wallet was stolen in the bus by a pickpocket", Domain: "criminal_law", Subdomain: "theft"},
	{Text: "two men on a bike snatched my gold chain near the temple", Domain: "criminal_law", Subdomain: "robbery"},
	{Text: "i was robbed at knifepoint and they took my purse and phone", Domain: "criminal_law", Subdomain: "robbery"},
	{Text: "a group of men attacked me and beat me badly outside the shop", Domain: "criminal_law", Subdomain: "assault"},
	{Text: "my neighbour assaulted me with a stick and i got injured", Domain: "criminal_law", Subdomain: "assault"},
	{Text: "my son was kidnapped on his way back from school", Domain: "criminal_law", Subdomain: "kidnapping"},
	{Text: "unknown persons abducted my brother and are demanding ransom", Domain: "criminal_law", Subdomain: "kidnapping"},
	{Text: "he is threatening to kill me if i go to the police", Domain: "criminal_law", Subdomain: "criminal_intimidation"},
	{Text: "i am getting threats and intimidation from local goons to vacate", Domain: "criminal_law", Subdomain: "criminal_intimidation"},
	{Text: "my uncle was murdered and the police are not arresting the accused", Domain: "criminal_law", Subdomain: "murder"},
	{Text: "they killed my husband over a land dispute", Domain: "criminal_law", Subdomain: "murder"},

	// cyber_crime
	{Text: "someone hacked my email account and changed the password", Domain: "cyber_crime", Subdomain: "hacking"},
	{Text: "my facebook account was hacked and the hacker is posting from it", Domain: "cyber_crime", Subdomain: "hacking"},
	{Text: "someone hacked my online account and i cannot login anymore", Domain: "cyber_crime", Subdomain: "hacking"},
	{Text: "i shared an otp on a fake call and money was taken through upi", Domain: "cyber_crime", Subdomain: "online_fraud"},
	{Text: "i clicked a phishing link and lost money in an online transaction", Domain: "cyber_crime", Subdomain: "online_fraud"},
	{Text: "fake customer care number took my card details and did online fraud", Domain: "cyber_crime", Subdomain: "online_fraud"},
	{Text: "someone made a fake profile with my photos and is impersonating me", Domain: "cyber_crime", Subdomain: "identity_theft"},
	{Text: "my aadhaar and pan details were misused to take a sim card", Domain: "cyber_crime", Subdomain: "identity_theft"},
	{Text: "i am receiving abusive and obscene messages on instagram daily", Domain: "cyber_crime", Subdomain: "cyberbullying"},
	{Text: "a person is trolling and harassing me on social media with threats", Domain: "cyber_crime", Subdomain: "cyberbullying"},
	{Text: "my company database was leaked by a former employee", Domain: "cyber_crime", Subdomain: "data_theft"},
	{Text: "confidential customer data was copied and sold from our server", Domain: "cyber_crime", Subdomain: "data_theft"},

	// employment_law
	{Text: "my boss is not giving my salary for the last three months", Domain: "employment_law", Subdomain: "salary_issues"},
	{Text: "my employer has not paid my pending wages and dues", Domain: "employment_law", Subdomain: "salary_issues"},
	{Text: "the company is holding my salary and overtime payment", Domain: "employment_law", Subdomain: "salary_issues"},
	{Text: "i was terminated from my job without any notice or reason", Domain: "employment_law", Subdomain: "wrongful_termination"},
	{Text: "the manager fired me illegally after i asked for leave", Domain: "employment_law", Subdomain: "wrongful_termination"},
	{Text: "company forced me to resign without notice pay", Domain: "employment_law", Subdomain: "wrongful_termination"},
	{Text: "my senior is harassing me at the workplace with inappropriate comments", Domain: "employment_law", Subdomain: "workplace_harassment"},
	{Text: "a colleague touches me inappropriately and the office is ignoring my complaint", Domain: "employment_law", Subdomain: "workplace_harassment"},
	{Text: "my employer has not paid my gratuity after retirement", Domain: "employment_law", Subdomain: "retirement_benefits"},
	{Text: "company is not releasing my provident fund and pension dues", Domain: "employment_law", Subdomain: "retirement_benefits"},

	// family_law
	{Text: "my husband beats me daily and abuses me in front of the children", Domain: "family_law", Subdomain: "domestic_violence"},
	{Text: "my husband beats me and my in-laws torture me mentally", Domain: "family_law", Subdomain: "domestic_violence"},
	{Text: "i am facing cruelty and violence from my husband at home", Domain: "family_law", Subdomain: "domestic_violence"},
	{Text: "i want divorce from my wife due to constant cruelty", Domain: "family_law", Subdomain: "divorce"},
	{Text: "my wife left me two years ago and i want mutual divorce", Domain: "family_law", Subdomain: "divorce"},
	{Text: "my ex husband is not letting me meet my child after separation", Domain: "family_law", Subdomain: "child_custody"},
	{Text: "i want custody of my children after the divorce", Domain: "family_law", Subdomain: "child_custody"},
	{Text: "my husband is refusing to pay maintenance for me and my daughter", Domain: "family_law", Subdomain: "maintenance"},
	{Text: "i need alimony and monthly expenses from my separated husband", Domain: "family_law", Subdomain: "maintenance"},
	{Text: "my in-laws are demanding dowry and harassing me for more gold", Domain: "family_law", Subdomain: "dowry_harassment"},
	{Text: "husband and his family are asking for dowry cash and threatening to throw me out", Domain: "family_law", Subdomain: "dowry_harassment"},

	// property_law
	{Text: "my neighbour has encroached two feet of my plot and built a wall", Domain: "property_law", Subdomain: "illegal_possession"},
	{Text: "local goons have illegally occupied my ancestral land", Domain: "property_law", Subdomain: "illegal_possession"},
	{Text: "my landlord is forcing me to vacate without notice and kept my deposit", Domain: "property_law", Subdomain: "landlord_tenant"},
	{Text: "tenant is not paying rent and refuses to vacate my flat", Domain: "property_law", Subdomain: "landlord_tenant"},
	{Text: "the builder sold the same flat to two buyers with forged registry", Domain: "property_law", Subdomain: "property_fraud"},
	{Text: "someone sold my land using fake documents and duplicate papers", Domain: "property_law", Subdomain: "property_fraud"},
	{Text: "my brothers are not giving me my share in our ancestral property", Domain: "property_law", Subdomain: "partition_disputes"},
	{Text: "family dispute over partition of inherited agricultural land", Domain: "property_law", Subdomain: "partition_disputes"},

	// consumer_law
	{Text: "the new fridge i purchased is defective and the seller refuses replacement", Domain: "consumer_law", Subdomain: "defective_products"},
	{Text: "mobile phone stopped working in warranty but the brand is not repairing it", Domain: "consumer_law", Subdomain: "defective_products"},
	{Text: "the courier service lost my parcel and is not compensating", Domain: "consumer_law", Subdomain: "service_deficiency"},
	{Text: "travel agency cancelled my package but charged full amount for poor service", Domain: "consumer_law", Subdomain: "service_deficiency"},
	{Text: "the shop charged me above mrp and sold expired products", Domain: "consumer_law", Subdomain: "unfair_trade"},
	{Text: "misleading advertisement made false claims about the product", Domain: "consumer_law", Subdomain: "unfair_trade"},
	{Text: "i ordered a laptop online but received a brick and the seller denies refund", Domain: "consumer_law", Subdomain: "ecommerce_disputes"},
	{Text: "ecommerce website took payment but never delivered my order", Domain: "consumer_law", Subdomain: "ecommerce_disputes"},

	// financial_fraud
	{Text: "a broker duped me of five lakhs promising double returns on shares", Domain: "financial_fraud", Subdomain: "investment_fraud"},
	{Text: "i invested in a trading scheme and the company vanished with the money", Domain: "financial_fraud", Subdomain: "investment_fraud"},
	{Text: "money was debited from my bank account without my knowledge", Domain: "financial_fraud", Subdomain: "banking_fraud"},
	{Text: "the bank cheque i received bounced and the party is absconding", Domain: "financial_fraud", Subdomain: "banking_fraud"},
	{Text: "a chit fund committee collected deposits from members and ran away", Domain: "financial_fraud", Subdomain: "ponzi_schemes"},
	{Text: "ponzi scheme agents promised monthly interest and cheated the whole village", Domain: "financial_fraud", Subdomain: "ponzi_schemes"},
	{Text: "loan app charged huge hidden interest and is harassing me for recovery", Domain: "financial_fraud", Subdomain: "loan_fraud"},
	{Text: "lender took processing fee for a loan that was never given", Domain: "financial_fraud", Subdomain: "loan_fraud"},

	// medical_negligence
	{Text: "the surgeon operated on the wrong leg of my father", Domain: "medical_negligence", Subdomain: "surgical_negligence"},
	{Text: "doctors left an instrument inside during the surgery", Domain: "medical_negligence", Subdomain: "surgical_negligence"},
	{Text: "the doctor misdiagnosed cancer as an infection and it spread", Domain: "medical_negligence", Subdomain: "misdiagnosis"},
	{Text: "wrong diagnosis report led to months of wrong treatment", Domain: "medical_negligence", Subdomain: "misdiagnosis"},
	{Text: "hospital staff ignored my mother in the ward and her condition worsened", Domain: "medical_negligence", Subdomain: "hospital_negligence"},
	{Text: "the hospital discharged the patient too early without proper care", Domain: "medical_negligence", Subdomain: "hospital_negligence"},
	{Text: "the pharmacy gave expired medicine and my child had a severe reaction", Domain: "medical_negligence", Subdomain: "pharmaceutical"},
	{Text: "wrong drug was prescribed and the medicine caused kidney damage", Domain: "medical_negligence", Subdomain: "pharmaceutical"},

	// accident_law
	{Text: "a speeding truck hit my car on the highway and i got fractures", Domain: "accident_law", Subdomain: "road_accidents"},
	{Text: "rash driving bus collided with my bike and the insurance is not paying claim", Domain: "accident_law", Subdomain: "road_accidents"},
	{Text: "my scooter was hit by a car at the crossing and the driver fled", Domain: "accident_law", Subdomain: "road_accidents"},
	{Text: "i was injured by a machine at the factory due to no safety guard", Domain: "accident_law", Subdomain: "workplace_accidents"},
	{Text: "a worker fell from the construction site scaffolding and died", Domain: "accident_law", Subdomain: "workplace_accidents"},
	{Text: "my father fell in the gap between the train and the platform", Domain: "accident_law", Subdomain: "railway_accidents"},
	{Text: "railway accident at the unmanned crossing injured my family", Domain: "accident_law", Subdomain: "railway_accidents"},

	// elder_abuse
	{Text: "my son beats my elderly father and keeps him locked in a room", Domain: "elder_abuse", Subdomain: "physical_abuse"},
	{Text: "the old lady next door is mistreated and hit by her family", Domain: "elder_abuse", Subdomain: "physical_abuse"},
	{Text: "children forced their aged mother to sign away her property", Domain: "elder_abuse", Subdomain: "financial_exploitation"},
	{Text: "my brother is taking our fathers pension money by force", Domain: "elder_abuse", Subdomain: "financial_exploitation"},
	{Text: "elderly parents abandoned by their son without food or medical care", Domain: "elder_abuse", Subdomain: "neglect"},
	{Text: "my aged uncle is left alone at home with no care by his children", Domain: "elder_abuse", Subdomain: "neglect"},
	{Text: "son is refusing to pay maintenance for his senior citizen parents", Domain: "elder_abuse", Subdomain: "maintenance_refusal"},
	{Text: "children earn well but refuse any support or expenses for old parents", Domain: "elder_abuse", Subdomain: "maintenance_refusal"},
}

// TrainingCorpus returns a copy of the labelled seed corpus.
func TrainingCorpus() []domain.TrainingExample {
	out := make([]domain.TrainingExample, len(trainingCorpus))
	copy(out, trainingCorpus)
	return out
}

// CorpusForDomain returns the seed examples labelled with the given domain.
func CorpusForDomain(d string) []domain.TrainingExample {
	var out []domain.TrainingExample
	for _, ex := range trainingCorpus {
		if ex.Domain == d {
			out = append(out, ex)
		}
	}
	return out
}
