// Package statute holds the static statutory reference tables: BNS 2023
// sections, IT Act sections, special acts, procedural guidance, and
// constitutional articles, keyed by classification output.
package statute

import (
	"strings"

	"github.com/nyayasetu/classifier/internal/domain"
)

// maxSections caps how many sections a single classification returns.
const maxSections = 6

// catalog is the master table of statutory provisions, keyed by a short
// stable identifier. Section numbers follow the Bharatiya Nyaya Sanhita
// 2023 renumbering, not the repealed IPC.
var catalog = map[string]domain.Section{
	// Bharatiya Nyaya Sanhita 2023
	"bns_103": {SectionNumber: "103", Title: "Punishment for murder", Description: "Whoever commits murder shall be punished with death or imprisonment for life, and shall also be liable to fine.", Category: domain.CategoryBNS},
	"bns_106": {SectionNumber: "106", Title: "Causing death by negligence", Description: "Causing death by any rash or negligent act not amounting to culpable homicide, including negligence by a registered medical practitioner.", Category: domain.CategoryBNS},
	"bns_115": {SectionNumber: "115", Title: "Voluntarily causing hurt", Description: "Whoever voluntarily causes hurt shall be punished with imprisonment up to one year, or with fine, or with both.", Category: domain.CategoryBNS},
	"bns_117": {SectionNumber: "117", Title: "Voluntarily causing grievous hurt", Description: "Whoever voluntarily causes grievous hurt shall be punished with imprisonment up to seven years and fine.", Category: domain.CategoryBNS},
	"bns_125": {SectionNumber: "125", Title: "Act endangering life or personal safety", Description: "Doing any act so rashly or negligently as to endanger human life or the personal safety of others.", Category: domain.CategoryBNS},
	"bns_137": {SectionNumber: "137", Title: "Kidnapping", Description: "Kidnapping from India or from lawful guardianship, punishable with imprisonment up to seven years and fine.", Category: domain.CategoryBNS},
	"bns_140": {SectionNumber: "140", Title: "Kidnapping for ransom", Description: "Kidnapping or abducting in order to murder or for ransom, punishable with death or imprisonment for life.", Category: domain.CategoryBNS},
	"bns_281": {SectionNumber: "281", Title: "Rash driving or riding on a public way", Description: "Driving any vehicle or riding on any public way so rashly or negligently as to endanger human life.", Category: domain.CategoryBNS},
	"bns_303": {SectionNumber: "303", Title: "Theft", Description: "Dishonestly taking any movable property out of the possession of any person without consent.", Category: domain.CategoryBNS},
	"bns_304": {SectionNumber: "304", Title: "Snatching", Description: "Theft is snatching if the offender suddenly or quickly or forcibly seizes any movable property from any person.", Category: domain.CategoryBNS},
	"bns_305": {SectionNumber: "305", Title: "Theft in a dwelling house or means of transportation", Description: "Theft in a building, tent or vessel used as a human dwelling, or in any means of transportation used for carriage of passengers or goods.", Category: domain.CategoryBNS},
	"bns_308": {SectionNumber: "308", Title: "Extortion", Description: "Intentionally putting any person in fear of injury and thereby dishonestly inducing delivery of property.", Category: domain.CategoryBNS},
	"bns_309": {SectionNumber: "309", Title: "Robbery", Description: "Theft or extortion committed with violence or the threat of instant death, hurt, or wrongful restraint.", Category: domain.CategoryBNS},
	"bns_316": {SectionNumber: "316", Title: "Criminal breach of trust", Description: "Dishonest misappropriation or conversion of property entrusted to a person.", Category: domain.CategoryBNS},
	"bns_318": {SectionNumber: "318", Title: "Cheating", Description: "Fraudulently or dishonestly deceiving any person to deliver property or to do or omit anything they would not otherwise do.", Category: domain.CategoryBNS},
	"bns_319": {SectionNumber: "319", Title: "Cheating by personation", Description: "Cheating by pretending to be some other person, or knowingly substituting one person for another.", Category: domain.CategoryBNS},
	"bns_324": {SectionNumber: "324", Title: "Mischief", Description: "Causing destruction of property or any change that destroys or diminishes its value, with intent to cause wrongful loss.", Category: domain.CategoryBNS},
	"bns_329": {SectionNumber: "329", Title: "Criminal trespass", Description: "Entering into or unlawfully remaining upon property in the possession of another with intent to commit an offence or intimidate.", Category: domain.CategoryBNS},
	"bns_351": {SectionNumber: "351", Title: "Criminal intimidation", Description: "Threatening another with injury to person, reputation or property with intent to cause alarm.", Category: domain.CategoryBNS},
	"bns_356": {SectionNumber: "356", Title: "Defamation", Description: "Harming the reputation of a person by words, signs or visible representations.", Category: domain.CategoryBNS},
	"bns_74":  {SectionNumber: "74", Title: "Assault or criminal force to woman with intent to outrage her modesty", Description: "Assault or use of criminal force to any woman intending to outrage or knowing it likely to outrage her modesty.", Category: domain.CategoryBNS},
	"bns_75":  {SectionNumber: "75", Title: "Sexual harassment", Description: "Physical contact and advances, demand for sexual favours, showing pornography, or sexually coloured remarks.", Category: domain.CategoryBNS},
	"bns_79":  {SectionNumber: "79", Title: "Word, gesture or act intended to insult the modesty of a woman", Description: "Uttering any word, making any sound or gesture, or exhibiting any object intending to insult the modesty of a woman.", Category: domain.CategoryBNS},
	"bns_80":  {SectionNumber: "80", Title: "Dowry death", Description: "Death of a woman caused by burns or bodily injury within seven years of marriage with cruelty or harassment for dowry.", Category: domain.CategoryBNS},
	"bns_85":  {SectionNumber: "85", Title: "Husband or relative of husband subjecting a woman to cruelty", Description: "Cruelty by husband or his relatives, punishable with imprisonment up to three years and fine.", Category: domain.CategoryBNS},

	// Information Technology Act 2000
	"it_43":  {SectionNumber: "43", Title: "Penalty for damage to computer, computer system", Description: "Unauthorized access, download, disruption or denial of access to a computer resource attracts compensation to the affected person.", Category: domain.CategoryITAct},
	"it_66":  {SectionNumber: "66", Title: "Computer related offences", Description: "Dishonestly or fraudulently doing any act referred to in section 43, punishable with imprisonment up to three years or fine.", Category: domain.CategoryITAct},
	"it_66c": {SectionNumber: "66C", Title: "Identity theft", Description: "Fraudulent or dishonest use of the electronic signature, password or any other unique identification feature of another person.", Category: domain.CategoryITAct},
	"it_66d": {SectionNumber: "66D", Title: "Cheating by personation by using computer resource", Description: "Cheating by personation using any communication device or computer resource.", Category: domain.CategoryITAct},
	"it_67":  {SectionNumber: "67", Title: "Publishing or transmitting obscene material in electronic form", Description: "Publishing or transmitting obscene material in electronic form, punishable with imprisonment and fine.", Category: domain.CategoryITAct},

	// Labour and employment statutes
	"wages_5":    {SectionNumber: "5", Title: "Time of payment of wages", Description: "Wages must be paid before the expiry of the seventh or tenth day after the last day of the wage period.", Category: domain.CategoryWagesAct},
	"wages_15":   {SectionNumber: "15", Title: "Claims arising out of deductions or delay in payment", Description: "Application to the authority for deducted or delayed wages, with compensation up to ten times the deduction.", Category: domain.CategoryWagesAct},
	"id_25f":     {SectionNumber: "25F", Title: "Conditions precedent to retrenchment of workmen", Description: "No workman employed for one year may be retrenched without notice, notice pay and retrenchment compensation.", Category: domain.CategoryIDAct},
	"posh_4":     {SectionNumber: "4", Title: "Constitution of Internal Complaints Committee", Description: "Every employer of a workplace with ten or more workers must constitute an Internal Complaints Committee.", Category: domain.CategoryPOSHAct},
	"posh_9":     {SectionNumber: "9", Title: "Complaint of sexual harassment", Description: "An aggrieved woman may complain in writing to the Internal Committee within three months of the incident.", Category: domain.CategoryPOSHAct},
	"gratuity_4": {SectionNumber: "4", Title: "Payment of gratuity", Description: "Gratuity is payable on superannuation, retirement or resignation after five years of continuous service.", Category: domain.CategoryGratuityAct},

	// Family statutes
	"dv_12":    {SectionNumber: "12", Title: "Application to Magistrate", Description: "An aggrieved person may apply to the Magistrate for reliefs under the Protection of Women from Domestic Violence Act.", Category: domain.CategoryDVAct},
	"dv_18":    {SectionNumber: "18", Title: "Protection orders", Description: "The Magistrate may prohibit the respondent from committing or aiding any act of domestic violence.", Category: domain.CategoryDVAct},
	"dowry_3":  {SectionNumber: "3", Title: "Penalty for giving or taking dowry", Description: "Giving, taking or abetting the giving or taking of dowry is punishable with imprisonment of not less than five years.", Category: domain.CategoryDowryAct},
	"dowry_4":  {SectionNumber: "4", Title: "Penalty for demanding dowry", Description: "Demanding dowry directly or indirectly from parents, relatives or guardians of a bride or bridegroom is punishable.", Category: domain.CategoryDowryAct},
	"bnss_144": {SectionNumber: "144", Title: "Order for maintenance of wives, children and parents", Description: "A Magistrate may order monthly maintenance for a wife, child or parent unable to maintain themselves.", Category: "BNSS 2023"},

	// Property statutes
	"tpa_54":  {SectionNumber: "54", Title: "Sale of immovable property", Description: "Transfer of ownership of immovable property of value one hundred rupees and upwards can be made only by a registered instrument.", Category: domain.CategoryTransferAct},
	"sra_6":   {SectionNumber: "6", Title: "Suit by person dispossessed of immovable property", Description: "A person dispossessed without consent otherwise than in due course of law may recover possession by suit within six months.", Category: "Specific Relief Act 1963"},
	"rera_31": {SectionNumber: "31", Title: "Filing of complaints with the Authority", Description: "Any aggrieved person may file a complaint with the Real Estate Regulatory Authority against a promoter, allottee or agent.", Category: domain.CategoryRERAAct},
	"rent_x":  {SectionNumber: "State provisions", Title: "Rent control and eviction", Description: "State Rent Control Acts govern eviction grounds, fair rent fixation and deposit disputes between landlords and tenants.", Category: domain.CategoryRentActs},

	// Consumer statutes
	"cpa_2_11": {SectionNumber: "2(11)", Title: "Deficiency in service", Description: "Any fault, imperfection, shortcoming or inadequacy in the quality or manner of performance of a service.", Category: domain.CategoryConsumerAct},
	"cpa_2_47": {SectionNumber: "2(47)", Title: "Unfair trade practice", Description: "A trade practice adopting unfair methods or deceptive practices for promoting sale, use or supply of goods or services.", Category: domain.CategoryConsumerAct},
	"cpa_35":   {SectionNumber: "35", Title: "Complaint to District Commission", Description: "A consumer may file a complaint with the District Commission for goods or services up to one crore rupees in value.", Category: domain.CategoryConsumerAct},

	// Financial statutes
	"ni_138":  {SectionNumber: "138", Title: "Dishonour of cheque for insufficiency of funds", Description: "Dishonour of a cheque for insufficiency of funds is punishable with imprisonment up to two years or fine up to twice the cheque amount.", Category: "Negotiable Instruments Act 1881"},
	"buds_3":  {SectionNumber: "3", Title: "Banning of unregulated deposit schemes", Description: "No deposit taker shall promote, operate, issue advertisements or accept deposits in any unregulated deposit scheme.", Category: domain.CategoryBankingAct},
	"buds_21": {SectionNumber: "21", Title: "Punishment for contravention", Description: "Soliciting or accepting deposits in an unregulated scheme is punishable with imprisonment and fine.", Category: domain.CategoryBankingAct},

	// Accident and compensation statutes
	"mv_166":  {SectionNumber: "166", Title: "Application for compensation", Description: "A claim for compensation arising out of a motor vehicle accident may be made to the Motor Accidents Claims Tribunal.", Category: domain.CategoryMVAct},
	"mv_184":  {SectionNumber: "184", Title: "Driving dangerously", Description: "Driving at a speed or in a manner dangerous to the public is punishable with imprisonment or fine.", Category: domain.CategoryMVAct},
	"ec_3":    {SectionNumber: "3", Title: "Employer's liability for compensation", Description: "The employer is liable to pay compensation if personal injury is caused to an employee by accident arising out of and in the course of employment.", Category: "Employees' Compensation Act 1923"},
	"rail_124": {SectionNumber: "124A", Title: "Compensation on account of untoward incidents", Description: "The railway administration is liable to pay compensation for injury or death in untoward incidents including accidental falling from a train.", Category: domain.CategoryRailwaysAct},

	// Senior citizens statute
	"sc_4":  {SectionNumber: "4", Title: "Maintenance of parents and senior citizens", Description: "A senior citizen unable to maintain himself may apply to the Maintenance Tribunal against children or relatives.", Category: domain.CategorySeniorAct},
	"sc_23": {SectionNumber: "23", Title: "Transfer of property to be void in certain circumstances", Description: "A transfer of property by a senior citizen on condition of care is voidable if the transferee fails to provide the care.", Category: domain.CategorySeniorAct},
	"sc_24": {SectionNumber: "24", Title: "Exposure and abandonment of senior citizen", Description: "Whoever, having the care of a senior citizen, leaves the senior citizen with the intention of wholly abandoning them is punishable.", Category: domain.CategorySeniorAct},
}

// domainSections lists the default sections for each domain, in relevance
// order. Used when the subdomain or query adds nothing more specific.
var domainSections = map[string][]string{
	"criminal_law":       {"bns_303", "bns_309", "bns_115", "bns_351"},
	"cyber_crime":        {"it_66", "it_66c", "it_66d", "bns_318"},
	"employment_law":     {"wages_5", "wages_15", "id_25f", "gratuity_4"},
	"family_law":         {"bns_85", "dv_12", "dv_18", "bnss_144"},
	"property_law":       {"sra_6", "bns_329", "tpa_54", "bns_318"},
	"consumer_law":       {"cpa_35", "cpa_2_11", "cpa_2_47"},
	"financial_fraud":    {"bns_318", "bns_316", "buds_3", "buds_21"},
	"medical_negligence": {"bns_106", "cpa_2_11", "cpa_35", "bns_125"},
	"accident_law":       {"mv_166", "mv_184", "bns_106", "bns_125"},
	"elder_abuse":        {"sc_4", "sc_24", "sc_23", "bns_115"},
}

// subdomainSections refines the default list when the second-stage
// classifier commits to a subdomain.
var subdomainSections = map[string]map[string][]string{
	"criminal_law": {
		"theft":                 {"bns_303", "bns_305"},
		"robbery":               {"bns_309", "bns_304", "bns_308"},
		"assault":               {"bns_115", "bns_117"},
		"kidnapping":            {"bns_137", "bns_140"},
		"criminal_intimidation": {"bns_351", "bns_308"},
		"murder":                {"bns_103"},
	},
	"cyber_crime": {
		"hacking":        {"it_66", "it_43"},
		"online_fraud":   {"it_66d", "bns_318", "bns_319"},
		"identity_theft": {"it_66c", "bns_319"},
		"cyberbullying":  {"it_67", "bns_79", "bns_351"},
		"data_theft":     {"it_43", "it_66", "bns_316"},
	},
	"employment_law": {
		"salary_issues":        {"wages_5", "wages_15"},
		"wrongful_termination": {"id_25f"},
		"workplace_harassment": {"posh_4", "posh_9", "bns_75"},
		"retirement_benefits":  {"gratuity_4"},
	},
	"family_law": {
		"domestic_violence": {"dv_12", "dv_18", "bns_85"},
		"divorce":           {"bns_85"},
		"child_custody":     {"bnss_144"},
		"maintenance":       {"bnss_144"},
		"dowry_harassment":  {"dowry_3", "dowry_4", "bns_85", "bns_80"},
	},
	"property_law": {
		"illegal_possession": {"sra_6", "bns_329"},
		"landlord_tenant":    {"rent_x", "sra_6"},
		"property_fraud":     {"bns_318", "bns_316", "rera_31", "tpa_54"},
		"partition_disputes": {"tpa_54", "sra_6"},
	},
	"consumer_law": {
		"defective_products": {"cpa_35", "cpa_2_11"},
		"service_deficiency": {"cpa_2_11", "cpa_35"},
		"unfair_trade":       {"cpa_2_47", "cpa_35"},
		"ecommerce_disputes": {"cpa_35", "cpa_2_47", "it_66d"},
	},
	"financial_fraud": {
		"investment_fraud": {"bns_318", "bns_316"},
		"banking_fraud":    {"bns_318", "ni_138"},
		"ponzi_schemes":    {"buds_3", "buds_21", "bns_318"},
		"loan_fraud":       {"bns_318", "bns_308"},
	},
	"medical_negligence": {
		"surgical_negligence": {"bns_106", "cpa_2_11"},
		"misdiagnosis":        {"bns_106", "cpa_2_11"},
		"hospital_negligence": {"cpa_2_11", "bns_106", "bns_125"},
		"pharmaceutical":      {"bns_125", "cpa_35"},
	},
	"accident_law": {
		"road_accidents":      {"mv_166", "mv_184", "bns_106", "bns_281"},
		"workplace_accidents": {"ec_3", "bns_125", "bns_106"},
		"railway_accidents":   {"rail_124", "bns_106"},
	},
	"elder_abuse": {
		"physical_abuse":         {"bns_115", "sc_24"},
		"financial_exploitation": {"sc_23", "bns_316", "bns_318"},
		"neglect":                {"sc_24", "sc_4"},
		"maintenance_refusal":    {"sc_4", "bnss_144"},
	},
}

// keywordRule adds sections when specific words appear in the normalized
// query, regardless of the committed subdomain.
type keywordRule struct {
	keywords []string
	sections []string
}

// queryRules refines per domain on query vocabulary.
var queryRules = map[string][]keywordRule{
	"criminal_law": {
		{keywords: []string{"snatched", "snatching", "chain"}, sections: []string{"bns_304"}},
		{keywords: []string{"knife", "gunpoint", "weapon", "pistol"}, sections: []string{"bns_309"}},
		{keywords: []string{"house", "home", "broke"}, sections: []string{"bns_305", "bns_329"}},
		{keywords: []string{"ransom"}, sections: []string{"bns_140"}},
		{keywords: []string{"blackmail", "extortion"}, sections: []string{"bns_308"}},
	},
	"cyber_crime": {
		{keywords: []string{"obscene", "morphed", "nude"}, sections: []string{"it_67"}},
		{keywords: []string{"otp", "upi", "transaction", "payment"}, sections: []string{"it_66d", "bns_318"}},
		{keywords: []string{"password", "login"}, sections: []string{"it_66", "it_66c"}},
	},
	"employment_law": {
		{keywords: []string{"harassment", "touching", "inappropriate"}, sections: []string{"posh_9", "bns_75"}},
		{keywords: []string{"gratuity", "pension", "provident"}, sections: []string{"gratuity_4"}},
	},
	"family_law": {
		{keywords: []string{"dowry"}, sections: []string{"dowry_4", "dowry_3"}},
		{keywords: []string{"maintenance", "alimony", "expenses"}, sections: []string{"bnss_144"}},
	},
	"property_law": {
		{keywords: []string{"builder", "flat", "apartment"}, sections: []string{"rera_31"}},
		{keywords: []string{"rent", "tenant", "landlord", "vacate"}, sections: []string{"rent_x"}},
	},
	"financial_fraud": {
		{keywords: []string{"cheque", "bounced"}, sections: []string{"ni_138"}},
		{keywords: []string{"chit", "ponzi", "scheme", "deposit"}, sections: []string{"buds_3", "buds_21"}},
	},
	"accident_law": {
		{keywords: []string{"train", "railway", "platform"}, sections: []string{"rail_124"}},
		{keywords: []string{"factory", "machine", "construction", "site"}, sections: []string{"ec_3"}},
	},
	"elder_abuse": {
		{keywords: []string{"property", "transfer", "signed"}, sections: []string{"sc_23"}},
	},
}

// SectionsFor returns the statutory sections matching a classification.
// The query must already be normalized. Subdomain may be empty or
// "general"; unknown domains return nil. Results keep relevance order,
// deduplicate, and cap at six.
func SectionsFor(dom, subdomain, normalizedQuery string) []domain.Section {
	defaults, ok := domainSections[dom]
	if !ok {
		return nil
	}

	var keys []string
	if subs, ok := subdomainSections[dom]; ok {
		keys = append(keys, subs[subdomain]...)
	}

	for _, rule := range queryRules[dom] {
		for _, kw := range rule.keywords {
			if containsWord(normalizedQuery, kw) {
				keys = append(keys, rule.sections...)
				break
			}
		}
	}

	keys = append(keys, defaults...)

	seen := make(map[string]bool, len(keys))
	out := make([]domain.Section, 0, maxSections)
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		sec, ok := catalog[k]
		if !ok {
			continue
		}
		out = append(out, sec)
		if len(out) == maxSections {
			break
		}
	}
	return out
}

// SectionsByKeys resolves catalog keys (e.g. "bns_304", "ni_138") into
// sections, preserving order and skipping unknown keys. Used by scenario
// patterns that pin their own statutory references.
func SectionsByKeys(keys []string) []domain.Section {
	if len(keys) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(keys))
	out := make([]domain.Section, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if sec, ok := catalog[k]; ok {
			out = append(out, sec)
		}
		if len(out) == maxSections {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SectionNumbers returns just the section numbers, for history rows.
func SectionNumbers(sections []domain.Section) []string {
	if len(sections) == 0 {
		return nil
	}
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.SectionNumber
	}
	return out
}

// containsWord reports whether the normalized query contains the keyword
// as a whole token.
func containsWord(query, word string) bool {
	if query == word {
		return true
	}
	if strings.HasPrefix(query, word+" ") || strings.HasSuffix(query, " "+word) {
		return true
	}
	return strings.Contains(query, " "+word+" ")
}
