package domain

// Statute category constants. Category identifies the act a section
// belongs to.
const (
	CategoryBNS          = "BNS 2023"
	CategoryITAct        = "IT Act 2000"
	CategoryConsumerAct  = "Consumer Protection Act 2019"
	CategoryWagesAct     = "Payment of Wages Act 1936"
	CategoryIDAct        = "Industrial Disputes Act 1947"
	CategoryPOSHAct      = "POSH Act 2013"
	CategoryDVAct        = "PWDV Act 2005"
	CategoryDowryAct     = "Dowry Prohibition Act 1961"
	CategoryMVAct        = "Motor Vehicles Act 1988"
	CategorySeniorAct    = "Senior Citizens Act 2007"
	CategoryTransferAct  = "Transfer of Property Act 1882"
	CategoryGratuityAct  = "Payment of Gratuity Act 1972"
	CategoryRailwaysAct  = "Railways Act 1989"
	CategoryMedicalAct   = "National Medical Commission Act 2019"
	CategoryBankingAct   = "Banning of Unregulated Deposit Schemes Act 2019"
	CategoryRentActs     = "State Rent Control Acts"
	CategoryRERAAct      = "RERA 2016"
)

// Section is one statutory provision matched to a complaint.
type Section struct {
	SectionNumber string `json:"section_number"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
}

// Guidance is the procedural guidance record for a (domain, subdomain) pair.
type Guidance struct {
	ProcessSteps  []string `json:"process_steps"`
	TimelineRange string   `json:"timeline_range"`
	SuccessRate   string   `json:"success_rate"`
}
