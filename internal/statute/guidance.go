package statute

import "github.com/nyayasetu/classifier/internal/domain"

// guidanceTable maps domain → subdomain → procedural guidance. The "general"
// entry of each domain is the fallback when the subdomain has no entry of
// its own. Timelines and success rates are indicative figures from legal
// aid experience, not promises.
var guidanceTable = map[string]map[string]domain.Guidance{
	"criminal_law": {
		"general": {
			ProcessSteps: []string{
				"File an FIR at the police station with jurisdiction over the incident",
				"Collect the FIR copy free of cost and note the FIR number",
				"Preserve all evidence such as CCTV footage, photographs and witness details",
				"Follow up with the investigating officer on the case status",
				"If the police refuse to register the FIR, approach the Superintendent of Police or file a complaint before the Magistrate",
			},
			TimelineRange: "6 months to 3 years",
			SuccessRate:   "55-70%",
		},
		"theft": {
			ProcessSteps: []string{
				"File an FIR immediately at the nearest police station",
				"Provide IMEI number, serial numbers or identifying marks of the stolen property",
				"Block stolen SIM cards and bank cards at once",
				"Obtain the FIR copy for insurance claims",
				"Track the case status through the investigating officer",
			},
			TimelineRange: "3 months to 1 year",
			SuccessRate:   "40-55%",
		},
		"murder": {
			ProcessSteps: []string{
				"Ensure the FIR is registered without delay",
				"Request a copy of the post-mortem report",
				"Engage a criminal lawyer to monitor the investigation",
				"Apply for victim compensation under the state scheme",
				"Attend all court hearings as the case proceeds to sessions trial",
			},
			TimelineRange: "2 to 5 years",
			SuccessRate:   "60-75%",
		},
	},
	"cyber_crime": {
		"general": {
			ProcessSteps: []string{
				"Report the incident at cybercrime.gov.in or call the 1930 helpline",
				"Take screenshots of all messages, transactions and profiles involved",
				"File a complaint at the nearest cyber crime police station",
				"Inform your bank immediately if money was transferred",
				"Do not delete any electronic evidence from your devices",
			},
			TimelineRange: "3 months to 2 years",
			SuccessRate:   "45-60%",
		},
		"online_fraud": {
			ProcessSteps: []string{
				"Call the 1930 cyber fraud helpline within the golden hour",
				"Report the transaction on cybercrime.gov.in with transaction IDs",
				"Ask your bank to freeze the beneficiary account",
				"File a written complaint with the cyber cell",
				"Follow up on the refund through the bank's nodal officer",
			},
			TimelineRange: "1 month to 1 year",
			SuccessRate:   "35-50%",
		},
	},
	"employment_law": {
		"general": {
			ProcessSteps: []string{
				"Send a written demand to the employer and keep proof of delivery",
				"Gather employment documents: appointment letter, payslips, bank statements",
				"File a complaint with the Labour Commissioner of your area",
				"Attend the conciliation proceedings",
				"If conciliation fails, pursue the claim before the Labour Court",
			},
			TimelineRange: "6 months to 2 years",
			SuccessRate:   "60-75%",
		},
		"salary_issues": {
			ProcessSteps: []string{
				"Send a written salary demand notice to the employer",
				"Collect payslips, appointment letter and bank statements as proof",
				"File a claim before the Authority under the Payment of Wages Act",
				"Attend hearings; compensation up to ten times the delayed amount can be awarded",
			},
			TimelineRange: "3 months to 1 year",
			SuccessRate:   "70-85%",
		},
		"workplace_harassment": {
			ProcessSteps: []string{
				"File a written complaint with the Internal Complaints Committee within three months",
				"If the employer has no committee, complain to the Local Committee of the district",
				"Preserve messages, emails and witness accounts",
				"Cooperate with the inquiry, which must finish within ninety days",
				"Escalate to the police if the conduct amounts to an offence",
			},
			TimelineRange: "3 to 9 months",
			SuccessRate:   "55-70%",
		},
	},
	"family_law": {
		"general": {
			ProcessSteps: []string{
				"Consult a family lawyer or the nearest legal services authority",
				"Gather marriage proof, photographs and financial documents",
				"Attempt counselling or mediation where safe and appropriate",
				"File the appropriate petition before the Family Court",
				"Attend hearings and comply with interim orders",
			},
			TimelineRange: "6 months to 3 years",
			SuccessRate:   "60-75%",
		},
		"domestic_violence": {
			ProcessSteps: []string{
				"Contact the Protection Officer of your district or the 181 women helpline",
				"File an application before the Magistrate for protection and residence orders",
				"Obtain medical examination records of any injuries",
				"Seek an interim maintenance and custody order in the same application",
				"Call 100 or 112 immediately if there is danger",
			},
			TimelineRange: "2 months to 1 year",
			SuccessRate:   "65-80%",
		},
		"dowry_harassment": {
			ProcessSteps: []string{
				"File a complaint at the police station or the women's cell",
				"Record details of dowry demands with dates and witnesses",
				"Keep receipts or proof of dowry items already given",
				"Apply for protection and maintenance orders alongside the criminal case",
			},
			TimelineRange: "6 months to 2 years",
			SuccessRate:   "50-65%",
		},
	},
	"property_law": {
		"general": {
			ProcessSteps: []string{
				"Collect the title deed, registry papers, tax receipts and survey records",
				"Send a legal notice to the opposite party",
				"Attempt settlement through mediation",
				"File a civil suit before the appropriate court",
				"Seek an interim injunction to preserve possession",
			},
			TimelineRange: "1 to 5 years",
			SuccessRate:   "50-65%",
		},
		"illegal_possession": {
			ProcessSteps: []string{
				"File a police complaint about the trespass",
				"File a suit for possession within six months if recently dispossessed",
				"Apply for a temporary injunction against construction or alienation",
				"Produce title and possession documents before the court",
			},
			TimelineRange: "6 months to 3 years",
			SuccessRate:   "55-70%",
		},
	},
	"consumer_law": {
		"general": {
			ProcessSteps: []string{
				"Write a complaint to the seller or service provider and keep the acknowledgement",
				"Collect bills, warranty cards and correspondence",
				"File a complaint with the District Consumer Commission",
				"Pay the nominal filing fee and attend hearings",
				"Claim refund, replacement and compensation as reliefs",
			},
			TimelineRange: "6 months to 2 years",
			SuccessRate:   "65-80%",
		},
		"ecommerce_disputes": {
			ProcessSteps: []string{
				"Raise a complaint with the platform's grievance officer",
				"Escalate through the National Consumer Helpline 1915",
				"Preserve order details, payment proof and delivery records",
				"File before the District Consumer Commission; complaints can be filed online through e-daakhil",
			},
			TimelineRange: "3 months to 1 year",
			SuccessRate:   "60-75%",
		},
	},
	"financial_fraud": {
		"general": {
			ProcessSteps: []string{
				"File an FIR with the Economic Offences Wing or local police",
				"Compile all investment documents, receipts and communication",
				"Report unregulated deposit schemes to the district authority",
				"Join or initiate proceedings for attachment of the fraudster's assets",
				"Pursue a civil recovery suit in parallel where feasible",
			},
			TimelineRange: "1 to 4 years",
			SuccessRate:   "35-55%",
		},
		"banking_fraud": {
			ProcessSteps: []string{
				"Report the disputed transaction to the bank within three days",
				"File a complaint with the bank's nodal officer",
				"Escalate to the RBI Banking Ombudsman if unresolved in thirty days",
				"File an FIR for the fraudulent transaction",
			},
			TimelineRange: "1 month to 1 year",
			SuccessRate:   "50-70%",
		},
	},
	"medical_negligence": {
		"general": {
			ProcessSteps: []string{
				"Obtain complete medical records from the hospital, which cannot refuse them",
				"Get an independent medical opinion on the treatment",
				"File a complaint with the State Medical Council",
				"File a consumer complaint for compensation",
				"In grave cases, file a criminal complaint for negligence",
			},
			TimelineRange: "1 to 4 years",
			SuccessRate:   "40-55%",
		},
	},
	"accident_law": {
		"general": {
			ProcessSteps: []string{
				"Ensure an FIR or accident report is registered",
				"Obtain the injury or post-mortem report and disability certificate",
				"Collect the other vehicle's insurance and registration details",
				"File a claim petition before the Motor Accidents Claims Tribunal",
				"No time limit bars the tribunal claim, but file early",
			},
			TimelineRange: "6 months to 3 years",
			SuccessRate:   "70-85%",
		},
		"workplace_accidents": {
			ProcessSteps: []string{
				"Report the accident to the employer in writing",
				"Obtain medical treatment and preserve all records",
				"File a claim before the Commissioner for Employees' Compensation",
				"Claim from the ESI Corporation if the establishment is covered",
			},
			TimelineRange: "6 months to 2 years",
			SuccessRate:   "65-80%",
		},
	},
	"elder_abuse": {
		"general": {
			ProcessSteps: []string{
				"Apply to the Maintenance Tribunal of the sub-division",
				"The tribunal can order up to ten thousand rupees monthly maintenance",
				"Seek cancellation of any property transfer made on condition of care",
				"Contact the 14567 elder line for assistance",
				"File a police complaint for abandonment or physical abuse",
			},
			TimelineRange: "2 to 8 months",
			SuccessRate:   "70-85%",
		},
	},
}

// GuidanceFor returns the procedural guidance for a (domain, subdomain)
// pair. Falls back to the domain's general guidance when the subdomain has
// no specific entry, and returns nil for unknown domains.
func GuidanceFor(dom, subdomain string) *domain.Guidance {
	byDomain, ok := guidanceTable[dom]
	if !ok {
		return nil
	}
	if g, ok := byDomain[subdomain]; ok {
		out := g
		return &out
	}
	if g, ok := byDomain["general"]; ok {
		out := g
		return &out
	}
	return nil
}
