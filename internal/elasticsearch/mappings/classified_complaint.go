package mappings

// ClassifiedComplaintMapping represents the Elasticsearch mapping for
// classified complaints
type ClassifiedComplaintMapping struct {
	Settings ClassifiedComplaintSettings `json:"settings"`
	Mappings ClassifiedComplaintMappings `json:"mappings"`
}

// ClassifiedComplaintSettings defines index-level settings
type ClassifiedComplaintSettings struct {
	BaseSettings
}

// ClassifiedComplaintMappings defines the field mappings for classified complaints
type ClassifiedComplaintMappings struct {
	Properties ClassifiedComplaintProperties `json:"properties"`
}

// ClassifiedComplaintProperties defines the properties for each field in the
// classified complaint mapping. This includes all raw complaint fields PLUS
// classification results.
type ClassifiedComplaintProperties struct {
	// ===== Raw Complaint Fields =====
	ID       Field `json:"id"`
	Channel  Field `json:"channel"`
	Text     Field `json:"text"`
	Language Field `json:"language"`
	District Field `json:"district"`
	State    Field `json:"state"`

	ReceivedAt           Field `json:"received_at"`
	ClassificationStatus Field `json:"classification_status"`
	ClassifiedAt         Field `json:"classified_at"`
	WordCount            Field `json:"word_count"`

	// ===== Classification Results =====
	Domain     Field `json:"domain"`
	Subdomain  Field `json:"subdomain"`
	Confidence Field `json:"confidence"`
	Sections   Field `json:"sections"` // nested statutory sections
	Articles   Field `json:"articles"` // keyword array

	// Classification metadata
	ClassifierVersion    Field `json:"classifier_version"`
	ClassificationMethod Field `json:"classification_method"`
	ModelVersion         Field `json:"model_version"`
}

// NewClassifiedComplaintMapping creates a new classified complaint mapping
// with default settings
func NewClassifiedComplaintMapping() *ClassifiedComplaintMapping {
	return &ClassifiedComplaintMapping{
		Settings: ClassifiedComplaintSettings{
			BaseSettings: DefaultSettings(),
		},
		Mappings: ClassifiedComplaintMappings{
			Properties: ClassifiedComplaintProperties{
				// ===== Raw Complaint Fields =====
				ID: Field{
					Type: "keyword",
				},
				Channel: Field{
					Type: "keyword",
				},
				Text: Field{
					Type:     "text",
					Analyzer: "standard",
				},
				Language: Field{
					Type: "keyword",
				},
				District: Field{
					Type: "keyword",
				},
				State: Field{
					Type: "keyword",
				},
				ReceivedAt: Field{
					Type:   "date",
					Format: "strict_date_optional_time||epoch_millis",
				},
				ClassificationStatus: Field{
					Type: "keyword",
				},
				ClassifiedAt: Field{
					Type:   "date",
					Format: "strict_date_optional_time||epoch_millis",
				},
				WordCount: Field{
					Type: "integer",
				},

				// ===== Classification Results =====
				Domain: Field{
					Type: "keyword",
				},
				Subdomain: Field{
					Type: "keyword",
				},
				Confidence: Field{
					Type: "float",
				},
				Sections: Field{
					Type: "object", // Section objects with code, number, title
				},
				Articles: Field{
					Type: "keyword", // Array of constitutional articles
				},
				ClassifierVersion: Field{
					Type: "keyword",
				},
				ClassificationMethod: Field{
					Type: "keyword",
				},
				ModelVersion: Field{
					Type: "keyword",
				},
			},
		},
	}
}

// GetJSON returns the classified complaint mapping as a JSON string
func (m *ClassifiedComplaintMapping) GetJSON() (string, error) {
	return ToJSON(m)
}

// Validate validates the classified complaint mapping configuration
func (m *ClassifiedComplaintMapping) Validate() error {
	return ValidateSettings(m.Settings.BaseSettings)
}
