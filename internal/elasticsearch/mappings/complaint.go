package mappings

// ComplaintMapping represents the Elasticsearch mapping for raw complaints
type ComplaintMapping struct {
	Settings ComplaintSettings `json:"settings"`
	Mappings ComplaintMappings `json:"mappings"`
}

// ComplaintSettings defines index-level settings
type ComplaintSettings struct {
	BaseSettings
}

// ComplaintMappings defines the field mappings for raw complaints
type ComplaintMappings struct {
	Properties ComplaintProperties `json:"properties"`
}

// ComplaintProperties defines the properties for each field in the complaint mapping
type ComplaintProperties struct {
	// Core identifiers
	ID      Field `json:"id"`
	Channel Field `json:"channel"`

	// Complaint text
	Text     Field `json:"text"`
	Language Field `json:"language"`

	// Location metadata
	District Field `json:"district"`
	State    Field `json:"state"`

	// Timestamps
	ReceivedAt Field `json:"received_at"`

	// Processing status
	ClassificationStatus Field `json:"classification_status"`
	ClassifiedAt         Field `json:"classified_at"`

	// Quick metrics
	WordCount Field `json:"word_count"`
}

// NewComplaintMapping creates a new complaint mapping with default settings
func NewComplaintMapping() *ComplaintMapping {
	return &ComplaintMapping{
		Settings: ComplaintSettings{
			BaseSettings: DefaultSettings(),
		},
		Mappings: ComplaintMappings{
			Properties: ComplaintProperties{
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
			},
		},
	}
}

// GetJSON returns the complaint mapping as a JSON string
func (m *ComplaintMapping) GetJSON() (string, error) {
	return ToJSON(m)
}

// Validate validates the complaint mapping configuration
func (m *ComplaintMapping) Validate() error {
	return ValidateSettings(m.Settings.BaseSettings)
}
