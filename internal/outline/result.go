package outline

// Level is a heading level in the extracted outline.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
	H4 Level = "H4"
)

// Heading is a single outline entry. The y coordinate is kept only for
// final ordering and is not serialized.
type Heading struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`

	y float64
}

// Metrics summarizes a single extraction run.
type Metrics struct {
	TotalFragments   int     `json:"total_fragments"`
	HeadingsFound    int     `json:"headings_found"`
	TimePerPage      float64 `json:"time_per_page"`
	DetectedLanguage string  `json:"detected_language"`
}

// Result is the terminal artifact of one document run.
type Result struct {
	Title          string    `json:"title"`
	Outline        []Heading `json:"outline"`
	ProcessingTime float64   `json:"processing_time"`
	Metrics        *Metrics  `json:"performance_metrics,omitempty"`
	Error          string    `json:"error,omitempty"`
}

// PlaceholderTitle is returned when no title strategy succeeds.
const PlaceholderTitle = "Untitled Document"

// ErrorTitle marks a result produced from a recovered internal fault.
const ErrorTitle = "Error Processing Document"
