package domain

// DocumentFormat tags the file type of a comparison document.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// DocumentText is the extracted text of one comparison document. Created
// once per run and read-only afterward.
type DocumentText struct {
	// Name is the display name used as the report's document column key.
	Name string `json:"name"`
	// Text is the raw extracted text, page/paragraph breaks collapsed to
	// single whitespace. Empty when Failed is set.
	Text string `json:"text"`
	// Failed marks a document whose text could not be extracted. Such a
	// document is reported with an explicit extraction-failed marker and
	// never produces mismatch verdicts.
	Failed bool `json:"failed,omitempty"`
}
