package policy

import (
	"os"
	"strings"
)

// Document is the HR knowledge base injected into every freeform prompt
// and exposed read-only to the frontend.
type Document struct {
	Text string `json:"text"`
}

const defaultText = `• Employees get 24 paid leave days per year.
• Remote work is allowed up to 2 days per week.
• Working hours are 9 AM–6 PM, Monday to Friday.
• UK public holidays are observed.
• Leave eligibility starts after 3 months.
• Health insurance is provided by Bupa.
• For support, contact hr@konantech.com or your manager.`

// Default returns the built-in policy document.
func Default() Document {
	return Document{Text: defaultText}
}

// LoadFile replaces the built-in document with the contents of path.
// An empty path keeps the default.
func LoadFile(path string) (Document, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return Default(), nil
	}
	return Document{Text: text}, nil
}
