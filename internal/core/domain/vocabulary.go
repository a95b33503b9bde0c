package domain

// DefaultVocabularyDirectory is the Linked Open Vocabularies catalog endpoint.
const DefaultVocabularyDirectory = "http://lov.okfn.org/dataset/lov/api/v2/vocabulary/list"

// Vocabulary is one entry of an online vocabulary directory.
type Vocabulary struct {
	URI       string `validate:"required,url"`
	Title     string
	Namespace string
}

// Label is the line offered when picking a vocabulary to import.
func (v Vocabulary) Label() string {
	if v.Title == "" {
		return v.URI
	}
	return v.URI + " ==> " + v.Title
}
