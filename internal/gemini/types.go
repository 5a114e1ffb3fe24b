package gemini

// Reference is an optional likeness photo attached to a generation request.
type Reference struct {
	DataBase64 string
	MimeType   string
}

// Image is a normalized generation result: exactly one of DataBase64 or URL is
// set. Downstream consumers must handle both forms.
type Image struct {
	DataBase64 string
	URL        string
	MimeType   string
}

func (i Image) Inline() bool { return i.DataBase64 != "" }

// DataURL renders the inline form as a data URL, or returns the remote URL
// unchanged.
func (i Image) DataURL() string {
	if i.Inline() {
		return "data:" + i.MimeType + ";base64," + i.DataBase64
	}
	return i.URL
}
