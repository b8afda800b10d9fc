package request

type Upload struct {
	// Data URI, e.g. "data:image/png;base64,iVBORw0KGgo..."
	Contents string `json:"contents"`
}
