package upload

import "strings"

const (
	extPNG  = ".png"
	extJPEG = ".jpeg"
)

var knownPrefixes = [...]string{
	"data:image/png;base64,",
	"data:image/jpg;base64,",
	"data:image/jpeg;base64,",
}

// Normalize strips the data URI envelope and picks the staging extension.
// Unknown prefixes pass through untouched. The extension only looks at the
// first character of the raw input: 'i' means PNG, anything else JPEG.
func Normalize(contents string) (payload, ext string) {
	payload = contents
	for _, p := range knownPrefixes {
		if strings.HasPrefix(payload, p) {
			payload = strings.TrimPrefix(payload, p)
			break
		}
	}

	ext = extJPEG
	if strings.HasPrefix(contents, "i") {
		ext = extPNG
	}

	return payload, ext
}
