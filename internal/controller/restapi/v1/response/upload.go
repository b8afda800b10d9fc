package response

type Upload struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Resized   string `json:"resized"`
}
