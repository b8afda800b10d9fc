package entity

type Role string

const (
	Original  Role = "original"
	Resized   Role = "resized"
	Thumbnail Role = "thumbnail"
)

// Roles lists every published variant in publication order.
var Roles = [...]Role{Original, Resized, Thumbnail}

// Key returns the remote object key for filename under this role.
func (r Role) Key(filename string) string {
	return string(r) + "-" + filename
}
