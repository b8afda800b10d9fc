package entity

import (
	"time"

	"github.com/google/uuid"
)

type PublicationResult struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Resized   string `json:"resized"`
}

func (p *PublicationResult) Set(r Role, url string) {
	switch r {
	case Original:
		p.Original = url
	case Resized:
		p.Resized = url
	case Thumbnail:
		p.Thumbnail = url
	}
}

type UploadedEvent struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Original  string    `json:"original"`
	Resized   string    `json:"resized"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"created_at"`
}
