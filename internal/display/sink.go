package display

import "github.com/anime-shed/image-averager-go/pkg/models"

// Sink presents a comparison to the user. Show may block until the user is done.
type Sink interface {
	Show(c models.Comparison) error
}
