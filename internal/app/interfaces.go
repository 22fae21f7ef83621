//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=app
package app

import (
	"io"

	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/render"
)

type (
	SpecLoader interface {
		Load(paths []string, problems *models.Problems) (*models.Spec, []*models.Document, error)
	}
	Renderer interface {
		Extension() string
		Render(w io.Writer, doc render.Document) error
	}
)
