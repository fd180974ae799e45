package sink

import (
	"context"

	"github.com/matzehuels/linkplot/pkg/render"
	"github.com/matzehuels/linkplot/pkg/render/scene"
)

// RenderPDF renders the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, s *scene.Scene) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(s))
}

// RenderPNG renders the scene as PNG via SVG conversion at the scene's pixel
// scale. The SVG already carries that scale in its size attributes, so the
// converter runs at 1x.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, s *scene.Scene) ([]byte, error) {
	return render.ToPNG(ctx, RenderSVG(s), 1)
}
