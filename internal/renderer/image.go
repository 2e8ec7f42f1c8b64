package renderer

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
)

const logoHeight = 90

// drawLogo draws the configured masthead logo and returns its drawn width.
// A missing or unreadable logo is not an error; the masthead simply renders
// without it.
func (p *page) drawLogo() float64 {
	if p.opts.LogoPath == "" {
		return 0
	}

	file, err := os.Open(p.opts.LogoPath)
	if err != nil {
		return 0
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0
	}

	resized := imaging.Resize(img, 0, logoHeight, imaging.Lanczos)
	p.ctx.DrawImage(resized, int(margin), 60)

	return float64(resized.Bounds().Dx())
}
