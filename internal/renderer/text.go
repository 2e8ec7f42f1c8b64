package renderer

import "os"

// System font fallback chains. When none load, gg's built-in face is used;
// the document still renders, just without proper typography.
var regularFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

var boldFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

func (p *page) setFont(size float64, bold bool) {
	paths := regularFonts
	if bold {
		paths = boldFonts
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := p.ctx.LoadFontFace(path, size); err == nil {
			return
		}
	}
}

// text draws a string with its baseline-left at (x, y)
func (p *page) text(s string, x, y float64) {
	p.ctx.DrawString(s, x, y)
}

// textRight draws a string right-aligned against x
func (p *page) textRight(s string, x, y float64) {
	w, _ := p.ctx.MeasureString(s)
	p.ctx.DrawString(s, x-w, y)
}

// rule draws a horizontal rule across the content width at y
func (p *page) rule(y float64) {
	p.setRule()
	p.ctx.SetLineWidth(2)
	p.ctx.DrawLine(margin, y, pageWidth-margin, y)
	p.ctx.Stroke()
}

// label draws a muted field label followed by an ink value on the same line
func (p *page) label(name, value string, x, y float64) {
	p.setMuted()
	p.setFont(22, false)
	p.text(name, x, y)

	p.setInk()
	p.setFont(22, false)
	p.text(value, x+220, y)
}
