package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	placeholderWidth  = 800
	placeholderHeight = 600
	placeholderText   = "TikZ Diagram Preview"
)

// writePlaceholderPNG writes a white 800x600 raster with a black border and
// the preview label centered, standing in for a compiled diagram.
func writePlaceholderPNG(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	black := image.NewUniform(color.Black)

	// 2px border inset 10px from each edge.
	draw.Draw(img, image.Rect(10, 10, placeholderWidth-10, 12), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(10, placeholderHeight-12, placeholderWidth-10, placeholderHeight-10), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(10, 10, 12, placeholderHeight-10), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(placeholderWidth-12, 10, placeholderWidth-10, placeholderHeight-10), black, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  black,
		Face: basicfont.Face7x13,
	}
	textWidth := drawer.MeasureString(placeholderText).Ceil()
	drawer.Dot = fixed.P((placeholderWidth-textWidth)/2, placeholderHeight/2)
	drawer.DrawString(placeholderText)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, img)
}

// writePlaceholderPDF writes a single landscape page with the same border and
// label as the png placeholder
func writePlaceholderPDF(path string) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetLineWidth(0.6)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(10, 10, 277, 190, "D")

	pdf.SetFont("Helvetica", "", 16)
	pdf.SetXY(10, 100)
	pdf.CellFormat(277, 10, placeholderText, "", 0, "C", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// writePlaceholderSVG writes vector markup equivalent to the png placeholder
func writePlaceholderSVG(path string) error {
	markup := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
  <rect width="%d" height="%d" fill="white"/>
  <rect x="10" y="10" width="%d" height="%d" fill="none" stroke="black" stroke-width="2"/>
  <text x="50%%" y="50%%" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="20">%s</text>
</svg>
`,
		placeholderWidth, placeholderHeight,
		placeholderWidth, placeholderHeight,
		placeholderWidth, placeholderHeight,
		placeholderWidth-20, placeholderHeight-20,
		placeholderText,
	)

	return os.WriteFile(path, []byte(markup), 0o644)
}
