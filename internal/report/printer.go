// Package report prints reference surface comparisons as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bbernstein/datumcheck/internal/models"
)

// Printer writes one block of text per station
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the block for c followed by a blank line
func (p *Printer) Print(c models.Comparison) error {
	var b strings.Builder

	b.WriteString(c.Name + "\n")
	line(&b, "  E_DVR90    = ", c.EDVR90)
	line(&b, "  E_LMSL1990 = ", c.ELMSL1990)
	line(&b, "  E_DKMSL    = ", c.EDKMSL)
	line(&b, "  E_DKLAT    = ", c.EDKLAT)
	b.WriteString("\n")
	line(&b, "  DKLAT-DVR90    = ", c.DKLATMinusDVR90())
	line(&b, "  DKMSL-DVR90    = ", c.DKMSLMinusDVR90())
	line(&b, "  LAT: DMI       = ", c.DMILAT)
	line(&b, "       DTU       = ", c.ModelLAT)
	line(&b, "       DMI-DTU   = ", c.LATDiff)
	b.WriteString("\n")
	line(&b, "  ΔMSL           = ", c.DeltaMSL)
	line(&b, "  ΔMSL-RelUplift = ", c.DeltaMSLMinusUplift())
	line(&b, "  RelUplift      = ", c.RelativeUplift)
	b.WriteString("\n")

	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("writing report for %s: %w", c.Name, err)
	}
	return nil
}

func line(b *strings.Builder, label string, v float64) {
	fmt.Fprintf(b, "%s%.4f\n", label, v)
}
