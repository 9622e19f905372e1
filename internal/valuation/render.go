package valuation

import (
	"fmt"
	"io"
	"strconv"
)

// Render writes the user-facing text of an appraisal: the detail block of every matched
// record followed by the valuation figures, or the absence message for err.
func Render(w io.Writer, appraisal Appraisal, err error) error {
	p := &printer{w: w}

	if len(appraisal.Matched) > 0 {
		p.line("Información del coche seleccionado:")
		for _, r := range appraisal.Matched {
			p.line(fmt.Sprintf("Periodo comercial: %d - %d", r.ValidFrom, r.ValidTo))
			p.line("Cilindrada (C.C.): " + formatNumber(r.DisplacementCC))
			p.line("Número de cilindros: " + strconv.Itoa(r.Cylinders))
			p.line("Combustible: " + r.FuelType)
			p.line("Potencia (P kW): " + formatNumber(r.PowerKW))
			p.line("Coeficiente fiscal (cvf): " + formatNumber(r.FiscalCoefficient))
			p.line("Potencia (cv): " + formatNumber(r.PowerCV))
		}
	}

	if err != nil {
		if msg := AbsenceMessage(err); msg != "" {
			p.line(msg)
			return p.err
		}
		return err
	}
	if appraisal.Result == nil {
		return p.err
	}

	res := appraisal.Result.Rounded()
	p.line(fmt.Sprintf("Antigüedad del coche: %d años %d meses", res.Age.Years, res.Age.MonthsRemainder))
	p.line(fmt.Sprintf("Porcentaje de tasación aplicado: %s%%", formatNumber(res.Percentage)))
	p.line(fmt.Sprintf("Valor original del coche: %s euros", FormatMoney(res.BaseValue)))
	p.line(fmt.Sprintf("Valor actual del coche según su antigüedad: %s euros", FormatMoney(res.CurrentValue)))
	p.line(fmt.Sprintf("--- El valor final con el 20%% de la ayuda: %s euros ---", FormatMoney(res.FinalValue)))
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
