package reports

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"oficina_mb/internal/domain/entities"
	"oficina_mb/internal/domain/format"
)

// RelatorioPDF renders the shareable quote report: cliente/carro header,
// a parts table, a services table, observations and the total. The layout
// mirrors the printed report the shop hands to the customer.
func RelatorioPDF(o entities.Orcamento) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Orçamento"), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, tr("ORÇAMENTO"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 11)
	headerLine(pdf, tr, "DATA", format.Date(o.DataCriacao))
	headerLine(pdf, tr, "CLIENTE", o.Nome)
	headerLine(pdf, tr, "ENDEREÇO", enderecoCompleto(o))
	headerLine(pdf, tr, "TELEFONE", o.Telefone)
	headerLine(pdf, tr, "MODELO", o.Modelo)
	headerLine(pdf, tr, "PLACA", o.Placa)
	pdf.Ln(4)

	if len(o.Pecas) > 0 {
		sectionTitle(pdf, tr, "PEÇAS")
		tableHeader(pdf, tr)
		pdf.SetFont("Arial", "", 10)
		for _, p := range o.Pecas {
			tableRow(pdf, tr, p.NomePeca, p.Qtd, p.Un)
		}
		pdf.Ln(3)
	}

	if len(o.Servicos) > 0 {
		sectionTitle(pdf, tr, "SERVIÇOS")
		tableHeader(pdf, tr)
		pdf.SetFont("Arial", "", 10)
		for _, s := range o.Servicos {
			tableRow(pdf, tr, s.Servico, s.Qtd, s.Un)
		}
		pdf.Ln(3)
	}

	if len(o.Observacao) > 0 {
		sectionTitle(pdf, tr, "OBSERVAÇÕES")
		pdf.SetFont("Arial", "", 10)
		for _, obs := range o.Observacao {
			pdf.MultiCell(0, 6, tr(obs.Obs), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("TOTAL: R$ "+format.Amount(o.Total)), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func enderecoCompleto(o entities.Orcamento) string {
	endereco := o.Endereco
	if o.Numero != "" {
		endereco += ", " + o.Numero
	}
	if o.Complemento != "" {
		endereco += " - " + o.Complemento
	}
	return endereco
}

func headerLine(pdf *gofpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.CellFormat(0, 6, tr(label+": "+value), "", 1, "L", false, 0, "")
}

func sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
}

func tableHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(110, 7, tr("DESCRIÇÃO"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "QTD", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, "UN", "1", 1, "R", false, 0, "")
}

func tableRow(pdf *gofpdf.Fpdf, tr func(string) string, nome, qtd, un string) {
	pdf.CellFormat(110, 7, tr(nome), "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, qtd, "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, un, "1", 1, "R", false, 0, "")
}
