package services

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"quotes-api/models"
	"quotes-api/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

// ReportService renders budgets and event summaries as standalone HTML
// documents with embedded styling. The on-screen preview, the print
// surface and the download all come from the same render call, so the
// outputs cannot drift.
type ReportService struct {
	tmpl *template.Template
	now  func() time.Time
}

func NewReportService() (*ReportService, error) {
	tmpl := template.New("reports").Funcs(template.FuncMap{
		"brl":       utils.FormatBRL,
		"pct":       utils.FormatPercent,
		"date":      utils.FormatDate,
		"shortDate": utils.FormatDateString,
		"qty":       utils.FormatQuantity,
	})

	tmpl, err := tmpl.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &ReportService{tmpl: tmpl, now: time.Now}, nil
}

type budgetReportData struct {
	Budget               models.Budget
	GeneratedAt          time.Time
	CostPerPerson        float64
	ConsumptionItemCount int
	ShowConsumption      bool
}

// RenderBudget produces the printable quote document.
func (s *ReportService) RenderBudget(budget models.Budget) ([]byte, error) {
	data := budgetReportData{
		Budget:      budget,
		GeneratedAt: s.now(),
	}
	for _, item := range budget.Items {
		if item.IsCalculatedFromConsumption {
			data.ConsumptionItemCount++
		}
	}
	if budget.NumberOfPeople > 0 {
		data.CostPerPerson = budget.Subtotal / float64(budget.NumberOfPeople)
		data.ShowConsumption = data.ConsumptionItemCount > 0
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "budget.html", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type eventReportRow struct {
	Calculation   models.ConsumptionCalculation
	Percentage    float64
	CostPerPerson float64
}

type eventReportData struct {
	Summary     models.EventSummary
	GeneratedAt time.Time
	Rows        []eventReportRow
}

// RenderEventSummary produces the event cost report: summary cards,
// per-calculation breakdown and the financial summary with each
// calculation's share of the total.
func (s *ReportService) RenderEventSummary(summary models.EventSummary) ([]byte, error) {
	data := eventReportData{
		Summary:     summary,
		GeneratedAt: s.now(),
	}
	for _, calc := range summary.Calculations {
		row := eventReportRow{Calculation: calc}
		if summary.TotalCost > 0 {
			row.Percentage = calc.TotalCost / summary.TotalCost * 100
		}
		if calc.NumberOfPeople > 0 {
			row.CostPerPerson = calc.TotalCost / float64(calc.NumberOfPeople)
		}
		data.Rows = append(data.Rows, row)
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "event_report.html", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BudgetFilename derives the download name for a quote document.
func BudgetFilename(budget models.Budget) string {
	return "orcamento-" + utils.Slug(budget.ClientName) + ".html"
}

// EventReportFilename derives the download name for an event report.
func EventReportFilename(eventName string) string {
	return "relatorio-evento-" + utils.Slug(eventName) + ".html"
}
