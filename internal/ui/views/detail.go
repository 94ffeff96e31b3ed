package views

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"countrydex/internal/domain"
)

// NotAvailable fills detail fields the dataset left empty
const NotAvailable = "N/A"

var numberPrinter = message.NewPrinter(language.English)

// FormatPopulation groups digits the way the detail view shows them, e.g. 67,391,582
func FormatPopulation(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}

// FormatArea renders the area in square kilometres without exponent notation
func FormatArea(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64) + " km²"
}

// DetailRenderer renders the country detail popup
type DetailRenderer struct {
	styles *Styles
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles) *DetailRenderer {
	return &DetailRenderer{styles: styles}
}

// RenderDetail renders the body of the detail popup
func (r *DetailRenderer) RenderDetail(c domain.Country, isFavorite, loggedIn bool) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(c.Name))
	b.WriteString("\n\n")

	languages := NotAvailable
	if names := c.LanguageNames(); len(names) > 0 {
		languages = strings.Join(names, ", ")
	}
	flag := c.FlagImageURL
	if flag == "" {
		flag = NotAvailable
	}

	rows := [][2]string{
		{"Capital", c.CapitalOr(NotAvailable)},
		{"Region", c.Region},
		{"Population", FormatPopulation(c.Population)},
		{"Area", FormatArea(c.Area)},
		{"Domain", c.DomainsOr(NotAvailable)},
		{"Languages", languages},
		{"Flag", flag},
	}
	for _, row := range rows {
		b.WriteString(r.styles.Label.Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := "[f] Favorite"
	if isFavorite {
		button = r.styles.Favorite.Render("[f] Unfavorite ♥")
	}
	b.WriteString(button)
	if !loggedIn {
		b.WriteString(r.styles.Dim.Render("  (log in with i to save favorites)"))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("esc close"))
	return b.String()
}
