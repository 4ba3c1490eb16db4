package render

import (
	"fmt"
	"strings"
	"time"

	"oficina_os/internal/domain/entities"
)

// minItemRows pads the service table so short orders still print with the
// shop's familiar form height.
const minItemRows = 15

// Field is one labelled line inside a document block.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Block is a titled group of fields (company, client, vehicle).
type Block struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// ItemRow is one printed line of the service table. Blank padding rows have
// an empty Description and no Value text.
type ItemRow struct {
	Description string `json:"description"`
	Value       string `json:"value"`
}

// CostBox is the binding cost breakdown. Total is always labor plus travel,
// never the item sum.
type CostBox struct {
	Labor  string `json:"labor"`
	Travel string `json:"travel"`
	Total  string `json:"total"`
}

// SignatureLine is a placeholder line for a handwritten or captured signature.
type SignatureLine struct {
	Label  string `json:"label"`
	Signed string `json:"signed"`
}

// Document is the printable order model. PDF generation itself is delegated
// to whatever renderer consumes this.
type Document struct {
	Title   string `json:"title"`
	OrderID string `json:"orderId"`
	Date    string `json:"date"`
	LogoURL string `json:"logoUrl,omitempty"`

	Company Block `json:"company"`
	Client  Block `json:"client"`
	Vehicle Block `json:"vehicle"`

	Items         []ItemRow       `json:"items"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus string          `json:"paymentStatus"`
	Costs         CostBox         `json:"costs"`
	Observations  string          `json:"observations"`
	Signatures    []SignatureLine `json:"signatures"`

	// Filename is the suggested name for the exported PDF, derived from the id.
	Filename string `json:"filename"`
}

// BuildDocument lays out one order as a printable document. It is a pure
// function of its inputs: the order's own company snapshot wins, and profile
// fills in only when the snapshot is empty (old records saved before company
// data was stamped onto orders).
func BuildDocument(order entities.ServiceOrder, profile entities.CompanyProfile) Document {
	company := order.Company
	if company.Name == "" {
		company = profile
	}

	return Document{
		Title:   "ORDEM DE SERVIÇO",
		OrderID: order.ID,
		Date:    FormatDate(order.Date),
		LogoURL: company.LogoURL,
		Company: Block{
			Title: "Oficina",
			Fields: []Field{
				{Label: "Nome", Value: company.Name},
				{Label: "CNPJ", Value: company.CNPJ},
				{Label: "Telefone", Value: company.Phone},
			},
		},
		Client: Block{
			Title: "Cliente",
			Fields: []Field{
				{Label: "Nome", Value: order.Client.Name},
				{Label: "CPF/CNPJ", Value: order.Client.IDNumber},
				{Label: "Telefone", Value: order.Client.Phone},
			},
		},
		Vehicle: Block{
			Title: "Veículo",
			Fields: []Field{
				{Label: "Tipo", Value: string(order.Vehicle.Type)},
				{Label: "Marca/Modelo", Value: strings.TrimSpace(order.Vehicle.Brand + " " + order.Vehicle.Model)},
				{Label: "Placa", Value: order.Vehicle.Plate},
				{Label: "KM", Value: order.Vehicle.Mileage},
			},
		},
		Items:         itemRows(order.ServiceItems),
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentStatus),
		Costs: CostBox{
			Labor:  FormatBRL(order.Values.Labor),
			Travel: FormatBRL(order.Values.Travel),
			Total:  FormatBRL(order.Total()),
		},
		Observations: order.Observations,
		Signatures: []SignatureLine{
			{Label: "Assinatura do Cliente", Signed: order.Signatures.Client},
			{Label: "Assinatura do Mecânico", Signed: order.Signatures.Mechanic},
		},
		Filename: fmt.Sprintf("OS_%s.pdf", order.ID),
	}
}

func itemRows(items []entities.ServiceItem) []ItemRow {
	n := len(items)
	if n < minItemRows {
		n = minItemRows
	}
	rows := make([]ItemRow, n)
	for i, it := range items {
		rows[i] = ItemRow{Description: it.Description, Value: FormatBRL(it.Value)}
	}
	return rows
}

// FormatDate renders the stored YYYY-MM-DD order date in the Brazilian
// DD/MM/YYYY form. Unparseable dates print as stored.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// FormatBRL renders a value as Brazilian currency: R$ 1.234,56.
func FormatBRL(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
