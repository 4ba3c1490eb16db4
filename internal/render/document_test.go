package render

import (
	"testing"

	"oficina_os/internal/domain/entities"
)

func sampleOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:   "OS-0042",
		Date: "2025-03-09",
		Company: entities.Company{
			Name: "MD DIESEL", CNPJ: "00.000.000/0001-00", Phone: "(11) 99999-0000",
		},
		Client:  entities.Client{Name: "Transportadora Santos", IDNumber: "12.345.678/0001-00"},
		Vehicle: entities.Vehicle{Type: entities.VehicleTypeCaminhao, Brand: "Scania", Model: "R450", Plate: "ABC-1234", Mileage: "412000"},
		ServiceItems: []entities.ServiceItem{
			{Description: "Troca de bomba injetora", Value: 1200},
			{Description: "Jogo de juntas", Value: 380},
		},
		Values:        entities.OrderValues{Labor: 1500, Travel: 250},
		PaymentMethod: entities.PaymentMethodPix,
		PaymentStatus: entities.PaymentStatusPendente,
		Signatures:    entities.Signatures{Client: "assinado"},
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(sampleOrder(), entities.CompanyProfile{})

	if doc.OrderID != "OS-0042" || doc.Filename != "OS_OS-0042.pdf" {
		t.Fatalf("unexpected identity: %q %q", doc.OrderID, doc.Filename)
	}
	if doc.Date != "09/03/2025" {
		t.Fatalf("unexpected date: %q", doc.Date)
	}
	if doc.Company.Fields[0].Value != "MD DIESEL" {
		t.Fatalf("company snapshot must win: %+v", doc.Company)
	}
	if doc.Vehicle.Fields[1].Value != "Scania R450" {
		t.Fatalf("unexpected vehicle line: %+v", doc.Vehicle.Fields[1])
	}

	// Total is labor + travel, not the 1580 the items sum to.
	if doc.Costs.Total != "R$ 1.750,00" {
		t.Fatalf("unexpected total: %q", doc.Costs.Total)
	}
	if doc.Costs.Labor != "R$ 1.500,00" || doc.Costs.Travel != "R$ 250,00" {
		t.Fatalf("unexpected breakdown: %+v", doc.Costs)
	}

	if len(doc.Signatures) != 2 || doc.Signatures[0].Signed != "assinado" || doc.Signatures[1].Signed != "" {
		t.Fatalf("unexpected signatures: %+v", doc.Signatures)
	}
}

func TestBuildDocumentPadsItemTable(t *testing.T) {
	doc := BuildDocument(sampleOrder(), entities.CompanyProfile{})

	if len(doc.Items) != minItemRows {
		t.Fatalf("expected %d rows, got %d", minItemRows, len(doc.Items))
	}
	if doc.Items[0].Description != "Troca de bomba injetora" || doc.Items[0].Value != "R$ 1.200,00" {
		t.Fatalf("unexpected first row: %+v", doc.Items[0])
	}
	if doc.Items[2].Description != "" || doc.Items[2].Value != "" {
		t.Fatalf("padding rows must be blank: %+v", doc.Items[2])
	}
}

func TestBuildDocumentProfileFallback(t *testing.T) {
	o := sampleOrder()
	o.Company = entities.Company{}

	doc := BuildDocument(o, entities.CompanyProfile{Name: "Oficina Central", Phone: "(00) 0000-0000"})
	if doc.Company.Fields[0].Value != "Oficina Central" {
		t.Fatalf("expected profile fallback, got %+v", doc.Company)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-12-01"); got != "01/12/2025" {
		t.Fatalf("unexpected: %q", got)
	}
	// Records hand-edited outside the app keep whatever is stored.
	if got := FormatDate("dezembro de 2025"); got != "dezembro de 2025" {
		t.Fatalf("unexpected passthrough: %q", got)
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{150, "R$ 150,00"},
		{1750, "R$ 1.750,00"},
		{1234567.5, "R$ 1.234.567,50"},
		{-42.1, "-R$ 42,10"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.in); got != tc.want {
			t.Fatalf("FormatBRL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
