package entities

import "time"

// VehicleType classifies the serviced vehicle. Values are the labels printed
// on the order document, matching the shop's forms.
type VehicleType string

const (
	VehicleTypeCaminhao VehicleType = "Caminhão"
	VehicleTypeOnibus   VehicleType = "Ônibus"
	VehicleTypeMaquina  VehicleType = "Máquina"
)

// PaymentMethod is how the client settles the order.
type PaymentMethod string

const (
	PaymentMethodDinheiro      PaymentMethod = "Dinheiro"
	PaymentMethodPix           PaymentMethod = "Pix"
	PaymentMethodCartao        PaymentMethod = "Cartão"
	PaymentMethodTransferencia PaymentMethod = "Transferência"
)

// PaymentStatus tracks whether the order has been settled.
type PaymentStatus string

const (
	PaymentStatusPago     PaymentStatus = "Pago"
	PaymentStatusPendente PaymentStatus = "Pendente"
)

// ServiceItem is one line of the itemized work breakdown. Item values are
// reference pricing only and never feed the order total.
type ServiceItem struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

type Company struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Phone   string `json:"phone"`
	LogoURL string `json:"logoUrl,omitempty"`
}

type Client struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	Phone    string `json:"phone"`
}

type Mechanic struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
}

type Vehicle struct {
	Type    VehicleType `json:"type"`
	Brand   string      `json:"brand"`
	Model   string      `json:"model"`
	Plate   string      `json:"plate"`
	Mileage string      `json:"mileage"`
}

// OrderValues holds the two fields that determine the binding total.
type OrderValues struct {
	Labor  float64 `json:"labor"`
	Travel float64 `json:"travel"`
}

type Signatures struct {
	Client   string `json:"client"`
	Mechanic string `json:"mechanic"`
}

// ServiceOrder is the central record (OS) persisted in DynamoDB.
//
// Storage model:
//   - PK: id (format OS-NNNN, assigned once at creation)
//   - flat columns client_name / vehicle_plate / total_value exist for remote
//     indexing; the content blob is authoritative.
//
// Invariant: the order total is Labor + Travel, regardless of what the
// itemized breakdown sums to. ServiceItems is informative.
type ServiceOrder struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Company  Company  `json:"company"`
	Client   Client   `json:"client"`
	Mechanic Mechanic `json:"mechanic,omitempty"`
	Vehicle  Vehicle  `json:"vehicle"`

	// ServiceDescription is the legacy single-field description used before
	// itemized breakdowns. Kept so old records round-trip unchanged.
	ServiceDescription string        `json:"serviceDescription,omitempty"`
	ServiceItems       []ServiceItem `json:"serviceItems"`

	Values        OrderValues   `json:"values"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	Observations  string        `json:"observations"`
	Signatures    Signatures    `json:"signatures"`
}

// Total is the binding order total: labor plus travel.
func (o ServiceOrder) Total() float64 {
	return o.Values.Labor + o.Values.Travel
}

// LocalDateString formats t as the order date (local calendar date, never
// UTC-shifted).
func LocalDateString(t time.Time) string {
	return t.Format("2006-01-02")
}
