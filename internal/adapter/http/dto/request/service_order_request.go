package request

import (
	"oficina_os/internal/domain/entities"
)

type ServiceItemRequest struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

type CompanyRequest struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Phone   string `json:"phone"`
	LogoURL string `json:"logoUrl"`
}

type ClientRequest struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
	Phone    string `json:"phone"`
}

type MechanicRequest struct {
	Name     string `json:"name"`
	IDNumber string `json:"idNumber"`
}

type VehicleRequest struct {
	Type    string `json:"type"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Plate   string `json:"plate"`
	Mileage string `json:"mileage"`
}

type OrderValuesRequest struct {
	Labor  float64 `json:"labor"`
	Travel float64 `json:"travel"`
}

type SignaturesRequest struct {
	Client   string `json:"client"`
	Mechanic string `json:"mechanic"`
}

// ServiceOrderRequest is the save payload: a full order snapshot. ID may be
// empty, in which case the order book allocates the next sequential one.
type ServiceOrderRequest struct {
	ID                 string               `json:"id"`
	Date               string               `json:"date"`
	Company            CompanyRequest       `json:"company"`
	Client             ClientRequest        `json:"client"`
	Mechanic           MechanicRequest      `json:"mechanic"`
	Vehicle            VehicleRequest       `json:"vehicle"`
	ServiceDescription string               `json:"serviceDescription"`
	ServiceItems       []ServiceItemRequest `json:"serviceItems"`
	Values             OrderValuesRequest   `json:"values"`
	PaymentMethod      string               `json:"paymentMethod"`
	PaymentStatus      string               `json:"paymentStatus"`
	Observations       string               `json:"observations"`
	Signatures         SignaturesRequest    `json:"signatures"`
}

// ToEntity maps the payload onto the domain record. A nil ServiceItems slice
// stays nil so records predating the itemized breakdown get normalized
// downstream, while an explicitly empty list stays empty.
func (r ServiceOrderRequest) ToEntity() entities.ServiceOrder {
	var items []entities.ServiceItem
	if r.ServiceItems != nil {
		items = make([]entities.ServiceItem, len(r.ServiceItems))
		for i, it := range r.ServiceItems {
			items[i] = entities.ServiceItem{Description: it.Description, Value: it.Value}
		}
	}

	return entities.ServiceOrder{
		ID:   r.ID,
		Date: r.Date,
		Company: entities.Company{
			Name: r.Company.Name, CNPJ: r.Company.CNPJ, Phone: r.Company.Phone, LogoURL: r.Company.LogoURL,
		},
		Client: entities.Client{
			Name: r.Client.Name, IDNumber: r.Client.IDNumber, Phone: r.Client.Phone,
		},
		Mechanic: entities.Mechanic{
			Name: r.Mechanic.Name, IDNumber: r.Mechanic.IDNumber,
		},
		Vehicle: entities.Vehicle{
			Type:    entities.VehicleType(r.Vehicle.Type),
			Brand:   r.Vehicle.Brand,
			Model:   r.Vehicle.Model,
			Plate:   r.Vehicle.Plate,
			Mileage: r.Vehicle.Mileage,
		},
		ServiceDescription: r.ServiceDescription,
		ServiceItems:       items,
		Values:             entities.OrderValues{Labor: r.Values.Labor, Travel: r.Values.Travel},
		PaymentMethod:      entities.PaymentMethod(r.PaymentMethod),
		PaymentStatus:      entities.PaymentStatus(r.PaymentStatus),
		Observations:       r.Observations,
		Signatures:         entities.Signatures{Client: r.Signatures.Client, Mechanic: r.Signatures.Mechanic},
	}
}
