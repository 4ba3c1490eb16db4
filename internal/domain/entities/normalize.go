package entities

// legacyItemFallback names the synthesized item when an old record has no
// description at all.
const legacyItemFallback = "Serviço Geral"

// NormalizeLegacyOrder upgrades records that predate the serviceItems field to
// the current shape: a single item is synthesized from the legacy free-text
// description and the labor value.
//
// Only a nil ServiceItems triggers the migration. An empty (non-nil) slice
// means the user deleted every row of a current-shape record and is left
// alone.
func NormalizeLegacyOrder(o ServiceOrder) ServiceOrder {
	if o.ServiceItems != nil {
		return o
	}
	desc := o.ServiceDescription
	if desc == "" {
		desc = legacyItemFallback
	}
	o.ServiceItems = []ServiceItem{{Description: desc, Value: o.Values.Labor}}
	return o
}
