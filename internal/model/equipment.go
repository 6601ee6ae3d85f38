package model

// Equipment represents a piece of farm machinery or tooling.
type Equipment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Reference    string `json:"reference"`
	Status       string `json:"status"`
	PurchaseDate Date   `json:"purchaseDate"`
}

// Equipment statuses.
const (
	EquipmentStatusGood             = "bueno"
	EquipmentStatusNeedsMaintenance = "necesita_mantenimiento"
	EquipmentStatusOutOfService     = "fuera_de_servicio"
)

// EquipmentStatuses lists all valid equipment statuses.
var EquipmentStatuses = []string{
	EquipmentStatusGood,
	EquipmentStatusNeedsMaintenance,
	EquipmentStatusOutOfService,
}
