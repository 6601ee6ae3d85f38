package model

// PlantingRecord represents one planting entry. The photo content itself is
// session-resident only (see farm.AttachmentCache); the record carries just
// the file name, so only that metadata survives a restart.
type PlantingRecord struct {
	ID            string `json:"id"`
	CropName      string `json:"cropName"`
	PlantingDate  Date   `json:"plantingDate"`
	InputsUsed    string `json:"inputsUsed"`
	Quantity      string `json:"quantity"` // free-form, e.g. "10 acres", "500 units"
	Location      string `json:"location"`
	PhotoFileName string `json:"photoFileName,omitempty"`
}
