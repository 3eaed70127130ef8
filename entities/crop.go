package entities

type CropType string

const (
	Corn     CropType = "corn"
	Wheat    CropType = "wheat"
	Soybeans CropType = "soybeans"
	Rice     CropType = "rice"
	Tomatoes CropType = "tomatoes"
	Potatoes CropType = "potatoes"
	Carrots  CropType = "carrots"
	Lettuce  CropType = "lettuce"
)

func (t CropType) Valid() bool {
	switch t {
	case Corn, Wheat, Soybeans, Rice, Tomatoes, Potatoes, Carrots, Lettuce:
		return true
	}
	return false
}

type CropStatus string

const (
	Planted   CropStatus = "planted"
	Growing   CropStatus = "growing"
	Ready     CropStatus = "ready"
	Harvested CropStatus = "harvested"
)

func (s CropStatus) Valid() bool {
	switch s {
	case Planted, Growing, Ready, Harvested:
		return true
	}
	return false
}

type Crop struct {
	ID              int        `json:"Id"`
	FarmID          int        `json:"farmId"`
	Type            CropType   `json:"type"`
	PlantingDate    string     `json:"plantingDate"`
	ExpectedHarvest string     `json:"expectedHarvest"`
	Field           string     `json:"field"` // free-text location, e.g. "North Field"
	Status          CropStatus `json:"status"`
	Notes           string     `json:"notes"`
}

type CropForm struct {
	FarmID          FormValue  `json:"farmId"`
	Type            CropType   `json:"type"`
	PlantingDate    string     `json:"plantingDate"`
	ExpectedHarvest string     `json:"expectedHarvest"`
	Field           string     `json:"field"`
	Status          CropStatus `json:"status"`
	Notes           string     `json:"notes"`
}

func (c Crop) Form() CropForm {
	return CropForm{
		FarmID:          IntValue(c.FarmID),
		Type:            c.Type,
		PlantingDate:    c.PlantingDate,
		ExpectedHarvest: c.ExpectedHarvest,
		Field:           c.Field,
		Status:          c.Status,
		Notes:           c.Notes,
	}
}

// Label is how a crop is named in task forms: "corn - North Field".
func (c Crop) Label() string { return string(c.Type) + " - " + c.Field }
