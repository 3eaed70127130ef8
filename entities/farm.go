package entities

type SizeUnit string

const (
	Acres        SizeUnit = "acres"
	Hectares     SizeUnit = "hectares"
	SquareFeet   SizeUnit = "square_feet"
	SquareMeters SizeUnit = "square_meters"
)

func (u SizeUnit) Valid() bool {
	switch u {
	case Acres, Hectares, SquareFeet, SquareMeters:
		return true
	}
	return false
}

type Farm struct {
	ID       int      `json:"Id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Size     float64  `json:"size"`
	SizeUnit SizeUnit `json:"sizeUnit"`
}

// FarmForm is the full set of editable farm fields as submitted by a form.
type FarmForm struct {
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Size     FormValue `json:"size"`
	SizeUnit SizeUnit  `json:"sizeUnit"`
}

// Form returns the farm as an edit form, the inverse of what a codec decodes.
func (f Farm) Form() FarmForm {
	return FarmForm{Name: f.Name, Location: f.Location, Size: FloatValue(f.Size), SizeUnit: f.SizeUnit}
}
