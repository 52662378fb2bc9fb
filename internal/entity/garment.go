package entity

// GarmentRef is one concrete garment occupying one outfit slot.
type GarmentRef struct {
	Name  string `json:"name"`
	Color string `json:"color"` // canonical #RRGGBB
}

// UserGarment is a garment supplied by the caller. Color is free text
// (a color name or a hex value) and Type names the slot.
type UserGarment struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}
