package entity

import "github.com/joseph-ayodele/outfit-advisor/constants"

// OutfitScheme is one proposed outfit across the five slots.
type OutfitScheme struct {
	Top         *GarmentRef `json:"top"`
	Bottom      *GarmentRef `json:"bottom"`
	Outerwear   *GarmentRef `json:"outerwear"`
	Shoes       *GarmentRef `json:"shoes"`
	Accessories *GarmentRef `json:"accessories"`
	Description string      `json:"description"`
}

// Get returns the garment in the given slot, or nil.
func (s *OutfitScheme) Get(slot constants.Slot) *GarmentRef {
	switch slot {
	case constants.Top:
		return s.Top
	case constants.Bottom:
		return s.Bottom
	case constants.Outerwear:
		return s.Outerwear
	case constants.Shoes:
		return s.Shoes
	case constants.Accessories:
		return s.Accessories
	}
	return nil
}

// Set stores ref in the given slot. Unknown slots are ignored.
func (s *OutfitScheme) Set(slot constants.Slot, ref *GarmentRef) {
	switch slot {
	case constants.Top:
		s.Top = ref
	case constants.Bottom:
		s.Bottom = ref
	case constants.Outerwear:
		s.Outerwear = ref
	case constants.Shoes:
		s.Shoes = ref
	case constants.Accessories:
		s.Accessories = ref
	}
}

// ImageSlot is the avatar preview setting for one slot.
type ImageSlot struct {
	Color string `json:"color"`
	Type  string `json:"type"`
}

// ImageConfig drives the avatar preview rendered by the client.
type ImageConfig struct {
	Top         *ImageSlot `json:"top"`
	Bottom      *ImageSlot `json:"bottom"`
	Outerwear   *ImageSlot `json:"outerwear"`
	Shoes       *ImageSlot `json:"shoes"`
	Accessories *ImageSlot `json:"accessories"`
}

// Set stores the preview setting for slot. Unknown slots are ignored.
func (c *ImageConfig) Set(slot constants.Slot, v *ImageSlot) {
	switch slot {
	case constants.Top:
		c.Top = v
	case constants.Bottom:
		c.Bottom = v
	case constants.Outerwear:
		c.Outerwear = v
	case constants.Shoes:
		c.Shoes = v
	case constants.Accessories:
		c.Accessories = v
	}
}
