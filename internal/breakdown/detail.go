// Package breakdown extracts the display side of a quote: per-room option
// summaries and the bullet lines shared by the on-screen breakdown and both
// emails.
package breakdown

import "github.com/Simplici0/ebs-estimator/internal/quote"

// ModuleDetail lists the display attributes of every room in one service.
type ModuleDetail struct {
	Service quote.Service `json:"service"`
	Module  string        `json:"module"`
	Rooms   []RoomDetail  `json:"rooms"`
}

// RoomDetail carries one room's display attributes. Exactly one of the
// per-service pointers is set, matching Service. ID is the form's room id.
type RoomDetail struct {
	Service    quote.Service     `json:"service"`
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Kitchen    *KitchenDetail    `json:"kitchen,omitempty"`
	Bathroom   *BathroomDetail   `json:"bathroom,omitempty"`
	Flooring   *FlooringDetail   `json:"flooring,omitempty"`
	Carpentry  *CarpentryDetail  `json:"carpentry,omitempty"`
	Painting   *PaintingDetail   `json:"painting,omitempty"`
	Plastering *PlasteringDetail `json:"plastering,omitempty"`
}

// Electrics, Plumbing and FloorTilingArea are only filled when the room asks
// for those alterations.
type KitchenDetail struct {
	Size            string   `json:"size,omitempty"`
	Worktop         string   `json:"worktop,omitempty"`
	Electrics       []string `json:"electrics,omitempty"`
	Plumbing        []string `json:"plumbing,omitempty"`
	Splashback      bool     `json:"splashback,omitempty"`
	FloorTilingArea float64  `json:"floorTilingArea,omitempty"`
}

// BathroomDetail holds the display labels of one bathroom.
type BathroomDetail struct {
	Size          string   `json:"size,omitempty"`
	Layout        string   `json:"layout,omitempty"`
	Fixtures      []string `json:"fixtures,omitempty"`
	WallTiling    int      `json:"wallTiling,omitempty"`
	FloorTiling   bool     `json:"floorTiling,omitempty"`
	TileSize      string   `json:"tileSize,omitempty"`
	Electrics     []string `json:"electrics,omitempty"`
	Plumbing      []string `json:"plumbing,omitempty"`
	FinishQuality string   `json:"finishQuality,omitempty"`
	Access        string   `json:"access,omitempty"`
}

// FlooringDetail holds the display labels of one floor.
type FlooringDetail struct {
	Type          string  `json:"type,omitempty"`
	Area          float64 `json:"area,omitempty"`
	Subfloor      string  `json:"subfloor,omitempty"`
	Layout        string  `json:"layout,omitempty"`
	Pattern       string  `json:"pattern,omitempty"`
	FinishQuality string  `json:"finishQuality,omitempty"`
	RemoveOld     bool    `json:"removeOld,omitempty"`
	TrimDoors     float64 `json:"trimDoors,omitempty"`
	FitSkirting   bool    `json:"fitSkirting,omitempty"`
	WasteRemoval  bool    `json:"wasteRemoval,omitempty"`
}

// CarpentryDetail holds the quantities of one carpentry room.
type CarpentryDetail struct {
	DoorCount         float64 `json:"doorCount,omitempty"`
	SkirtingMetres    float64 `json:"skirtingMetres,omitempty"`
	ArchitraveMetres  float64 `json:"architraveMetres,omitempty"`
	WardrobeMetres    float64 `json:"wardrobeMetres,omitempty"`
	FinishType        string  `json:"finishType,omitempty"`
	BespokeComplexity string  `json:"bespokeComplexity,omitempty"`
}

// Staircase fields are only filled for stairs room types.
type PaintingDetail struct {
	Type               string   `json:"type,omitempty"`
	Size               string   `json:"size,omitempty"`
	Surfaces           []string `json:"surfaces,omitempty"`
	Coats              float64  `json:"coats,omitempty"`
	Colours            float64  `json:"colours,omitempty"`
	MinorRepairs       bool     `json:"minorRepairs,omitempty"`
	WallpaperRemoval   string   `json:"wallpaperRemoval,omitempty"`
	Doors              float64  `json:"doors,omitempty"`
	Windows            float64  `json:"windows,omitempty"`
	StaircaseHeight    string   `json:"staircaseHeight,omitempty"`
	SpindleCount       float64  `json:"spindleCount,omitempty"`
	HandrailsStringers bool     `json:"handrailsStringers,omitempty"`
}

// WorkType holds the canonical work type when the raw value is recognised.
type PlasteringDetail struct {
	WorkType         string  `json:"workType,omitempty"`
	Area             float64 `json:"area,omitempty"`
	PatchCount       float64 `json:"patchCount,omitempty"`
	SurfaceCondition string  `json:"surfaceCondition,omitempty"`
	FinishLevel      string  `json:"finishLevel,omitempty"`
	Access           string  `json:"access,omitempty"`
}

// ModuleDetails builds the display details for every selected service that
// has rooms, in the fixed service order. It does not price anything.
func ModuleDetails(form quote.FormData) []ModuleDetail {
	out := []ModuleDetail{}
	for _, s := range quote.ServiceOrder {
		if !form.Populated(s) {
			continue
		}
		out = append(out, ModuleDetail{Service: s, Module: s.DisplayName(), Rooms: roomDetails(form, s)})
	}
	return out
}

func roomDetails(form quote.FormData, s quote.Service) []RoomDetail {
	var rooms []RoomDetail
	add := func(i int, id int64, name string, fill func(*RoomDetail)) {
		rd := RoomDetail{Service: s, ID: id, Title: quote.RoomTitle(name, i)}
		fill(&rd)
		rooms = append(rooms, rd)
	}

	switch s {
	case quote.ServiceKitchen:
		for i, r := range form.Kitchen.Areas {
			add(i, r.ID, r.Name, func(rd *RoomDetail) { rd.Kitchen = kitchenDetail(r) })
		}
	case quote.ServiceBathroom:
		for i, r := range form.Bathroom.Rooms {
			add(i, r.ID, r.Name, func(rd *RoomDetail) { rd.Bathroom = bathroomDetail(r) })
		}
	case quote.ServiceFlooring:
		for i, r := range form.Flooring.Areas {
			add(i, r.ID, r.Name, func(rd *RoomDetail) { rd.Flooring = flooringDetail(r) })
		}
	case quote.ServiceCarpentry:
		for i, r := range form.Carpentry.Areas {
			add(i, r.ID, r.Name, func(rd *RoomDetail) { rd.Carpentry = carpentryDetail(r) })
		}
	case quote.ServicePainting:
		for i, r := range form.Painting.Rooms {
			add(i, r.ID, r.Name, func(rd *RoomDetail) { rd.Painting = paintingDetail(r) })
		}
	case quote.ServicePlastering:
		for i, r := range form.Plastering.Areas {
			add(i, r.ID, r.Name, func(rd *RoomDetail) { rd.Plastering = plasteringDetail(r) })
		}
	}
	return rooms
}

func kitchenDetail(r quote.KitchenRoom) *KitchenDetail {
	d := &KitchenDetail{
		Size:       string(r.Size),
		Worktop:    string(r.Worktop),
		Splashback: r.Splashback,
	}
	if r.RequireElectricalAlterations {
		d.Electrics = r.Electrics
	}
	if r.RequirePlumbingAlterations {
		d.Plumbing = r.Plumbing
	}
	if r.RequireFloorTiling {
		d.FloorTilingArea = r.FloorTilingArea
	}
	return d
}

func bathroomDetail(r quote.BathroomRoom) *BathroomDetail {
	d := &BathroomDetail{
		Size:          string(r.Size),
		Layout:        string(r.Layout),
		Fixtures:      r.Fixtures,
		WallTiling:    int(r.WallTiling),
		FloorTiling:   r.FloorTiling,
		TileSize:      string(r.TileSize),
		FinishQuality: string(r.FinishQuality),
		Access:        string(r.Access),
	}
	if r.RequireElectricalAlterations {
		d.Electrics = r.Electrics
	}
	if r.RequirePlumbingAlterations {
		d.Plumbing = r.Plumbing
	}
	return d
}

func flooringDetail(r quote.FlooringRoom) *FlooringDetail {
	return &FlooringDetail{
		Type:          string(r.Type),
		Area:          r.Area,
		Subfloor:      string(r.Subfloor),
		Layout:        string(r.Layout),
		Pattern:       string(r.Pattern),
		FinishQuality: string(r.FinishQuality),
		RemoveOld:     r.RemoveOld,
		TrimDoors:     r.TrimDoors,
		FitSkirting:   r.FitSkirting,
		WasteRemoval:  r.WasteRemoval,
	}
}

func carpentryDetail(r quote.CarpentryRoom) *CarpentryDetail {
	return &CarpentryDetail{
		DoorCount:         r.DoorCount,
		SkirtingMetres:    r.SkirtingMetres,
		ArchitraveMetres:  r.ArchitraveMetres,
		WardrobeMetres:    r.WardrobeMetres,
		FinishType:        string(r.FinishType),
		BespokeComplexity: string(r.BespokeComplexity),
	}
}

func paintingDetail(r quote.PaintingRoom) *PaintingDetail {
	d := &PaintingDetail{
		Type:         string(r.Type),
		Size:         string(r.Size),
		Coats:        r.Coats,
		Colours:      r.Colours,
		MinorRepairs: r.MinorRepairs,
		Doors:        r.Doors,
		Windows:      r.Windows,
	}
	if r.Surfaces.Walls {
		d.Surfaces = append(d.Surfaces, "walls")
	}
	if r.Surfaces.Ceiling {
		d.Surfaces = append(d.Surfaces, "ceiling")
	}
	if r.Surfaces.Woodwork {
		d.Surfaces = append(d.Surfaces, "woodwork")
	}
	if r.WallpaperRemoval.Required() {
		d.WallpaperRemoval = string(r.WallpaperRemoval)
	}
	if r.Type.IsStairs() {
		d.StaircaseHeight = string(r.StaircaseHeight)
		d.SpindleCount = r.SpindleCount
		d.HandrailsStringers = r.HandrailsStringers
	}
	return d
}

func plasteringDetail(r quote.PlasteringRoom) *PlasteringDetail {
	work := string(quote.NormalizePlasterWork(r.WorkType))
	if work == "" {
		work = r.WorkType
	}
	return &PlasteringDetail{
		WorkType:         work,
		Area:             r.Area,
		PatchCount:       r.PatchCount,
		SurfaceCondition: string(r.SurfaceCondition),
		FinishLevel:      string(r.FinishLevel),
		Access:           string(r.Access),
	}
}
