package quote

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Service identifies one renovation trade the customer can opt into.
type Service string

const (
	ServiceKitchen    Service = "kitchen"
	ServiceBathroom   Service = "bathroom"
	ServiceFlooring   Service = "flooring"
	ServiceCarpentry  Service = "carpentry"
	ServicePainting   Service = "painting"
	ServicePlastering Service = "plastering"
)

// ServiceOrder is the fixed order services are priced and displayed in.
var ServiceOrder = []Service{
	ServiceKitchen,
	ServiceBathroom,
	ServiceFlooring,
	ServiceCarpentry,
	ServicePainting,
	ServicePlastering,
}

// DisplayName is the name shared by ServiceResult.Name and ModuleDetail.Module.
func (s Service) DisplayName() string {
	switch s {
	case ServiceKitchen:
		return "Kitchen"
	case ServiceBathroom:
		return "Bathroom"
	case ServiceFlooring:
		return "Flooring"
	case ServiceCarpentry:
		return "Carpentry & Joinery"
	case ServicePainting:
		return "Painting & Decorating"
	case ServicePlastering:
		return "Plastering"
	default:
		return string(s)
	}
}

// FormData is the wizard's accumulated selections. It is treated as an
// immutable value: updates produce a new FormData.
type FormData struct {
	PropertyType     PropertyType     `json:"propertyType,omitempty"`
	SelectedServices []Service        `json:"selectedServices"`
	Kitchen          *KitchenData     `json:"kitchen,omitempty"`
	Bathroom         *BathroomData    `json:"bathroom,omitempty"`
	Flooring         *FlooringData    `json:"flooring,omitempty"`
	Carpentry        *CarpentryData   `json:"carpentry,omitempty"`
	Painting         *PaintingData    `json:"painting,omitempty"`
	Plastering       *PlasteringData  `json:"plastering,omitempty"`
	Additionals      []Additional     `json:"additionals,omitempty"`
	Materials        *Materials       `json:"materials,omitempty"`
	DesignManagement DesignManagement `json:"designManagement,omitempty"`
}

// Selected reports whether the customer opted into s.
func (f FormData) Selected(s Service) bool {
	for _, sel := range f.SelectedServices {
		if sel == s {
			return true
		}
	}
	return false
}

// RoomCount returns how many rooms s carries, regardless of selection.
func (f FormData) RoomCount(s Service) int {
	switch s {
	case ServiceKitchen:
		if f.Kitchen != nil {
			return len(f.Kitchen.Areas)
		}
	case ServiceBathroom:
		if f.Bathroom != nil {
			return len(f.Bathroom.Rooms)
		}
	case ServiceFlooring:
		if f.Flooring != nil {
			return len(f.Flooring.Areas)
		}
	case ServiceCarpentry:
		if f.Carpentry != nil {
			return len(f.Carpentry.Areas)
		}
	case ServicePainting:
		if f.Painting != nil {
			return len(f.Painting.Rooms)
		}
	case ServicePlastering:
		if f.Plastering != nil {
			return len(f.Plastering.Areas)
		}
	}
	return 0
}

// Populated reports whether s is selected and has at least one room.
func (f FormData) Populated(s Service) bool {
	return f.Selected(s) && f.RoomCount(s) > 0
}

// RoomTitle returns name, or "Room N" for a blank name at zero-based index i.
func RoomTitle(name string, i int) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return fmt.Sprintf("Room %d", i+1)
}

// KitchenData is the kitchen section of the form.
type KitchenData struct {
	Areas []KitchenRoom `json:"areas"`
}

// KitchenRoom is one kitchen area.
type KitchenRoom struct {
	ID                           int64    `json:"id"`
	Name                         string   `json:"name"`
	Size                         Size     `json:"size"`
	Worktop                      Worktop  `json:"worktop"`
	RequireElectricalAlterations bool     `json:"requireElectricalAlterations"`
	Electrics                    []string `json:"electrics"`
	RequirePlumbingAlterations   bool     `json:"requirePlumbingAlterations"`
	Plumbing                     []string `json:"plumbing"`
	Splashback                   bool     `json:"splashback"`
	RequireFloorTiling           bool     `json:"requireFloorTiling"`
	FloorTilingArea              float64  `json:"floorTilingArea"`
}

// BathroomData is the bathroom section of the form.
type BathroomData struct {
	Rooms []BathroomRoom `json:"rooms"`
}

// BathroomRoom is one bathroom or en-suite.
type BathroomRoom struct {
	ID                           int64         `json:"id"`
	Name                         string        `json:"name"`
	Size                         Size          `json:"size"`
	Layout                       LayoutChange  `json:"layout"`
	Fixtures                     []string      `json:"fixtures"`
	WallTiling                   WallTiling    `json:"wallTiling"`
	FloorTiling                  bool          `json:"floorTiling"`
	TileSize                     TileSize      `json:"tileSize"`
	RequireElectricalAlterations bool          `json:"requireElectricalAlterations"`
	Electrics                    []string      `json:"electrics"`
	RequirePlumbingAlterations   bool          `json:"requirePlumbingAlterations"`
	Plumbing                     []string      `json:"plumbing"`
	FinishQuality                FinishQuality `json:"finishQuality"`
	Access                       Access        `json:"access"`
}

// HasFixture reports whether id is among the room's fixtures.
func (r BathroomRoom) HasFixture(id string) bool {
	for _, f := range r.Fixtures {
		if f == id {
			return true
		}
	}
	return false
}

// WallTiling is a wall-tiling coverage percentage. The web client sends it as
// a string ("50"); plain numbers are accepted too.
type WallTiling int

func (w *WallTiling) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" || raw == `""` {
		*w = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("wallTiling: %q is not a percentage", raw)
	}
	*w = WallTiling(v)
	return nil
}

func (w WallTiling) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(w)))
}

// FlooringData is the flooring section of the form.
type FlooringData struct {
	Areas []FlooringRoom `json:"areas"`
}

// FlooringRoom is one floor to lay. Area is in square metres.
type FlooringRoom struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Type          FloorType     `json:"type"`
	Area          float64       `json:"area"`
	Subfloor      Subfloor      `json:"subfloor"`
	Layout        FloorLayout   `json:"layout"`
	Pattern       FloorPattern  `json:"pattern"`
	FinishQuality FinishQuality `json:"finishQuality"`
	RemoveOld     bool          `json:"removeOld"`
	TrimDoors     float64       `json:"trimDoors"`
	FitSkirting   bool          `json:"fitSkirting"`
	WasteRemoval  bool          `json:"wasteRemoval"`
}

// CarpentryData is the carpentry section of the form.
type CarpentryData struct {
	Areas []CarpentryRoom `json:"areas"`
}

// CarpentryRoom holds joinery counts and running metres for a room.
type CarpentryRoom struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	DoorCount         float64           `json:"doorCount"`
	SkirtingMetres    float64           `json:"skirtingMetres"`
	ArchitraveMetres  float64           `json:"architraveMetres"`
	WardrobeMetres    float64           `json:"wardrobeMetres"`
	FinishType        CarpentryFinish   `json:"finishType"`
	BespokeComplexity BespokeComplexity `json:"bespokeComplexity"`
}

// PaintingData is the painting section of the form.
type PaintingData struct {
	Rooms []PaintingRoom `json:"rooms"`
}

// Surfaces marks which parts of a room are painted.
type Surfaces struct {
	Walls    bool `json:"walls"`
	Ceiling  bool `json:"ceiling"`
	Woodwork bool `json:"woodwork"`
}

// PaintingRoom is one room to decorate.
type PaintingRoom struct {
	ID                 int64            `json:"id"`
	Name               string           `json:"name"`
	Type               PaintRoomType    `json:"type"`
	Size               Size             `json:"size"`
	Surfaces           Surfaces         `json:"surfaces"`
	Coats              float64          `json:"coats"`
	Colours            float64          `json:"colours"`
	MinorRepairs       bool             `json:"minorRepairs"`
	WallpaperRemoval   WallpaperRemoval `json:"wallpaperRemoval"`
	Doors              float64          `json:"doors"`
	Windows            float64          `json:"windows"`
	StaircaseHeight    StaircaseHeight  `json:"staircaseHeight"`
	SpindleCount       float64          `json:"spindleCount"`
	HandrailsStringers bool             `json:"handrailsStringers"`
}

// PlasteringData is the plastering section of the form.
type PlasteringData struct {
	Areas []PlasteringRoom `json:"areas"`
}

// PlasteringRoom is one room to plaster. Areas are in square metres.
type PlasteringRoom struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	WorkType         string           `json:"workType"`
	Area             float64          `json:"area"`
	PatchCount       float64          `json:"patchCount"`
	SurfaceCondition SurfaceCondition `json:"surfaceCondition"`
	FinishLevel      FinishQuality    `json:"finishLevel"`
	Access           Access           `json:"access"`
}

// Additional is a flat add-on line item such as skip hire.
type Additional struct {
	ID       string  `json:"id"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

// MaterialsMode switches between ballpark bands and custom line items.
type MaterialsMode string

const (
	MaterialsBallpark MaterialsMode = "ballpark"
	MaterialsCustom   MaterialsMode = "custom"
)

// MaterialSelection is a ballpark band and quantity for one material.
type MaterialSelection struct {
	Quality  MaterialQuality `json:"quality"`
	Quantity float64         `json:"quantity"`
}

// CustomMaterial is a user-priced material line.
type CustomMaterial struct {
	ID     int64   `json:"id,omitempty"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Materials is the optional materials estimate.
type Materials struct {
	Mode           MaterialsMode                `json:"mode"`
	IncludeInTotal bool                         `json:"includeInTotal"`
	Selected       map[string]MaterialSelection `json:"selected,omitempty"`
	Custom         []CustomMaterial             `json:"custom,omitempty"`
	Contingency    float64                      `json:"contingency"`
}
