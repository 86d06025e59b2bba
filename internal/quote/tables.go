package quote

import "strings"

// Every lookup below is a closed set of string variants with an explicit
// default arm, so an absent or unrecognised value always maps to the neutral
// entry instead of failing.

// PropertyType selects the property multiplier.
type PropertyType string

const (
	PropertyDetached     PropertyType = "detached"
	PropertySemiDetached PropertyType = "semi-detached"
	PropertyEndTerrace   PropertyType = "end-terrace"
	PropertyTerrace      PropertyType = "terrace"
	PropertyBungalow     PropertyType = "bungalow"
	PropertyFlat         PropertyType = "flat"
)

// Multiplier is the global day multiplier for the property type.
func (p PropertyType) Multiplier() float64 {
	switch p {
	case PropertyDetached:
		return 1.25
	case PropertySemiDetached:
		return 1.15
	case PropertyEndTerrace:
		return 1.10
	case PropertyTerrace:
		return 1.00
	case PropertyBungalow:
		return 1.10
	case PropertyFlat:
		return 0.85
	default:
		return 1.0
	}
}

// RateTier is a named pair of daily labour cost and efficiency factor.
type RateTier struct {
	Name       string
	DailyRate  float64
	Efficiency float64
}

var (
	Economy  = RateTier{Name: "economy", DailyRate: 200, Efficiency: 1.0}
	Standard = RateTier{Name: "standard", DailyRate: 250, Efficiency: 0.9}
	Premium  = RateTier{Name: "premium", DailyRate: 280, Efficiency: 0.85}
)

// Tier returns the fixed rate tier a service is charged at.
func (s Service) Tier() RateTier {
	if s == ServicePainting {
		return Economy
	}
	return Standard
}

// Size is the small/medium/large tier used by kitchens, bathrooms and
// painted rooms. Unset sizes price as medium, the wizard's default.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

func (s Size) normalized() Size {
	switch s {
	case SizeSmall, SizeLarge:
		return s
	default:
		return SizeMedium
	}
}

type dayRange struct{ low, high float64 }

func (s Size) kitchenBase() dayRange {
	switch s.normalized() {
	case SizeSmall:
		return dayRange{3, 5}
	case SizeLarge:
		return dayRange{8, 12}
	default:
		return dayRange{5, 8}
	}
}

func (s Size) bathroomBase() dayRange {
	switch s.normalized() {
	case SizeSmall:
		return dayRange{5, 8}
	case SizeLarge:
		return dayRange{12, 18}
	default:
		return dayRange{8, 12}
	}
}

// Worktop is the kitchen worktop material.
type Worktop string

const (
	WorktopLaminate  Worktop = "laminate"
	WorktopSolidWood Worktop = "solid_wood"
	WorktopQuartz    Worktop = "quartz"
	WorktopGranite   Worktop = "granite"
	WorktopMarble    Worktop = "marble"
)

func (w Worktop) multiplier() float64 {
	switch w {
	case WorktopLaminate:
		return 1.00
	case WorktopSolidWood:
		return 1.10
	case WorktopQuartz:
		return 1.15
	case WorktopGranite:
		return 1.20
	case WorktopMarble:
		return 1.25
	default:
		return 1.0
	}
}

// LayoutChange is how far a bathroom layout moves.
type LayoutChange string

const (
	LayoutKeep  LayoutChange = "keep"
	LayoutMinor LayoutChange = "minor"
	LayoutMajor LayoutChange = "major"
)

func (l LayoutChange) multiplier() float64 {
	switch l {
	case LayoutMinor:
		return 1.1
	case LayoutMajor:
		return 1.25
	default:
		return 1.0
	}
}

func (w WallTiling) addDays() float64 {
	switch w {
	case 25:
		return 0.5
	case 50:
		return 1.0
	case 75:
		return 1.5
	case 100:
		return 2.0
	default:
		return 0
	}
}

// TileSize is the bathroom tile format.
type TileSize string

const (
	TileSmall    TileSize = "small"
	TileStandard TileSize = "standard"
	TileLarge    TileSize = "large"
	TileSlab     TileSize = "slab"
)

func (t TileSize) multiplier() float64 {
	switch t {
	case TileSmall, TileLarge:
		return 1.1
	case TileSlab:
		return 1.25
	default:
		return 1.0
	}
}

// PlumbingComplexity is derived from how many plumbing points change.
type PlumbingComplexity string

const (
	PlumbingLight    PlumbingComplexity = "light"
	PlumbingModerate PlumbingComplexity = "moderate"
	PlumbingHeavy    PlumbingComplexity = "heavy"
)

func plumbingComplexity(points int) PlumbingComplexity {
	switch {
	case points >= 3:
		return PlumbingHeavy
	case points >= 1:
		return PlumbingModerate
	default:
		return PlumbingLight
	}
}

func (p PlumbingComplexity) multiplier() float64 {
	switch p {
	case PlumbingModerate:
		return 1.1
	case PlumbingHeavy:
		return 1.2
	default:
		return 1.0
	}
}

// FinishQuality scales labour by the standard of finish.
type FinishQuality string

const (
	FinishStandard FinishQuality = "standard"
	FinishHigh     FinishQuality = "high"
	FinishPremium  FinishQuality = "premium"
)

func (f FinishQuality) multiplier() float64 {
	switch f {
	case FinishHigh:
		return 1.08
	case FinishPremium:
		return 1.15
	default:
		return 1.0
	}
}

// Access is how easy the site is to reach.
type Access string

const (
	AccessEasy      Access = "easy"
	AccessStairs    Access = "stairs"
	AccessNoParking Access = "no_parking"
)

func (a Access) multiplier() float64 {
	switch a {
	case AccessStairs:
		return 1.07
	case AccessNoParking:
		return 1.1
	default:
		return 1.0
	}
}

// FloorType is the floor covering being fitted.
type FloorType string

const (
	FloorLaminate       FloorType = "laminate"
	FloorLVT            FloorType = "lvt"
	FloorEngineeredWood FloorType = "engineered_wood"
	FloorSolidWood      FloorType = "solid_wood"
	FloorCarpet         FloorType = "carpet"
	FloorTiles          FloorType = "tiles"
)

// speed is the square metres fitted per day.
func (t FloorType) speed() float64 {
	switch t {
	case FloorLaminate:
		return 18
	case FloorLVT:
		return 10
	case FloorEngineeredWood:
		return 12
	case FloorSolidWood, FloorTiles:
		return 8
	case FloorCarpet:
		return 25
	default:
		return 15
	}
}

// Subfloor is the preparation needed before fitting.
type Subfloor string

const (
	SubfloorGood   Subfloor = "good"
	SubfloorUneven Subfloor = "uneven"
	SubfloorPoor   Subfloor = "poor"
)

func (s Subfloor) multiplier() float64 {
	switch s {
	case SubfloorUneven:
		return 1.2
	case SubfloorPoor:
		return 1.35
	default:
		return 1.0
	}
}

// FloorLayout is the shape of the floor being laid.
type FloorLayout string

const (
	FloorLayoutSimple   FloorLayout = "simple"
	FloorLayoutComplex  FloorLayout = "complex"
	FloorLayoutMultiple FloorLayout = "multiple"
)

func (l FloorLayout) multiplier() float64 {
	switch l {
	case FloorLayoutComplex:
		return 1.15
	case FloorLayoutMultiple:
		return 1.25
	default:
		return 1.0
	}
}

// FloorPattern adds labour for anything but straight laying.
type FloorPattern string

const (
	PatternStraight    FloorPattern = "straight"
	PatternDiagonal    FloorPattern = "diagonal"
	PatternHerringbone FloorPattern = "herringbone"
)

func (p FloorPattern) multiplier() float64 {
	switch p {
	case PatternDiagonal:
		return 1.15
	case PatternHerringbone:
		return 1.35
	default:
		return 1.0
	}
}

// CarpentryFinish is the level of finish on joinery.
type CarpentryFinish string

const (
	CarpentryStandard CarpentryFinish = "standard"
	CarpentryPremium  CarpentryFinish = "premium"
	CarpentrySprayed  CarpentryFinish = "sprayed"
)

func (f CarpentryFinish) multiplier() float64 {
	switch f {
	case CarpentryPremium:
		return 1.15
	case CarpentrySprayed:
		return 1.2
	default:
		return 1.0
	}
}

// BespokeComplexity grades bespoke joinery.
type BespokeComplexity string

const (
	BespokeNone     BespokeComplexity = "none"
	BespokeSimple   BespokeComplexity = "simple"
	BespokeModerate BespokeComplexity = "moderate"
	BespokeComplex  BespokeComplexity = "complex"
)

func (b BespokeComplexity) multiplier() float64 {
	switch b {
	case BespokeModerate:
		return 1.15
	case BespokeComplex:
		return 1.3
	default:
		return 1.0
	}
}

// PaintRoomType picks the base painting rate.
type PaintRoomType string

const (
	PaintStandard   PaintRoomType = "standard"
	PaintHallway    PaintRoomType = "hallway"
	PaintStairs     PaintRoomType = "stairs"
	PaintHallStairs PaintRoomType = "hall_stairs"
	PaintKitchen    PaintRoomType = "kitchen"
	PaintBathroom   PaintRoomType = "bathroom"
)

func (t PaintRoomType) multiplier() float64 {
	switch t {
	case PaintHallway:
		return 1.15
	case PaintStairs:
		return 1.35
	case PaintHallStairs:
		return 1.5
	case PaintKitchen:
		return 1.1
	case PaintBathroom:
		return 0.85
	default:
		return 1.0
	}
}

// IsStairs reports whether the room includes a staircase.
func (t PaintRoomType) IsStairs() bool {
	return t == PaintStairs || t == PaintHallStairs
}

type surfaceDays struct{ walls, ceiling, woodwork float64 }

func (s Size) paintSurfaces() surfaceDays {
	switch s.normalized() {
	case SizeSmall:
		return surfaceDays{walls: 0.6, ceiling: 0.25, woodwork: 0.5}
	case SizeLarge:
		return surfaceDays{walls: 1.2, ceiling: 0.4, woodwork: 0.8}
	default:
		return surfaceDays{walls: 0.8, ceiling: 0.3, woodwork: 0.6}
	}
}

func (s Size) wallpaperRemovalDays() float64 {
	switch s.normalized() {
	case SizeSmall:
		return 0.5
	case SizeLarge:
		return 0.9
	default:
		return 0.6
	}
}

// StaircaseHeight picks the stairwell painting rate.
type StaircaseHeight string

const (
	StaircaseSingle StaircaseHeight = "single"
	StaircaseDouble StaircaseHeight = "double"
)

// WallpaperRemoval is the kind of wallpaper stripped before painting.
type WallpaperRemoval string

const (
	WallpaperNone        WallpaperRemoval = "none"
	WallpaperStandard    WallpaperRemoval = "standard"
	WallpaperHeavyDuty   WallpaperRemoval = "heavy-duty"
	WallpaperPaintedOver WallpaperRemoval = "painted-over"
)

// Required reports whether any wallpaper has to come off.
func (w WallpaperRemoval) Required() bool {
	return w != "" && w != WallpaperNone
}

func (w WallpaperRemoval) difficulty() float64 {
	switch w {
	case WallpaperHeavyDuty:
		return 1.35
	case WallpaperPaintedOver:
		return 1.5
	default:
		return 1.0
	}
}

// SurfaceCondition is the prep state of walls before plastering.
type SurfaceCondition string

const (
	ConditionGood SurfaceCondition = "good"
	ConditionFair SurfaceCondition = "fair"
	ConditionPoor SurfaceCondition = "poor"
)

func (c SurfaceCondition) multiplier() float64 {
	switch c {
	case ConditionFair:
		return 1.1
	case ConditionPoor:
		return 1.25
	default:
		return 1.0
	}
}

// PlasterWork is one of the four canonical plastering work types.
type PlasterWork string

const (
	PlasterUnknown PlasterWork = ""
	PlasterPatch   PlasterWork = "patch"
	PlasterReskim  PlasterWork = "reskim"
	PlasterReboard PlasterWork = "reboard"
	PlasterArtex   PlasterWork = "artex"
)

// NormalizePlasterWork collapses the work-type synonyms the various client
// versions have sent onto the canonical set. Unrecognised input returns
// PlasterUnknown.
func NormalizePlasterWork(raw string) PlasterWork {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "_", " ", "_", "&", "and").Replace(key)
	switch key {
	case "patch", "patches", "patching", "patch_work", "patchwork", "patch_repair", "patch_repairs", "repair":
		return PlasterPatch
	case "reskim", "re_skim", "skim", "skimming", "skim_coat", "full_skim", "reskim_walls":
		return PlasterReskim
	case "reboard", "re_board", "reboard_skim", "reboard_and_skim", "board_and_skim", "boarding", "overboard":
		return PlasterReboard
	case "artex", "artex_removal", "artex_cover", "cover_artex", "textured_ceiling", "artex_and_skim":
		return PlasterArtex
	default:
		return PlasterUnknown
	}
}

// DesignManagement is the optional procurement and management fee tier.
type DesignManagement string

const (
	DesignNone                  DesignManagement = "none"
	DesignProcurement           DesignManagement = "procurement"
	DesignManagementProcurement DesignManagement = "management_procurement"
	DesignFull                  DesignManagement = "full"
)

// Percent is the surcharge applied for the chosen option.
func (d DesignManagement) Percent() float64 {
	switch d {
	case DesignProcurement:
		return 7
	case DesignManagementProcurement:
		return 11
	case DesignFull:
		return 12
	default:
		return 0
	}
}

// Label is the display name of the tier.
func (d DesignManagement) Label() string {
	switch d {
	case DesignProcurement:
		return "Procurement"
	case DesignManagementProcurement:
		return "Management & Procurement"
	case DesignFull:
		return "Design, Management & Procurement"
	default:
		return "None"
	}
}
