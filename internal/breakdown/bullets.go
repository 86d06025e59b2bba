package breakdown

import (
	"fmt"
	"strconv"

	"github.com/Simplici0/ebs-estimator/internal/quote"
)

// Bullets renders a room's summary lines with the formatter for its service.
// A formatter that panics on a malformed room yields no lines instead of
// breaking the whole breakdown.
func Bullets(room RoomDetail) (lines []string) {
	defer func() {
		if recover() != nil {
			lines = []string{}
		}
	}()

	switch room.Service {
	case quote.ServiceKitchen:
		return KitchenBullets(*room.Kitchen)
	case quote.ServiceBathroom:
		return BathroomBullets(*room.Bathroom)
	case quote.ServiceFlooring:
		return FlooringBullets(*room.Flooring)
	case quote.ServiceCarpentry:
		return CarpentryBullets(*room.Carpentry)
	case quote.ServicePainting:
		return PaintingBullets(*room.Painting)
	case quote.ServicePlastering:
		return PlasteringBullets(*room.Plastering)
	default:
		return []string{}
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// bulletList collects lines, skipping empty values.
type bulletList []string

func (b *bulletList) field(name, value string) {
	if value != "" {
		*b = append(*b, name+": "+value)
	}
}

func (b *bulletList) flag(on bool, line string) {
	if on {
		*b = append(*b, line)
	}
}

func (b *bulletList) count(v float64, format string) {
	if v > 0 {
		*b = append(*b, fmt.Sprintf(format, num(v)))
	}
}

func (b bulletList) lines() []string {
	if b == nil {
		return []string{}
	}
	return b
}

// KitchenBullets summarises a priced kitchen area.
func KitchenBullets(d KitchenDetail) []string {
	var b bulletList
	b.field("Size", Humanize(d.Size))
	b.field("Worktop", label(worktops, d.Worktop))
	b.field("Electrics", labels(kitchenElectrics, d.Electrics))
	b.field("Plumbing", labels(kitchenPlumbing, d.Plumbing))
	b.flag(d.Splashback, "Splashback")
	b.count(d.FloorTilingArea, "Floor tiling: %s m²")
	return b.lines()
}

// BathroomBullets summarises a priced bathroom.
func BathroomBullets(d BathroomDetail) []string {
	var b bulletList
	b.field("Size", Humanize(d.Size))
	b.field("Layout", label(layouts, d.Layout))
	b.field("Fixtures", labels(bathroomFixtures, d.Fixtures))
	b.count(float64(d.WallTiling), "Wall tiling: %s%%")
	b.flag(d.FloorTiling, "Floor tiling")
	b.field("Tile size", Humanize(d.TileSize))
	b.field("Electrics", labels(bathroomElectrics, d.Electrics))
	b.field("Plumbing", labels(bathroomPlumbing, d.Plumbing))
	b.field("Finish", Humanize(d.FinishQuality))
	b.field("Access", label(access, d.Access))
	return b.lines()
}

// FlooringBullets summarises a priced floor.
func FlooringBullets(d FlooringDetail) []string {
	var b bulletList
	b.field("Type", label(floorTypes, d.Type))
	b.count(d.Area, "Area: %s m²")
	b.field("Subfloor", Humanize(d.Subfloor))
	b.field("Layout", Humanize(d.Layout))
	b.field("Pattern", Humanize(d.Pattern))
	b.field("Finish", Humanize(d.FinishQuality))
	b.flag(d.RemoveOld, "Remove old flooring")
	b.count(d.TrimDoors, "%s door(s) trimmed")
	b.flag(d.FitSkirting, "Fit skirting")
	b.flag(d.WasteRemoval, "Waste removal")
	return b.lines()
}

// CarpentryBullets summarises a room of carpentry work.
func CarpentryBullets(d CarpentryDetail) []string {
	var b bulletList
	b.count(d.DoorCount, "%s door(s) hung")
	b.count(d.SkirtingMetres, "Skirting: %s m")
	b.count(d.ArchitraveMetres, "Architrave: %s m")
	b.count(d.WardrobeMetres, "Fitted wardrobes: %s m")
	b.field("Finish", label(carpentryFinishes, d.FinishType))
	if d.BespokeComplexity != "none" {
		b.field("Bespoke work", Humanize(d.BespokeComplexity))
	}
	return b.lines()
}

// PaintingBullets summarises a painted room and any staircase work.
func PaintingBullets(d PaintingDetail) []string {
	var b bulletList
	b.field("Room type", label(paintRoomTypes, d.Type))
	b.field("Size", Humanize(d.Size))
	b.field("Surfaces", labels(nil, d.Surfaces))
	b.count(d.Coats, "%s coat(s)")
	b.count(d.Colours, "%s colour(s)")
	b.flag(d.MinorRepairs, "Minor repairs")
	b.field("Wallpaper removal", Humanize(d.WallpaperRemoval))
	b.count(d.Doors, "%s door(s) painted")
	b.count(d.Windows, "%s window(s) painted")
	b.field("Staircase", label(staircaseHeights, d.StaircaseHeight))
	b.count(d.SpindleCount, "%s spindle(s)")
	b.flag(d.HandrailsStringers, "Handrails & stringers")
	return b.lines()
}

// PlasteringBullets summarises a plastered room.
func PlasteringBullets(d PlasteringDetail) []string {
	var b bulletList
	b.field("Work", label(plasterWork, d.WorkType))
	b.count(d.Area, "Area: %s m²")
	b.count(d.PatchCount, "%s patch(es)")
	b.field("Condition", Humanize(d.SurfaceCondition))
	b.field("Finish", Humanize(d.FinishLevel))
	b.field("Access", label(access, d.Access))
	return b.lines()
}
