package quote

// Each rule returns the room's base labour days (before rate-tier efficiency
// and the property multiplier) as a low/high pair.

func kitchenDays(r KitchenRoom) dayRange {
	d := r.Size.kitchenBase()
	extra := 0.15*float64(len(r.Electrics)) + 0.12*float64(len(r.Plumbing))
	if r.Splashback {
		extra += 0.5
	}
	d.low += extra
	d.high += extra

	if r.RequireFloorTiling && r.FloorTilingArea > 0 {
		tiling := min(1+r.FloorTilingArea/12, 2.0)
		d.low += 0.8 * tiling
		d.high += tiling
	}

	m := r.Worktop.multiplier()
	return dayRange{d.low * m, d.high * m}
}

func bathroomDays(r BathroomRoom) dayRange {
	d := r.Size.bathroomBase()
	layout := r.Layout.multiplier()
	d.low *= layout
	d.high *= layout

	fixtures := 0.2 * float64(len(r.Fixtures))
	if r.HasFixture("shower") {
		fixtures += 0.15
	}
	d.low += fixtures
	d.high += fixtures

	wall := r.WallTiling.addDays()
	d.low += wall * 0.8
	d.high += wall
	if r.FloorTiling {
		d.low += 0.6
		d.high += 0.8
	}

	tile := r.TileSize.multiplier()
	d.low *= tile
	d.high *= tile

	electrics := 0.15 * float64(len(r.Electrics))
	d.low += electrics
	d.high += electrics

	m := plumbingComplexity(len(r.Plumbing)).multiplier() *
		r.FinishQuality.multiplier() *
		r.Access.multiplier()
	return dayRange{d.low * m, d.high * m}
}

// flooringDays reports ok=false for rooms without a floor type or area;
// those rooms are left out of the quote entirely.
func flooringDays(r FlooringRoom) (dayRange, bool) {
	if r.Type == "" || r.Area <= 0 {
		return dayRange{}, false
	}
	base := r.Area / r.Type.speed()
	base *= r.Subfloor.multiplier()
	base *= r.Layout.multiplier()
	base *= r.Pattern.multiplier()
	base *= r.FinishQuality.multiplier()
	if r.RemoveOld {
		base += 0.5
	}
	base += 0.1 * r.TrimDoors
	if r.FitSkirting {
		base += 0.5
	}
	return dayRange{base * 0.85, base * 1.15}, true
}

func carpentryDays(r CarpentryRoom) dayRange {
	base := r.DoorCount*0.4 +
		r.SkirtingMetres/15 +
		r.ArchitraveMetres/15 +
		r.WardrobeMetres*0.6 +
		r.DoorCount*0.05
	base *= r.FinishType.multiplier() * r.BespokeComplexity.multiplier()
	return dayRange{base * 0.9, base * 1.1}
}

// paintingRoomDays is the single-point estimate for one room; the service
// spreads the summed total into a range.
func paintingRoomDays(r PaintingRoom) float64 {
	surfaces := r.Size.paintSurfaces()
	var days float64
	if r.Surfaces.Walls {
		days += surfaces.walls
	}
	if r.Surfaces.Ceiling {
		days += surfaces.ceiling
	}
	if r.Surfaces.Woodwork {
		days += surfaces.woodwork
	}
	days *= r.Type.multiplier()

	if r.Type.IsStairs() {
		if r.StaircaseHeight == StaircaseDouble {
			days += 0.4
		}
		days += 0.02 * r.SpindleCount
		if r.HandrailsStringers {
			days += 0.1
		}
	}

	if r.Coats > 1 {
		days *= 1 + 0.5*(r.Coats-1)
	}
	if r.Colours > 1 {
		days *= 1 + 0.05*(r.Colours-1)
	}
	if r.MinorRepairs {
		days += 0.2
	}
	if r.WallpaperRemoval.Required() && r.Surfaces.Walls {
		days += r.Size.wallpaperRemovalDays() * r.WallpaperRemoval.difficulty()
	}
	days += 0.1*r.Doors + 0.08*r.Windows
	return days
}

func paintingDays(r PaintingRoom) dayRange {
	days := paintingRoomDays(r)
	return dayRange{days * 0.9, days * 1.1}
}

func plasteringDays(r PlasteringRoom) dayRange {
	var base float64
	switch NormalizePlasterWork(r.WorkType) {
	case PlasterPatch:
		base = r.PatchCount * 0.4
	case PlasterReskim:
		base = r.Area / 27.5
	case PlasterReboard:
		base = r.Area / 10
	case PlasterArtex:
		base = (r.Area / 27.5) * 1.4
	default:
		if r.WorkType != "" && r.Area > 0 {
			base = r.Area / 27.5
		}
	}
	base *= r.SurfaceCondition.multiplier() *
		r.FinishLevel.multiplier() *
		r.Access.multiplier()
	return dayRange{base * 0.9, base * 1.1}
}
