package scene

import "time"

// Draw renders the scene into the surface `s`.
//
// The whole surface is cleared first, then each object is drawn in
// order, in the region given by its x, y, width and height fields.
// Objects of an unknown class are recorded but not drawn.
// How absent fields are handled is determined by `policy`.
//
// An empty scene is an ErrSceneLoad error, and leaves the surface untouched.
// The returned report is never nil when the surface has been cleared, even
// if an error is returned.
func Draw(sc Scene, s Surface, policy FieldPolicy) (*Report, error) {
	if len(sc) == 0 {
		return nil, ErrSceneLoad
	}

	attrs := NewDrawingAttributes(s, FullRegion)
	report := &Report{Region: attrs.Region(), Objects: make([]ObjectRecord, 0, len(sc))}

	s.Clear(attrs.Region())
	Logger().Info("surface cleared", "area", s.Area().String(), "bpp", s.BitsPerPixel())

	for i, d := range sc {
		rec := ObjectRecord{Index: i}
		class, region, shape := readObject(d, &rec)

		if class != Unknown {
			if err := policy.check(i, class, d); err != nil {
				return report, err
			}
		} else if policy == WarnPolicy {
			Logger().Warn("unknown class, object skipped", "index", i, "class", rec.Class)
		}

		if shape != nil {
			narrowed := attrs.WithRegion(region)
			start := time.Now()
			shape.Draw(narrowed)
			rec.RenderTime = time.Since(start)
			rec.Drawn = true
		}

		Logger().Debug("object", "index", i, "class", rec.Class, "region", region.String(), "drawn", rec.Drawn)
		report.Objects = append(report.Objects, rec)
	}

	return report, nil
}
