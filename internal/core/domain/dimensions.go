package domain

// ResolveDimensions computes the grid size for an image of size orig. A nil
// width or height is derived from the other using orig's aspect ratio; when
// both are nil the width falls back to defaultWidth. Derived values are
// truncated, never rounded.
func ResolveDimensions(orig Dimensions, width, height *int, defaultWidth int) Dimensions {
	switch {
	case width == nil && height == nil:
		return Dimensions{
			Width:  defaultWidth,
			Height: scaleSide(orig.Height, defaultWidth, orig.Width),
		}
	case width == nil:
		return Dimensions{
			Width:  scaleSide(orig.Width, *height, orig.Height),
			Height: *height,
		}
	case height == nil:
		return Dimensions{
			Width:  *width,
			Height: scaleSide(orig.Height, *width, orig.Width),
		}
	default:
		return Dimensions{Width: *width, Height: *height}
	}
}

// scaleSide returns side*target/other truncated toward zero, computed in 64 bits.
func scaleSide(side, target, other int) int {
	return int(int64(side) * int64(target) / int64(other))
}

// Validate checks the caller supplied values of a request.
func (r Request) Validate() error {
	if r.InputPath == "" {
		return &ValidationError{Field: "input path", Reason: "must not be empty"}
	}

	if r.Width != nil && *r.Width <= 0 {
		return &ValidationError{Field: "width", Reason: "must be a positive integer"}
	}

	if r.Height != nil && *r.Height <= 0 {
		return &ValidationError{Field: "height", Reason: "must be a positive integer"}
	}

	if r.Width != nil && *r.Width > MaxPixels {
		return &ValidationError{Field: "width", Reason: "exceeds the pixel limit"}
	}

	if r.Height != nil && *r.Height > MaxPixels {
		return &ValidationError{Field: "height", Reason: "exceeds the pixel limit"}
	}

	if r.Scale < 1 {
		return &ValidationError{Field: "pixels per pixel", Reason: "must be at least 1"}
	}

	if r.Scale > MaxPixels {
		return &ValidationError{Field: "pixels per pixel", Reason: "exceeds the pixel limit"}
	}

	return nil
}
