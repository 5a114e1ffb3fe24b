package sticker

import (
	"image"
	"math"
)

// insetRect is the region the source fills: (1-2*inset) of the canvas per
// dimension, centered, leaving the frame border visible around it.
func insetRect(size int, inset float64) image.Rectangle {
	margin := int(math.Round(float64(size) * inset))
	return image.Rect(margin, margin, size-margin, size-margin)
}

// coverCrop returns the centered subrectangle of a srcW x srcH image that
// matches the destination aspect ratio. Scaling that crop to the destination
// covers it completely with no letterboxing; overflow on the wider axis is
// trimmed symmetrically.
func coverCrop(srcW, srcH, dstW, dstH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rect(0, 0, srcW, srcH)
	}

	srcAspect := float64(srcW) / float64(srcH)
	dstAspect := float64(dstW) / float64(dstH)

	if srcAspect > dstAspect {
		// Source is wider: fit by height, crop width.
		cropW := int(math.Round(float64(srcH) * dstAspect))
		if cropW > srcW {
			cropW = srcW
		}
		x0 := (srcW - cropW) / 2
		return image.Rect(x0, 0, x0+cropW, srcH)
	}

	// Source is taller or exact: fit by width, crop height.
	cropH := int(math.Round(float64(srcW) / dstAspect))
	if cropH > srcH {
		cropH = srcH
	}
	y0 := (srcH - cropH) / 2
	return image.Rect(0, y0, srcW, y0+cropH)
}
