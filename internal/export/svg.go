// Package export renders archived run data to standalone SVG images.
package export

import (
	"fmt"
	"strings"
)

// FieldToSVG plots a field snapshot as an SVG polyline over the grid
// coordinates. Returns "" when there are fewer than two samples.
func FieldToSVG(x, field []float64, width, height int, strokeColor string) string {
	if len(x) < 2 || len(field) < len(x) {
		return ""
	}

	minX, maxX := x[0], x[len(x)-1]
	minY, maxY := field[0], field[0]
	for _, v := range field[:len(x)] {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// zero axis
	if minY < 0 && maxY > 0 {
		zeroY := float64(height) - (0-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333" stroke-width="1"/>
`, zeroY, width, zeroY))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	for i := range x {
		px := (x[i] - minX) / rangeX * float64(width)
		py := float64(height) - (field[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// EnergyToSVG plots the per-step energy log against step time.
func EnergyToSVG(times, energy []float64, width, height int, strokeColor string) string {
	if len(times) != len(energy) {
		return ""
	}
	return FieldToSVG(times, energy, width, height, strokeColor)
}
