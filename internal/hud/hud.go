// Package hud formats the text overlay. Drawing lives in the render package.
package hud

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// DebugLines returns the top-left debug panel text.
func DebugLines(character, cam mgl32.Vec3, pitch, yaw float32) []string {
	return []string{
		"Character: " + formatVec(character),
		"Camera: " + formatVec(cam),
		fmt.Sprintf("Camera Rotation: (%.2f, %.2f, %.2f)", pitch, yaw, 0.0),
	}
}

func ScoreLine(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// StatusLine reports the player's vertical state and how long the last
// simulation step took.
func StatusLine(state fmt.Stringer, stepMs float64) string {
	return fmt.Sprintf("%s | step %.2f ms", state, stepMs)
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X(), v.Y(), v.Z())
}
