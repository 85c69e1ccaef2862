package vision

import (
	"fmt"
	"strings"
)

var focusInstructions = map[string]string{
	"composition": "\n- Composition: Layout, balance, rule of thirds, focal points",
	"lighting":    "\n- Lighting: Quality, direction, intensity, time of day indicators",
	"colors":      "\n- Colors: Palette, harmony, saturation, temperature, dominant colors",
	"mood":        "\n- Mood: Atmosphere, emotional tone, vibe",
	"subject_details": `
- Subject Details:
  * Facial features (face shape, eyes, nose, mouth, jawline)
  * Hairstyle and hair color
  * Skin tone and texture
  * Distinctive characteristics (facial hair, accessories, unique features)
  * Body type and posture
  * Current clothing/outfit (for reference, even if user wants to change it)
  * Expression and demeanor`,
	"environment": "\n- Environment: Setting, background, location details",
	"style":       "\n- Style: Artistic style, rendering technique, aesthetic",
	"texture":     "\n- Texture: Surface details, material quality",
	"perspective": "\n- Perspective: Camera angle, depth, focal point, viewpoint",
}

// BuildAnalysisPrompt renders the vision-model instruction for the chosen
// focus areas. With no areas it falls back to a generic structured analysis.
func BuildAnalysisPrompt(focusAreas []string, userContext string) string {
	if len(focusAreas) == 0 {
		var ctx string
		if userContext != "" {
			ctx = fmt.Sprintf("User Context: %s", userContext)
		}
		return fmt.Sprintf(`Analyze this reference image for AI image generation. Provide:
1. Visual Description: Composition, subjects, colors, lighting
2. Style Analysis: Art style, aesthetic, mood, techniques
3. Color Palette: Dominant colors and scheme
4. Technical Details: Lighting, perspective, depth, texture
5. Prompt Elements: Key elements for image generation

%s

Format as structured analysis for image generation reference.`, ctx)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Analyze this reference image for AI image generation, focusing specifically on: %s.

Provide detailed analysis of these aspects:
`, strings.Join(focusAreas, ", "))

	for _, area := range focusAreas {
		if instr, ok := focusInstructions[area]; ok {
			b.WriteString(instr)
		}
	}

	fmt.Fprintf(&b, "\n\nUser Context: %s\n\nProvide a concise but comprehensive analysis focused on these aspects for image generation reference.", userContext)
	return b.String()
}
