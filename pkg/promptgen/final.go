package promptgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"genfy-be/internal/catalog"
	"genfy-be/pkg/store"
)

func visualSettingsText(s *store.Session) string {
	var b strings.Builder
	if s.Visual.ImagePurpose != "" {
		fmt.Fprintf(&b, "\n- Image Purpose: %s", s.Visual.ImagePurpose)
	}
	if s.Visual.ColorPalette != "" {
		fmt.Fprintf(&b, "\n- Color Palette: %s", s.Visual.ColorPalette)
	}
	if s.Visual.AspectRatio != "" {
		fmt.Fprintf(&b, "\n- Aspect Ratio: %s", s.Visual.AspectRatio)
	}
	if s.Visual.CameraSettings != "" {
		fmt.Fprintf(&b, "\n- Camera Settings: %s", s.Visual.CameraSettings)
	}
	if b.Len() == 0 {
		return " None"
	}
	return b.String()
}

func referenceAnalysisText(s *store.Session) string {
	if len(s.ReferenceAnalyses) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nREFERENCE IMAGE ANALYSIS:")
	for i, ra := range s.ReferenceAnalyses {
		fmt.Fprintf(&b, "\n\nReference Image %d: %s", i+1, ra.Filename)
		fmt.Fprintf(&b, "\nFocus Areas: %s", strings.Join(ra.FocusAreas, ", "))
		fmt.Fprintf(&b, "\n%s", ra.Analysis)
	}
	return b.String()
}

// BuildFinalPrompt renders the synthesis instruction combining the user's
// idea, every category answer, visual settings, and reference analyses.
// With references present, the subject is described generically so the
// attached image supplies identity.
func BuildFinalPrompt(s *store.Session, cat *catalog.Category) string {
	var responses []string
	for _, q := range cat.Questions {
		responses = append(responses, fmt.Sprintf("- %s: %s", q.Text, s.Answers[q.Id]))
	}

	refText := referenceAnalysisText(s)

	instruction1 := "Use the user's idea and Q&A answers, including detailed subject description"
	instruction4 := ""
	instruction5 := ""
	if refText != "" {
		instruction1 = "REFERENCE IMAGE MODE: Use GENERIC descriptive terms for the subject based on what's in the reference image (e.g., 'the subject', 'the main element', 'the item', 'the scene', 'the character', etc.). DO NOT describe specific identifying features, visual details, or unique characteristics - the uploaded reference image will provide those. Focus ONLY on: scenario, context, action, additional elements, environment, lighting, camera angle, mood, composition, and artistic style."
		instruction4 = "Combine the user's original idea with the visual style and subject details from the reference image."
		instruction5 = "IMPORTANT: Include a clear directive in the prompt itself on HOW to use the attached image (e.g., 'Using the attached reference image for character consistency...', 'Adopting the composition of the reference image...', etc.)."
	}

	return fmt.Sprintf(`
PROJECT DETAILS:
Category: %s
User Main Idea: %s

VISUAL SETTINGS:%s
%s

USER'S ANSWERS:
%s

TASK: Generate a professional, detailed image prompt (150-220 words) optimized for image generation.

CRITICAL INSTRUCTIONS:
1. %s
2. Synthesize all the information to create a cohesive, vivid prompt
3. Ensure the final prompt is specific and actionable for AI image generation
4. %s
5. %s

RESPOND ONLY WITH THE FINAL PROMPT (no preamble, no explanation).
`, s.Category, s.Idea, visualSettingsText(s), refText, strings.Join(responses, "\n"), instruction1, instruction4, instruction5)
}

// BuildQuickPrompt renders the generation instruction for the shortcut path
// that skips the Q&A flow entirely.
func BuildQuickPrompt(s *store.Session) string {
	refText := referenceAnalysisText(s)

	instruction1 := "Base the prompt on the user's idea and visual settings, including detailed subject description"
	instruction4 := ""
	instruction5 := ""
	if refText != "" {
		instruction1 = "REFERENCE IMAGE MODE: The user has provided a reference image. INTEGRATE the key visual details from the 'Reference Image Analysis' into the prompt. Describe the subject, style, and mood found in the analysis to ensure the new image resembles the reference. If the analysis identifies a specific person or character, INCLUDE those descriptors."
		instruction4 = "Combine the user's original idea with the visual style and subject details from the reference image."
		instruction5 = "IMPORTANT: Include a clear directive in the prompt itself on HOW to use the attached image (e.g., 'Using the attached reference image for character consistency...', 'Adopting the composition of the reference image...', etc.)."
	}

	return fmt.Sprintf(`
PROJECT DETAILS:
Category: %s
User Main Idea: %s

VISUAL SETTINGS:%s
%s

TASK:
Generate a professional, detailed image prompt (150-220 words) optimized for image generation.

CRITICAL INSTRUCTIONS:
1. %s
2. Make intelligent assumptions about shot type, composition, and mood based on the category
3. Ensure the final prompt is vivid, specific, and actionable for AI image generation
4. %s
5. %s

RESPOND ONLY WITH THE FINAL PROMPT (no preamble, no explanation).
`, s.Category, s.Idea, visualSettingsText(s), refText, instruction1, instruction4, instruction5)
}

// BuildRefinePrompt renders the instruction that rewrites an existing final
// prompt per the user's request, preserving reference-image directives.
func BuildRefinePrompt(s *store.Session, refinement string) string {
	var refText string
	if len(s.ReferenceAnalyses) > 0 {
		dump, _ := json.MarshalIndent(s.ReferenceAnalyses, "", "  ")
		refText = fmt.Sprintf("REFERENCE IMAGE ANALYSIS:\n%s\n", dump)
	}

	instruction2 := "Ensure the prompt remains vivid and descriptive."
	instruction3 := ""
	if refText != "" {
		instruction2 = "REFERENCE IMAGE MODE: Ensure the prompt continues to reflect the key visual details from the Reference Image Analysis. If the user asks to change something specific, do so, but keep the rest consistent with the image."
		instruction3 = "IMPORTANT: The prompt MUST retain the clear directive on HOW to use the attached image (e.g., 'Using the attached reference image...'). DO NOT REMOVE THIS INSTRUCTION unless the user explicitly asks to stop using the reference image."
	}

	return fmt.Sprintf(`
CURRENT PROMPT:
%s

%s

USER REFINEMENT REQUEST:
%s

TASK:
Modify the prompt according to the user's request while maintaining professional quality.
Keep it 150-220 words optimized for image generation.

CRITICAL INSTRUCTIONS:
1. Maintain the core subject and style unless explicitly asked to change.
2. %s
3. %s

RESPOND ONLY WITH THE REFINED PROMPT.
`, s.FinalPrompt, refText, refinement, instruction2, instruction3)
}
