package vision

import (
	"context"
	"fmt"

	"genfy-be/pkg/utils"
)

// FocusPlan names the aspects of a reference image worth analyzing for the
// user's request, with the planner's reasoning.
type FocusPlan struct {
	FocusAreas []string `json:"focus_areas"`
	Reasoning  string   `json:"reasoning"`
}

// DefaultFocusAreas is the comprehensive fallback when planning is not
// possible. Planning must never block an analysis.
func DefaultFocusAreas(reason string) FocusPlan {
	return FocusPlan{
		FocusAreas: []string{"composition", "lighting", "colors", "mood"},
		Reasoning:  reason,
	}
}

// Planner decides focus areas for reference-image analysis.
type Planner struct {
	client *Client
}

func NewPlanner(client *Client) *Planner {
	return &Planner{client: client}
}

// Plan asks the planner model which 3-5 aspects matter for this request.
// It degrades to DefaultFocusAreas on any failure rather than returning an
// error; callers always get a usable plan.
func (p *Planner) Plan(ctx context.Context, userRequest, category string) FocusPlan {
	if p.client == nil {
		return DefaultFocusAreas("Default focus areas (vision client unavailable)")
	}

	prompt := buildPlannerPrompt(userRequest, category)
	content, err := p.client.Complete(ctx, prompt, 0.4)
	if err != nil {
		return DefaultFocusAreas(fmt.Sprintf("Default comprehensive areas (error: %v)", err))
	}

	var plan FocusPlan
	if err := utils.DecodeLooseJSON(content, &plan); err != nil {
		return DefaultFocusAreas("Default focus areas (LLM parsing error)")
	}
	if len(plan.FocusAreas) == 0 {
		plan.FocusAreas = []string{"composition", "lighting", "colors"}
	}
	return plan
}

func buildPlannerPrompt(userRequest, category string) string {
	return fmt.Sprintf(`You are an expert AI assistant analyzing how a reference image should be studied for image generation.

User's Category: %s
User's Request: %s

Your task: Determine the 3-5 MOST IMPORTANT aspects of the reference image to analyze based on what the user wants to achieve.

Available focus areas:
- subject_details: Facial features, hairstyle, skin tone, body type, clothing, poses, expressions, distinctive characteristics
- composition: Layout, framing, rule of thirds, balance, focal points, spatial arrangement
- lighting: Quality, direction, intensity, shadows, highlights, time of day, mood lighting
- colors: Color palette, harmony, saturation, temperature, dominant hues, color relationships
- mood: Atmosphere, emotional tone, vibe, feeling, ambiance
- environment: Setting, background, location details, architectural elements, natural elements
- style: Artistic style, rendering technique, aesthetic, visual treatment, artistic approach
- texture: Surface details, material quality, tactile appearance, pattern details
- perspective: Camera angle, viewpoint, depth, focal length, vanishing points

THINK CAREFULLY about what the user is trying to achieve:

1. If they want to RECREATE a person/character in different scenarios -> MUST include subject_details
2. If they want to USE the image's colors/palette -> MUST include colors
3. If they want to MATCH the lighting/atmosphere -> MUST include lighting + mood
4. If they want to MIMIC the artistic style -> MUST include style
5. If they want to REFERENCE the environment/setting -> MUST include environment
6. If they want to COPY composition/framing -> MUST include composition + perspective

Respond ONLY with JSON (no extra text):
{
  "focus_areas": ["area1", "area2", "area3"],
  "reasoning": "brief explanation of why these specific aspects matter for THIS request"
}

EXAMPLES of smart analysis:

Request: "this person in a green suit and black shorts"
-> {"focus_areas": ["subject_details", "lighting", "colors", "style"], "reasoning": "Need subject identity, plus lighting/colors for natural realism"}

Request: "use this sunset's color palette for a portrait"
-> {"focus_areas": ["colors", "lighting", "mood"], "reasoning": "Extracting color scheme and atmospheric qualities"}

Request: "match the architectural style of this building for a different structure"
-> {"focus_areas": ["style", "composition", "perspective", "texture"], "reasoning": "Capturing architectural aesthetic and structural elements"}

Request: "create a logo with this image's aesthetic"
-> {"focus_areas": ["style", "colors", "composition"], "reasoning": "Extracting visual style and color scheme for branding"}

Request: "recreate this lighting setup for product photography"
-> {"focus_areas": ["lighting", "perspective", "mood"], "reasoning": "Analyzing light direction, camera angle, and atmospheric tone"}

Now analyze the user's actual request and choose focus areas accordingly.`, category, userRequest)
}
