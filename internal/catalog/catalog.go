package catalog

import "genfy-be/pkg/store"

// Question is an immutable, category-scoped question definition.
type Question struct {
	Id          string `json:"id"`
	Text        string `json:"text"`
	Placeholder string `json:"placeholder"`
	// Style controls the target length of generated suggestions:
	// "keywords" | "medium" | "detailed" | "narrative"
	Style string `json:"suggestion_style"`
}

// Category is a predefined prompt archetype with a fixed ordered question list.
type Category struct {
	Name        string
	Key         string
	Description string
	Color       string
	Questions   []Question
	Defaults    store.VisualSettings
}

const (
	StyleKeywords  = "keywords"
	StyleMedium    = "medium"
	StyleDetailed  = "detailed"
	StyleNarrative = "narrative"
)

// LengthGuide maps a suggestion style to its target word count instruction.
func LengthGuide(style string) string {
	switch style {
	case StyleKeywords:
		return "1-3 words"
	case StyleDetailed:
		return "8-15 words"
	case StyleNarrative:
		return "10-20 words"
	default:
		return "4-7 words"
	}
}

var categories = []Category{
	{
		Name:        "Realistic Photo",
		Key:         "realistic_photo",
		Description: "Professional photography with realistic lighting and composition",
		Color:       "#FF6B6B",
		Questions: []Question{
			{Id: "subject", Text: "Main subject/scene", Placeholder: "Describe the main focus in detail - what should be prominent", Style: StyleDetailed},
			{Id: "atmosphere", Text: "Overall mood", Placeholder: "e.g., serene, dramatic, intimate, bold, energetic, melancholic", Style: StyleKeywords},
			{Id: "shot_type", Text: "Shot type", Placeholder: "e.g., close-up portrait, full-body, landscape, overhead, low-angle", Style: StyleMedium},
			{Id: "lighting", Text: "Lighting setup", Placeholder: "e.g., golden hour, 3-point studio, backlighting, natural window light, moody", Style: StyleKeywords},
			{Id: "camera", Text: "Camera Settings", Placeholder: "e.g., 85mm lens f/1.4, shallow depth of field, 50mm natural perspective", Style: StyleMedium},
		},
		Defaults: store.VisualSettings{
			ColorPalette:   "Natural Sunlight/Golden Hour",
			AspectRatio:    "Instagram Feed (4:5)",
			CameraSettings: "Standard (50mm)",
			ImagePurpose:   "Social Media Post",
		},
	},
	{
		Name:        "Stylized Art",
		Key:         "stylized_art",
		Description: "Artistic illustrations with unique styles and aesthetics",
		Color:       "#4ECDC4",
		Questions: []Question{
			{Id: "subject", Text: "Subject/concept?", Placeholder: "What should be depicted - describe the scene or subject", Style: StyleMedium},
			{Id: "art_style", Text: "Art style?", Placeholder: "e.g., oil painting, watercolor, digital art, surreal, anime, abstract", Style: StyleMedium},
			{Id: "mood", Text: "Mood/atmosphere?", Placeholder: "e.g., dreamy, intense, peaceful, chaotic, whimsical, dark", Style: StyleMedium},
			{Id: "color_palette", Text: "Color palette?", Placeholder: "e.g., vibrant neons, muted pastels, noir black & white, warm earth tones", Style: StyleMedium},
			{Id: "inspiration", Text: "Artist inspiration?", Placeholder: "e.g., Van Gogh, Studio Ghibli, Art Deco, cyberpunk, fantasy", Style: StyleMedium},
			{Id: "camera", Text: "Composition/Framing", Placeholder: "e.g., rule of thirds, centered subject, dynamic diagonal, asymmetric balance", Style: StyleMedium},
		},
		Defaults: store.VisualSettings{
			ColorPalette: "Neon/Vibrant Colors",
			AspectRatio:  "Instagram Square (1:1)",
			ImagePurpose: "Character/Illustration",
		},
	},
	{
		Name:        "Logo",
		Key:         "logodesign",
		Description: "Brand logos and text-based designs with professional aesthetics",
		Color:       "#45B7D1",
		Questions: []Question{
			{Id: "text", Text: "Logo text/name?", Placeholder: "What text should appear in the logo - be specific with spelling", Style: StyleMedium},
			{Id: "brand_vibe", Text: "Brand vibe?", Placeholder: "e.g., tech startup, luxury fashion, eco-friendly, gaming, health & wellness", Style: StyleMedium},
			{Id: "style", Text: "Logo style?", Placeholder: "e.g., minimalist, geometric, abstract, mascot-based, wordmark, emblem", Style: StyleMedium},
			{Id: "colors", Text: "Color preference?", Placeholder: "e.g., monochrome black, vibrant gradient, specific RGB/HEX colors", Style: StyleMedium},
			{Id: "symbols", Text: "Symbols/elements?", Placeholder: "e.g., leaf for eco, lightning bolt for energy, geometric shapes, nature", Style: StyleMedium},
			{Id: "simplicity", Text: "Simplicity level?", Placeholder: "e.g., minimal single icon, moderate detail, intricate ornate design", Style: StyleKeywords},
			{Id: "use_case", Text: "Primary use case?", Placeholder: "e.g., app icon 512px, website header, business card, billboard, favicon", Style: StyleMedium},
		},
		Defaults: store.VisualSettings{
			ColorPalette: "High Contrast B&W",
			AspectRatio:  "Instagram Square (1:1)",
			ImagePurpose: "Product Photography",
		},
	},
	{
		Name:        "Product Shot",
		Key:         "product_shot",
		Description: "Professional product photography with proper lighting and composition",
		Color:       "#F0A500",
		Questions: []Question{
			{Id: "product", Text: "Product type?", Placeholder: "Describe material/style - e.g., luxury watch, sleek smartphone, artisan perfume", Style: StyleMedium},
			{Id: "background", Text: "Background?", Placeholder: "e.g., clean white studio, dark concrete, blurred natural, lifestyle setting", Style: StyleMedium},
			{Id: "lighting", Text: "Lighting?", Placeholder: "e.g., 3-point softbox setup, dramatic side-lighting, natural window light", Style: StyleMedium},
			{Id: "angle", Text: "Camera angle?", Placeholder: "e.g., 45-degree hero shot, overhead flat-lay, low angle dramatic", Style: StyleMedium},
			{Id: "details", Text: "Special details?", Placeholder: "e.g., reflections on glass, water droplets, lifestyle props, close-up texture", Style: StyleMedium},
		},
		Defaults: store.VisualSettings{
			ColorPalette:   "Bright Studio Lighting",
			AspectRatio:    "Instagram Feed (4:5)",
			CameraSettings: "Macro Close-up",
			ImagePurpose:   "Product Photography",
		},
	},
	{
		Name:        "Minimalist",
		Key:         "minimalist",
		Description: "Clean, minimal designs with vast negative space and focus",
		Color:       "#95E1D3",
		Questions: []Question{
			{Id: "focus", Text: "Primary focus?", Placeholder: "What should be the main subject - keep it singular and strong", Style: StyleMedium},
			{Id: "colors", Text: "Color scheme?", Placeholder: "e.g., monochrome black, limited 2-color palette, soft pastels", Style: StyleMedium},
			{Id: "background_space", Text: "Background & Space Composition?", Placeholder: "e.g., vast white background with centered subject, bottom-right on gradient, floating in emptiness", Style: StyleMedium},
			{Id: "visual_elements", Text: "Visual elements?", Placeholder: "e.g., single geometric shape, organic curves, minimalist line, subtle texture", Style: StyleKeywords},
			{Id: "mood", Text: "Mood?", Placeholder: "e.g., serene, modern, zen, contemplative, sophisticated", Style: StyleMedium},
		},
		Defaults: store.VisualSettings{
			ColorPalette:   "Monochromatic/Single Color",
			AspectRatio:    "Blog/Website (16:9)",
			CameraSettings: "Wide Angle (24mm)",
			ImagePurpose:   "UI/UX Design",
		},
	},
	{
		Name:        "Sequential Art",
		Key:         "sequential_art",
		Description: "Single comic panel or storyboard frame",
		Color:       "#A8E6CF",
		Questions: []Question{
			{Id: "panel_style", Text: "Panel style?", Placeholder: "e.g., single comic panel, storyboard frame, manga panel", Style: StyleKeywords},
			{Id: "scene", Text: "Main scene/moment?", Placeholder: "What's happening in THIS frame", Style: StyleDetailed},
			{Id: "art_style", Text: "Art style?", Placeholder: "e.g., comic book, manga, realistic storyboard", Style: StyleKeywords},
			{Id: "positioning", Text: "Character positioning?", Placeholder: "e.g., foreground character, background action, split focus", Style: StyleMedium},
			{Id: "emphasis", Text: "Visual emphasis?", Placeholder: "e.g., speed lines, dramatic angles, close-up emotion", Style: StyleMedium},
		},
		Defaults: store.VisualSettings{
			ColorPalette:   "Dramatic Shadows & Highlights",
			AspectRatio:    "YouTube Thumbnail (16:9)",
			CameraSettings: "Cinematic (35mm)",
			ImagePurpose:   "Concept Art",
		},
	},
	{
		Name:        "Conceptual",
		Key:         "conceptual",
		Description: "Abstract concepts visualized through creative imagery",
		Color:       "#FFD93D",
		Questions: []Question{
			{Id: "concept", Text: "Core concept?", Placeholder: "What abstract idea? (e.g., 'the feeling of anxiety', 'corporate growth', 'human connection')", Style: StyleMedium},
			{Id: "visual", Text: "Visual representation?", Placeholder: "How to visualize it? (e.g., 'swirling vortex of colors', 'geometric fractals expanding')", Style: StyleDetailed},
			{Id: "colors", Text: "Color philosophy?", Placeholder: "e.g., warm & energetic, cool & calm, dark & mysterious, symbolic", Style: StyleMedium},
			{Id: "technique", Text: "Technique?", Placeholder: "e.g., digital collage, fluid art, fractal patterns, particle effects", Style: StyleMedium},
			{Id: "atmosphere", Text: "Atmosphere?", Placeholder: "e.g., mysterious & ethereal, energetic & vibrant, peaceful & meditative", Style: StyleMedium},
		},
		Defaults: store.VisualSettings{
			ColorPalette: "Cool Tones (blues, purples)",
			AspectRatio:  "Instagram Square (1:1)",
			ImagePurpose: "Concept Art",
		},
	},
}

var byName = func() map[string]*Category {
	m := make(map[string]*Category, len(categories))
	for i := range categories {
		m[categories[i].Name] = &categories[i]
	}
	return m
}()

// All returns every category in declaration order.
func All() []Category {
	return categories
}

// Get looks a category up by display name.
func Get(name string) (*Category, bool) {
	c, ok := byName[name]
	return c, ok
}

// QuestionAt returns the question at the given cursor, or false past the end.
func (c *Category) QuestionAt(cursor int) (*Question, bool) {
	if cursor < 0 || cursor >= len(c.Questions) {
		return nil, false
	}
	return &c.Questions[cursor], true
}

// quick-generate primary field per category. Unmapped categories fall back to
// "subject"; the fallback is deliberate, newer categories may not be listed.
var primaryFields = map[string]string{
	"Realistic Photo": "subject",
	"Stylized Art":    "subject",
	"Logo":            "text",
	"Product Shot":    "product",
	"Minimalist":      "focus",
	"Sequential Art":  "scene",
	"Conceptual":      "concept",
}

// PrimaryField returns the answer field the user idea seeds in quick generation.
func PrimaryField(category string) string {
	if f, ok := primaryFields[category]; ok {
		return f
	}
	return "subject"
}
