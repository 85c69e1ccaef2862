package catalog

import (
	"strings"

	"genfy-be/pkg/store"
)

// ColorPalettes maps a palette label to its prompt keyword expansion.
var ColorPalettes = map[string][]string{
	"Natural Sunlight/Golden Hour":  {"natural sunlight", "golden hour lighting", "warm sunrise glow", "sunset ambiance", "outdoor natural light"},
	"Bright Studio Lighting":        {"bright studio lights", "professional lighting setup", "well-lit environment", "clean bright illumination", "even studio lighting"},
	"Soft Diffused Light":           {"soft diffused lighting", "gentle illumination", "diffused natural light", "softbox lighting", "subtle ambient light"},
	"Dramatic Shadows & Highlights": {"dramatic lighting", "high contrast shadows", "strong highlights", "chiaroscuro effect", "moody dramatic lighting"},
	"Neon/Vibrant Colors":           {"neon accents", "vibrant colors", "electric tones", "bold bright colors", "saturated vivid palette"},
	"Muted/Pastel Colors":           {"muted pastels", "soft pastel tones", "desaturated colors", "gentle hues", "subdued color palette"},
	"High Contrast B&W":             {"high contrast black and white", "dramatic monochrome", "stark B&W", "noir aesthetic", "bold grayscale"},
	"Monochromatic/Single Color":    {"monochromatic palette", "single color theme", "tonal variation", "one-color scheme", "unified color family"},
	"Warm Tones (oranges, reds)":    {"warm color tones", "orange and red hues", "fiery warm palette", "sunset warm colors", "amber and crimson"},
	"Cool Tones (blues, purples)":   {"cool color tones", "blue and purple hues", "icy cool palette", "azure and indigo", "cyan and violet"},
	"Earth Tones (greens, browns)":  {"earth tone colors", "natural greens and browns", "organic earthy palette", "forest and soil colors", "natural earth hues"},
	"Custom Color Palette":          {"custom color scheme", "user-defined palette", "specific color combination", "unique color selection", "personalized colors"},
}

// AspectRatios maps a format label to its prompt phrasing.
var AspectRatios = map[string]string{
	"Instagram Square (1:1)":  "1:1 square format, Instagram square post",
	"Instagram Feed (4:5)":    "4:5 vertical format, Instagram feed portrait post",
	"Instagram Story (9:16)":  "9:16 vertical story format, Instagram/Facebook story",
	"YouTube Thumbnail (16:9)": "16:9 landscape format, YouTube video thumbnail",
	"YouTube Banner (16:9)":    "16:9 wide landscape, YouTube channel banner, header image",
	"Twitter/X (16:9)":         "16:9 landscape format, Twitter/X post image",
	"LinkedIn (1:1 or 16:9)":   "1:1 square or 16:9 landscape, LinkedIn post image",
	"Facebook (1:1)":           "1:1 square format, Facebook post image",
	"Blog/Website (16:9)":      "16:9 landscape format, blog featured image, website header",
	"Print A4 Paper (4:3)":     "4:3 format, A4 paper size, portrait print",
	"Print A3 Poster (4:3)":    "4:3 format, A3 poster size, large print",
	"Print Billboard (16:9)":   "16:9 wide landscape, billboard format, outdoor advertising",
	"Email Header (600x200)":   "600x200 pixels, email newsletter header, wide banner format",
	"Mobile App (9:16)":        "9:16 vertical portrait, mobile app screen, smartphone display",
}

// CameraSettings maps a lens label to its technical prompt phrasing.
var CameraSettings = map[string]string{
	"Portrait Lens (85mm)":  "85mm lens, f/1.8 aperture, shallow depth of field, bokeh background",
	"Wide Angle (24mm)":     "24mm wide angle lens, f/8 aperture, deep focus, expansive view",
	"Macro Close-up":        "macro lens, extreme close-up, f/2.8 aperture, detailed texture focus",
	"Cinematic (35mm)":      "35mm cinematic lens, f/2.0 aperture, film-like depth, natural perspective",
	"Standard (50mm)":       "50mm standard lens, f/1.4 aperture, natural field of view, versatile depth",
	"Telephoto (70-200mm)":  "70-200mm telephoto lens, f/2.8 aperture, compressed perspective, isolated subject",
	"Ultra Wide (16mm)":     "16mm ultra-wide lens, f/4 aperture, dramatic perspective, vast coverage",
}

// ImagePurposes maps an intended-use label to its prompt phrasing.
var ImagePurposes = map[string]string{
	"Website Hero Image":       "website hero banner, landing page featured image, web header design",
	"Social Media Post":        "social media content, Instagram post, Facebook graphic, Twitter image",
	"Print Marketing Material": "print media, brochure design, flyer, poster, physical marketing",
	"Product Photography":      "e-commerce product shot, commercial photography, catalog image",
	"Character/Illustration":   "character design, illustrated artwork, digital illustration, creative character",
	"Concept Art":              "concept design, artistic visualization, creative exploration, mood board",
	"UI/UX Design":             "user interface design, app mockup, web design element, digital interface",
	"Advertising Campaign":     "advertisement creative, commercial campaign, promotional material, brand marketing",
	"Blog Featured Image":      "blog header image, article featured graphic, content thumbnail, editorial image",
	"Event Poster":             "event promotion, poster design, announcement graphic, promotional banner",
	"Other":                    "custom use case, general purpose image, flexible application",
}

// ApplyVisualSettings merges non-empty settings into the session and expands
// each selection into its descriptive answer fields for prompt synthesis.
func ApplyVisualSettings(s *store.Session, settings store.VisualSettings) {
	if s.Answers == nil {
		s.Answers = make(map[string]string)
	}
	if settings.ColorPalette != "" {
		s.Visual.ColorPalette = settings.ColorPalette
		s.Answers["visual_color_palette"] = settings.ColorPalette
		s.Answers["visual_color_details"] = strings.Join(ColorPalettes[settings.ColorPalette], ", ")
	}
	if settings.AspectRatio != "" {
		s.Visual.AspectRatio = settings.AspectRatio
		s.Answers["visual_aspect_ratio"] = settings.AspectRatio
		s.Answers["visual_aspect_details"] = AspectRatios[settings.AspectRatio]
	}
	if settings.CameraSettings != "" {
		s.Visual.CameraSettings = settings.CameraSettings
		s.Answers["visual_camera_settings"] = settings.CameraSettings
		s.Answers["visual_camera_details"] = CameraSettings[settings.CameraSettings]
	}
	if settings.ImagePurpose != "" {
		s.Visual.ImagePurpose = settings.ImagePurpose
		s.Answers["visual_image_purpose"] = settings.ImagePurpose
		s.Answers["visual_image_purpose_details"] = ImagePurposes[settings.ImagePurpose]
	}
}
