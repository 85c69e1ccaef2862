package dto

type CategoryResponse struct {
	Name          string `json:"name"`
	Key           string `json:"key"`
	Description   string `json:"description"`
	Color         string `json:"color"`
	QuestionCount int    `json:"question_count"`
}

type SelectCategoryRequest struct {
	Category string `json:"category" validate:"required"`
	UserIdea string `json:"user_idea"`
}

type SelectCategoryResponse struct {
	Category    string `json:"category"`
	CurrentStep string `json:"current_step"`
}

type VisualOptionsResponse struct {
	ColorPalettes map[string][]string `json:"color_palettes"`
	AspectRatios  map[string]string   `json:"aspect_ratios"`
	CameraAngles  map[string]string   `json:"camera_settings"`
	ImagePurposes map[string]string   `json:"image_purposes"`
}

type SaveVisualSettingsRequest struct {
	ColorPalette   string `json:"color_palette"`
	AspectRatio    string `json:"aspect_ratio"`
	CameraSettings string `json:"camera_settings"`
	ImagePurpose   string `json:"image_purpose"`
}

type QuickGenerateRequest struct {
	UserIdea string `json:"user_idea" validate:"required"`
}

type QuickGenerateResponse struct {
	FinalPrompt string `json:"final_prompt"`
	Timestamp   string `json:"timestamp"`
}
