package models

// GenerateBioRequest is the request body for profile bio generation
type GenerateBioRequest struct {
	Name      string   `json:"name" binding:"required" example:"Jane Doe"`
	Expertise string   `json:"expertise" binding:"required" example:"distributed systems"`
	Interests []string `json:"interests" example:"[\"go\",\"databases\"]"`
	Tone      string   `json:"tone,omitempty" example:"professional"`
}

// GenerateBioResponse carries the generated bio
type GenerateBioResponse struct {
	Bio string `json:"bio"`
}
