package dto

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description" binding:"max=5000"`
	SkillsNeeded []string `json:"skills_needed"`
}

type UpdateProjectRequest struct {
	Title        string   `json:"title" binding:"max=200"`
	Description  string   `json:"description" binding:"max=5000"`
	SkillsNeeded []string `json:"skills_needed"`
}
