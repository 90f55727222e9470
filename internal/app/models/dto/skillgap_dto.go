package dto

// SkillResource is a learning pointer for one skill: where to learn it and
// a rough time estimate.
type SkillResource struct {
	Skill    string `json:"skill" example:"PowerBI"`
	Platform string `json:"platform" example:"Microsoft Learn"`
	URL      string `json:"url"`
	Hours    int    `json:"hours" example:"25"`
}

// SkillGapResponse is the result of matching a student's skills against a
// target role's requirement list.
type SkillGapResponse struct {
	Role     string         `json:"role" example:"Data Analyst"`
	Required []string       `json:"required"`
	Have     []string       `json:"have"`
	Missing  []SkillResource `json:"missing"`
	MatchPct int            `json:"matchPct" example:"28"`
}

// SkillGapRolesResponse lists the roles the matcher knows about.
type SkillGapRolesResponse struct {
	Roles []string `json:"roles"`
}
