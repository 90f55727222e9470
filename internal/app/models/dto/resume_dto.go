package dto

// ResumeQualityResponse is the rubric-based resume score with improvement
// tips, highest-impact first.
type ResumeQualityResponse struct {
	Score int      `json:"score" example:"72"`
	Tips  []string `json:"tips"`
}

// ResumeBuildResponse reports a freshly rendered resume PDF.
type ResumeBuildResponse struct {
	FileName    string `json:"fileName" example:"resume_12.pdf"`
	GeneratedAt string `json:"generatedAt"`
}
