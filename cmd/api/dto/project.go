package dto

// ProjectRequest is the create payload for a portfolio project.
type ProjectRequest struct {
	Title        string   `json:"title" example:"Weather Dashboard"`
	Category     string   `json:"category" example:"web"`
	Image        string   `json:"image" example:"https://cdn.example.com/shots/weather.png"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	ProjectURL   string   `json:"project_url"`
	GithubURL    string   `json:"github_url"`
}

// DeletedProjectDTO summarizes a removed project.
type DeletedProjectDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
