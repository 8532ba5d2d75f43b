package dto

// PostRequest is the create payload for a blog post.
type PostRequest struct {
	Title   string   `json:"title" example:"Shipping a side project"`
	Content string   `json:"content"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
	Status  string   `json:"status" example:"draft"`
	Author  string   `json:"author"`
}

// DeletedPostDTO summarizes a removed blog post.
type DeletedPostDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
