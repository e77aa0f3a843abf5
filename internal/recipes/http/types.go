package http

type createRecipeReq struct {
	Title       string   `json:"title"`
	ImageURL    *string  `json:"image_url"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Category    string   `json:"category"`
}

type updateRecipeReq struct {
	Title       *string   `json:"title"`
	ImageURL    *string   `json:"image_url"`
	Ingredients *[]string `json:"ingredients"`
	Steps       *[]string `json:"steps"`
	Category    *string   `json:"category"`
}
