package models

// ErrorResponse is the envelope written for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type CategoriesResponse struct {
	Success    bool       `json:"success"`
	Categories []Category `json:"categories"`
}

type QuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	Categories      []Category `json:"categories"`
	CurrentCategory *int       `json:"current_category"`
}

// SearchResponse reports totalQuestions as the size of the whole table,
// not the number of matches.
type SearchResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"totalQuestions"`
	CurrentCategory *int       `json:"currentCategory"`
}

// CategoryQuestionsResponse reports totalQuestions as the size of the current page.
type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"totalQuestions"`
	CurrentCategory int        `json:"currentCategory"`
}

type DeletedResponse struct {
	Success bool `json:"success"`
	Deleted int  `json:"deleted"`
}

type AddedResponse struct {
	Success bool `json:"success"`
	Added   int  `json:"added"`
}

// QuizResponse omits question once every eligible question has been played.
type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question,omitempty"`
}

type TokenResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
