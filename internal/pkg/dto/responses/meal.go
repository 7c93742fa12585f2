package responses

type MealSummary struct {
	ID          string `json:"id"`
	Period      string `json:"period"`
	Description string `json:"description"`
	DateTime    string `json:"dateTime"`
}
