package requests

type MealEntry struct {
	MealName           string `json:"meal_name" validate:"required"`
	Description        string `json:"description" validate:"required"`
	Period             string `json:"period" validate:"required,oneof=breakfast lunch dinner snack"`
	AssignedDate       string `json:"assigned_date" validate:"required"`
	AssignedTime       string `json:"assigned_time" validate:"required"`
	CompletedTimestamp string `json:"completed_timestamp,omitempty"`
}

type TodaysMeal struct {
	Meals []MealEntry `json:"meals" validate:"required,min=1,dive"`
}
