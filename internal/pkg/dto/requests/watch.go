package requests

// WatchDataEntry carries one reading from the patient's wearable. Nil metrics
// mean the watch did not report that value; the mapper emits no Observation
// for them.
type WatchDataEntry struct {
	Timestamp string   `json:"timestamp" validate:"required"`
	SleepTime *float64 `json:"sleep_time,omitempty"`
	HeartRate *int     `json:"heart_rate,omitempty"`
	StepCount *int     `json:"step_count,omitempty"`
}

type WatchData struct {
	Yearly            []WatchDataEntry `json:"yearly,omitempty" validate:"dive"`
	Monthly           []WatchDataEntry `json:"monthly,omitempty" validate:"dive"`
	Weekly            []WatchDataEntry `json:"weekly,omitempty" validate:"dive"`
	Daily             []WatchDataEntry `json:"daily,omitempty" validate:"dive"`
	StepCountReminder string           `json:"step_count_reminder,omitempty"`
}
