// Package reminder drafts reminder messages for recurring farm activities
// from user-entered fields. Messages are composed locally; there is no
// delivery or scheduling.
package reminder

import (
	"fmt"

	"github.com/emruiz81/agriassist/internal/model"
	"github.com/emruiz81/agriassist/internal/validate"
)

// Activity types.
const (
	ActivityIrrigation    = "irrigation"
	ActivityFertilization = "fertilization"
	ActivityMaintenance   = "maintenance"
)

// Activities lists all valid activity types.
var Activities = []string{
	ActivityIrrigation,
	ActivityFertilization,
	ActivityMaintenance,
}

// activityLabels are the human phrasings used in drafted messages.
var activityLabels = map[string]string{
	ActivityIrrigation:    "irrigation",
	ActivityFertilization: "fertilization",
	ActivityMaintenance:   "equipment maintenance",
}

// DraftInput are the fields of the reminder form.
type DraftInput struct {
	CropType         string     `json:"cropType"`
	ActivityType     string     `json:"activityType"`
	LastActivityDate model.Date `json:"lastActivityDate"`
	FrequencyDays    int        `json:"frequencyDays"`
}

// DraftResult is a drafted reminder.
type DraftResult struct {
	Message string     `json:"message"`
	NextDue model.Date `json:"nextDue"`
	Overdue bool       `json:"overdue"`
}

// Validate checks the form fields and returns a field-keyed error map, or
// nil when valid.
func (in DraftInput) Validate() validate.Errors {
	v := validate.New()
	v.MinLen("cropType", in.CropType, 2, "crop type must have at least 2 characters")
	v.Enum("activityType", in.ActivityType, "invalid activity type", Activities...)
	if in.LastActivityDate.IsZero() {
		v.Add("lastActivityDate", "last activity date is required")
	} else if in.LastActivityDate.After(model.Today()) {
		v.Add("lastActivityDate", "last activity date cannot be in the future")
	}
	if in.FrequencyDays < 1 {
		v.Add("frequencyDays", "frequency must be at least 1 day")
	}
	return v.Errors()
}

// Draft composes a reminder message. The next due date is the last activity
// date plus the frequency; when that date is today or already past, the
// message is phrased as overdue.
func Draft(in DraftInput) (DraftResult, validate.Errors) {
	if errs := in.Validate(); errs != nil {
		return DraftResult{}, errs
	}

	due := in.LastActivityDate.AddDays(in.FrequencyDays)
	label := activityLabels[in.ActivityType]
	today := model.Today()

	var message string
	if due.After(today) {
		message = fmt.Sprintf(
			"Reminder: %s for %s is due on %s. Last done on %s, repeating every %d day(s).",
			label, in.CropType, due, in.LastActivityDate, in.FrequencyDays,
		)
	} else {
		message = fmt.Sprintf(
			"Attention: %s for %s was due on %s and is now overdue. Last done on %s, repeating every %d day(s).",
			label, in.CropType, due, in.LastActivityDate, in.FrequencyDays,
		)
	}

	return DraftResult{
		Message: message,
		NextDue: due,
		Overdue: !due.After(today),
	}, nil
}
