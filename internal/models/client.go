package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// Client statuses accepted by the API.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

var ClientStatuses = []string{StatusNew, StatusInProgress, StatusCompleted, StatusOnHold}

func IsValidStatus(s string) bool {
	for _, v := range ClientStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Budget is a currency amount kept as decimal text. Form input may arrive
// as a JSON number or a JSON string; both normalize to the literal digits.
type Budget string

func (b *Budget) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("budget: empty input")
	}
	if string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = Budget(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("budget: expected a string or a number")
	}
	*b = Budget(n.String())
	return nil
}

func (b Budget) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(b))
}

func (b Budget) String() string {
	return string(b)
}

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:20;not null" json:"phone"`
	Details string `gorm:"type:text" json:"details"`

	Budget            Budget `gorm:"size:40;not null" json:"budget"`
	Status            string `gorm:"size:20;not null;default:'New'" json:"status"`
	AssignedDeveloper string `gorm:"size:100" json:"assignedDeveloper"`

	CreatedAt time.Time `json:"createdAt"`
}
