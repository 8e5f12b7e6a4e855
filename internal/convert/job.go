package convert

import "time"

// Status is the lifecycle state of a conversion job
type Status string

// Job status values, as exposed on the wire.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusTimeout    Status = "timeout"
)

// Terminal reports whether the status is final. Terminal jobs are immutable.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusTimeout:
		return true
	}
	return false
}

// Supported diagram categories.
const (
	CategoryMechanics      = "mechanics"
	CategoryElectricity    = "electricity"
	CategoryOptics         = "optics"
	CategoryThermodynamics = "thermodynamics"
	CategoryQuantum        = "quantum"
	CategoryGeneral        = "general"
)

// Categories lists the supported diagram categories
var Categories = []string{
	CategoryMechanics,
	CategoryElectricity,
	CategoryOptics,
	CategoryThermodynamics,
	CategoryQuantum,
	CategoryGeneral,
}

// ValidCategory reports whether cat is a supported diagram category
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Job represents a single diagram conversion tracked by the registry
type Job struct {
	ID           string
	ImageID      string
	ImagePath    string
	Category     string
	Description  string
	TemplateID   string
	Status       Status
	TikZCode     string
	PreviewURL   string
	ErrorMessage string
	CreatedAt    time.Time
	StartedAt    time.Time
	CompletedAt  time.Time
}
