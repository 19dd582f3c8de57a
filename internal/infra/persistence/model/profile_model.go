package model

import (
	"time"
)

// ProfileModel mirrors the 'profiles' table of the primary store.
// List-valued fields are stored as comma-joined strings; session data has no column.
type ProfileModel struct {
	ID                 string    `gorm:"type:varchar(128);primaryKey" json:"id"`
	Email              string    `gorm:"type:varchar(255);not null" json:"email"`
	UserName           string    `gorm:"type:varchar(100)" json:"userName"`
	UserIdentity       string    `gorm:"type:varchar(32);not null;default:student" json:"userIdentity"`
	DietaryPreferences string    `gorm:"type:text" json:"dietaryPreferences"`
	PeriodPlan         string    `gorm:"type:varchar(100)" json:"periodPlan"`
	MilkAllergy        bool      `gorm:"not null;default:false" json:"milkAllergy"`
	EggsAllergy        bool      `gorm:"not null;default:false" json:"eggsAllergy"`
	PeanutsAllergy     bool      `gorm:"not null;default:false" json:"peanutsAllergy"`
	TreeNutsAllergy    bool      `gorm:"not null;default:false" json:"treeNutsAllergy"`
	ShellfishAllergy   bool      `gorm:"not null;default:false" json:"shellfishAllergy"`
	OtherAllergens     string    `gorm:"type:text" json:"otherAllergens"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// Column names of ProfileModel, used for partial updates.
const (
	ColumnUserName           = "user_name"
	ColumnUserIdentity       = "user_identity"
	ColumnDietaryPreferences = "dietary_preferences"
	ColumnPeriodPlan         = "period_plan"
	ColumnMilkAllergy        = "milk_allergy"
	ColumnEggsAllergy        = "eggs_allergy"
	ColumnPeanutsAllergy     = "peanuts_allergy"
	ColumnTreeNutsAllergy    = "tree_nuts_allergy"
	ColumnShellfishAllergy   = "shellfish_allergy"
	ColumnOtherAllergens     = "other_allergens"
	ColumnUpdatedAt          = "updated_at"
)
