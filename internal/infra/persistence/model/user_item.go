package model

// UserItem mirrors one item of the secondary store's users table, keyed by user_id.
// Timestamps are RFC 3339 strings; other allergies are a native string list.
type UserItem struct {
	UserID             string   `dynamodbav:"user_id"`
	Email              string   `dynamodbav:"email"`
	UserName           string   `dynamodbav:"user_name"`
	UserIdentity       string   `dynamodbav:"user_identity"`
	DietaryPreferences string   `dynamodbav:"dietary_preferences"`
	PeriodPlan         string   `dynamodbav:"period_plan"`
	MilkAllergy        bool     `dynamodbav:"milk_allergy"`
	EggsAllergy        bool     `dynamodbav:"eggs_allergy"`
	PeanutsAllergy     bool     `dynamodbav:"peanuts_allergy"`
	TreeNutsAllergy    bool     `dynamodbav:"tree_nuts_allergy"`
	ShellfishAllergy   bool     `dynamodbav:"shellfish_allergy"`
	OtherAllergies     []string `dynamodbav:"other_allergies"`
	SessionData        string   `dynamodbav:"session_data,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// Attribute names of UserItem, used to build update expressions.
const (
	AttrUserID             = "user_id"
	AttrUserName           = "user_name"
	AttrUserIdentity       = "user_identity"
	AttrDietaryPreferences = "dietary_preferences"
	AttrPeriodPlan         = "period_plan"
	AttrMilkAllergy        = "milk_allergy"
	AttrEggsAllergy        = "eggs_allergy"
	AttrPeanutsAllergy     = "peanuts_allergy"
	AttrTreeNutsAllergy    = "tree_nuts_allergy"
	AttrShellfishAllergy   = "shellfish_allergy"
	AttrOtherAllergies     = "other_allergies"
	AttrUpdatedAt          = "updated_at"
)
