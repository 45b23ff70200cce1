package model

// User is the authenticated user as reported by the sandbox API.
type User struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// DynamicEntityRequest defines a system dynamic entity. The schema is passed
// through to the remote system untouched.
type DynamicEntityRequest struct {
	EntityName        string                 `json:"entity_name"`
	HasPersonalEntity bool                   `json:"has_personal_entity"`
	Schema            map[string]interface{} `json:"schema"`
}

// DynamicEntity is the created dynamic entity definition.
type DynamicEntity struct {
	DynamicEntityID   string `json:"dynamic_entity_id"`
	EntityName        string `json:"entity_name"`
	HasPersonalEntity bool   `json:"has_personal_entity"`
	UserID            string `json:"user_id"`
}
