package models

// PropertiesResponse wraps a list of listings.
type PropertiesResponse struct {
	Properties []Property `json:"properties"`
}

// PropertyResponse wraps a single listing.
type PropertyResponse struct {
	Property Property `json:"property"`
}

// TodosResponse wraps a list of tasks.
type TodosResponse struct {
	Todos []Todo `json:"todos"`
}

// TodoResponse wraps a single task.
type TodoResponse struct {
	Todo Todo `json:"todo"`
}
