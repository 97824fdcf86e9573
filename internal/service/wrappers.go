package service

// PropertyServiceWrapper defines middleware composition for PropertyService.
// Implementations wrap an existing PropertyService to add behavior such as
// validation.
type PropertyServiceWrapper interface {
	Wrap(PropertyService) PropertyService
}

// TodoServiceWrapper defines middleware composition for TodoService.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}
