package domain

// Category is a node of the two-level category tree.
type Category struct {
	Base
	Position      int           `json:"position"`
	Title         string        `json:"title"`
	OperationType OperationType `json:"operationType"`
	Type          CategoryType  `json:"type"`
	ParentID      *int64        `json:"parentId,omitempty"`
}
