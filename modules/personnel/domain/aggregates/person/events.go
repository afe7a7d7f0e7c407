package person

type CreatedEvent struct {
	Result Person
}

type UpdatedEvent struct {
	Result Person
}

type DeletedEvent struct {
	Result Person
}

// ImportedEvent is published once per commit pass of a bulk import.
type ImportedEvent struct {
	Attempted int
	Succeeded int
}

func NewCreatedEvent(result Person) *CreatedEvent { return &CreatedEvent{Result: result} }
func NewUpdatedEvent(result Person) *UpdatedEvent { return &UpdatedEvent{Result: result} }
func NewDeletedEvent(result Person) *DeletedEvent { return &DeletedEvent{Result: result} }
