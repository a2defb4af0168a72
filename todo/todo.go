package todo

// Todo is one item of the list. ID is assigned by the Store and never changes.
type Todo struct {
	ID   uint64 `json:"id"`
	Done bool   `json:"done"`
	Val  string `json:"val"`
}

// Insert is the client payload for create and update, it never carries an id.
type Insert struct {
	Done bool   `json:"done"`
	Val  string `json:"val"`
}

func (i Insert) Todo(id uint64) *Todo {
	return &Todo{
		ID:   id,
		Done: i.Done,
		Val:  i.Val,
	}
}

func (t *Todo) clone() *Todo {
	c := *t
	return &c
}
