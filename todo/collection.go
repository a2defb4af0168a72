package todo

import (
	"github.com/google/btree"
)

// collection keeps todos ordered by id. Ids are handed out by a monotonic
// counter, so ascending id order is also creation order.
type collection struct {
	rows   *btree.BTreeG[*Todo]
	lastID uint64
}

func newCollection() *collection {
	return &collection{
		rows: btree.NewG(32, func(a, b *Todo) bool {
			return a.ID < b.ID
		}),
	}
}

func (c *collection) add(insert Insert) uint64 {
	c.lastID++
	c.rows.ReplaceOrInsert(insert.Todo(c.lastID))
	return c.lastID
}

func (c *collection) get(id uint64) (*Todo, bool) {
	return c.rows.Get(&Todo{ID: id})
}

func (c *collection) replace(id uint64, insert Insert) (*Todo, bool) {
	if !c.rows.Has(&Todo{ID: id}) {
		return nil, false
	}
	row := insert.Todo(id)
	c.rows.ReplaceOrInsert(row)
	return row, true
}

func (c *collection) remove(id uint64) bool {
	_, removed := c.rows.Delete(&Todo{ID: id})
	return removed
}

func (c *collection) traverse(f func(row *Todo) bool) {
	c.rows.Ascend(f)
}

func (c *collection) len() int {
	return c.rows.Len()
}
