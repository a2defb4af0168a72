package utils

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestRemarshal(t *testing.T) {

	input := struct {
		ID   uint64 `json:"id"`
		Done bool   `json:"done"`
		Val  string `json:"val"`
	}{ID: 3, Done: true, Val: "milk"}

	output := map[string]interface{}{}
	err := Remarshal(input, &output)

	biff.AssertNil(err)
	biff.AssertEqual(output, map[string]interface{}{
		"id":   float64(3),
		"done": true,
		"val":  "milk",
	})
}
