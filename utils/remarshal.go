package utils

import (
	"github.com/go-json-experiment/json"
)

// Remarshal copies input into output through its JSON representation, it is
// used to turn typed values into generic maps for filter matching.
func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := json.Marshal(input)
	if nil != err {
		return
	}
	return json.Unmarshal(b, output)
}
