package api

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/todos/todo"
)

func TestDecodeInsert(t *testing.T) {

	r := httptest.NewRequest("POST", "/todos", strings.NewReader(`{"done":true,"val":""}`))
	insert, err := decodeInsert(r)
	biff.AssertNil(err)
	biff.AssertEqual(insert, todo.Insert{Done: true, Val: ""})

	r = httptest.NewRequest("POST", "/todos", strings.NewReader(`{"done":null,"val":"x"}`))
	_, err = decodeInsert(r)
	badRequestErr := &BadRequestError{}
	biff.AssertTrue(errors.As(err, &badRequestErr))
	biff.AssertEqual(badRequestErr.Description, "Missing field")

	r = httptest.NewRequest("POST", "/todos", strings.NewReader(``))
	_, err = decodeInsert(r)
	biff.AssertTrue(errors.As(err, &badRequestErr))
	biff.AssertEqual(badRequestErr.Description, "Malformed JSON")
}

func TestParseID(t *testing.T) {

	id, err := parseID("18446744073709551615")
	biff.AssertNil(err)
	biff.AssertEqual(id, uint64(18446744073709551615))

	_, err = parseID("-1")
	biff.AssertNotNil(err)

	_, err = parseID("")
	biff.AssertNotNil(err)
}
