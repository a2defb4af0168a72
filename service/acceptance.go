package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance describes the HTTP contract of the todo list. apiRequest must
// build requests against a freshly started, empty store.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List empty", func(a *biff.A) {
		resp := apiRequest("GET", "/todos").Do()
		Save(resp, "List todos - empty", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyString(), "[]\n")
	})

	a.Alternative("List empty with unknown filter operator", func(a *biff.A) {
		resp := apiRequest("GET", "/todos").
			WithQuery("filter", `{"val":{"$bogus":1}}`).Do()
		Save(resp, "List todos - invalid filter", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqual(resp.BodyJsonMap()["error"].(JSON)["description"], "Invalid filter")
	})

	a.Alternative("Create todo", func(a *biff.A) {
		resp := apiRequest("POST", "/todos").
			WithBodyJson(JSON{
				"done": false,
				"val":  "buy milk",
			}).Do()
		Save(resp, "Create todo", `
			Creates a todo and returns the id assigned by the store.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), 1)

		a.Alternative("Retrieve todo", func(a *biff.A) {
			resp := apiRequest("GET", "/todos/1").Do()
			Save(resp, "Retrieve todo", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"id":   1,
				"done": false,
				"val":  "buy milk",
			})
		})

		a.Alternative("Retrieve missing todo", func(a *biff.A) {
			resp := apiRequest("GET", "/todos/99").Do()
			Save(resp, "Retrieve todo - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"error": JSON{
					"message":     "todo not found",
					"description": "todo '99' not found",
				},
			})
		})

		a.Alternative("Retrieve with invalid id", func(a *biff.A) {
			resp := apiRequest("GET", "/todos/abc").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("Update todo", func(a *biff.A) {
			resp := apiRequest("PUT", "/todos/1").
				WithBodyJson(JSON{
					"done": true,
					"val":  "buy oat milk",
				}).Do()
			Save(resp, "Update todo", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			expectedBody := JSON{
				"id":   1,
				"done": true,
				"val":  "buy oat milk",
			}
			biff.AssertEqualJson(resp.BodyJson(), expectedBody)

			a.Alternative("Retrieve updated todo", func(a *biff.A) {
				resp := apiRequest("GET", "/todos/1").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), expectedBody)
			})
		})

		a.Alternative("Update missing todo", func(a *biff.A) {
			resp := apiRequest("PUT", "/todos/99").
				WithBodyJson(JSON{
					"done": true,
					"val":  "ghost",
				}).Do()
			Save(resp, "Update todo - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Update with missing field", func(a *biff.A) {
			resp := apiRequest("PUT", "/todos/1").
				WithBodyJson(JSON{
					"done": true,
				}).Do()
			Save(resp, "Update todo - missing field", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"error": JSON{
					"message":     "field 'val' is required",
					"description": "Missing field",
				},
			})
		})

		a.Alternative("Delete todo", func(a *biff.A) {
			resp := apiRequest("DELETE", "/todos/1").Do()
			Save(resp, "Delete todo", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyString(), "")

			a.Alternative("Delete it again", func(a *biff.A) {
				resp := apiRequest("DELETE", "/todos/1").Do()
				Save(resp, "Delete todo - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Retrieve deleted todo", func(a *biff.A) {
				resp := apiRequest("GET", "/todos/1").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Ids are not reused", func(a *biff.A) {
				resp := apiRequest("POST", "/todos").
					WithBodyJson(JSON{"done": false, "val": "again"}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), 2)
			})
		})

		a.Alternative("Create some more", func(a *biff.A) {
			for _, val := range []string{"b", "c"} {
				resp := apiRequest("POST", "/todos").
					WithBodyJson(JSON{"done": val == "c", "val": val}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
			}

			a.Alternative("List todos", func(a *biff.A) {
				resp := apiRequest("GET", "/todos").Do()
				Save(resp, "List todos", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"id": 1, "done": false, "val": "buy milk"},
					{"id": 2, "done": false, "val": "b"},
					{"id": 3, "done": true, "val": "c"},
				})
			})

			a.Alternative("List todos with filter", func(a *biff.A) {
				resp := apiRequest("GET", "/todos").
					WithQuery("filter", `{"val":"b"}`).Do()
				Save(resp, "List todos - filter", `
					The filter uses mongo-like conditions over the todo fields.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"id": 2, "done": false, "val": "b"},
				})
			})

			a.Alternative("List todos with malformed filter", func(a *biff.A) {
				resp := apiRequest("GET", "/todos").
					WithQuery("filter", `{"val":`).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Delete the middle one", func(a *biff.A) {
				apiRequest("DELETE", "/todos/2").Do()

				resp := apiRequest("GET", "/todos").Do()
				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"id": 1, "done": false, "val": "buy milk"},
					{"id": 3, "done": true, "val": "c"},
				})
			})

			a.Alternative("Count", func(a *biff.A) {
				resp := apiRequest("POST", "/todos:count").Do()
				Save(resp, "Count todos", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"total": 3})
			})
		})

	})

	a.Alternative("Create with malformed body", func(a *biff.A) {
		resp := apiRequest("POST", "/todos").
			WithBodyString(`{"done": false, "val": `).Do()
		Save(resp, "Create todo - malformed body", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqual(resp.BodyJsonMap()["error"].(JSON)["description"], "Malformed JSON")
	})

	a.Alternative("Create with wrong type", func(a *biff.A) {
		resp := apiRequest("POST", "/todos").
			WithBodyJson(JSON{"done": "yes", "val": "x"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Create with unknown field", func(a *biff.A) {
		resp := apiRequest("POST", "/todos").
			WithBodyJson(JSON{"id": 7, "done": false, "val": "x"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Create with missing field", func(a *biff.A) {
		resp := apiRequest("POST", "/todos").
			WithBodyJson(JSON{"val": "x"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "field 'done' is required",
				"description": "Missing field",
			},
		})
	})

}
